package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/park-booking-service/internal/cache"
	"github.com/anyulbade/park-booking-service/internal/config"
	"github.com/anyulbade/park-booking-service/internal/database"
	"github.com/anyulbade/park-booking-service/internal/handler"
	"github.com/anyulbade/park-booking-service/internal/middleware"
	"github.com/anyulbade/park-booking-service/internal/pricing"
	"github.com/anyulbade/park-booking-service/internal/repository"
	"github.com/anyulbade/park-booking-service/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()
	zerolog.DefaultContextLogger = &log.Logger

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	engine := pricing.Default()
	if cfg.RateTableFile != "" {
		tables, err := pricing.LoadTables(cfg.RateTableFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.RateTableFile).Msg("failed to load rate tables")
		}
		engine = pricing.NewEngine(tables)
		log.Info().Str("file", cfg.RateTableFile).Msg("rate tables loaded")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		if err := database.SeedData(context.Background(), pool); err != nil {
			log.Fatal().Err(err).Msg("failed to seed data")
		}
	}

	var quoteCache cache.QuoteCache = cache.Noop{}
	if cfg.RedisAddr != "" {
		client := cache.NewRedis(cfg.RedisAddr)
		defer client.Close()
		quoteCache = cache.NewRedisQuoteCache(client, cfg.QuoteCacheTTL)
		log.Info().Str("addr", cfg.RedisAddr).Dur("ttl", cfg.QuoteCacheTTL).Msg("quote cache enabled")
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	healthHandler := handler.NewHealthHandler(pool, quoteCache)
	router.GET("/health", healthHandler.Health)

	handler.SetupSwagger(router)
	setupAPIRoutes(router, pool, engine, quoteCache, cfg.USDToRWF)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func setupAPIRoutes(router *gin.Engine, pool *pgxpool.Pool, engine *pricing.Engine, quoteCache cache.QuoteCache, usdToRWF float64) {
	bookingRepo := repository.NewBookingRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)

	quoteService := service.NewQuoteService(engine, bookingRepo, activityRepo, quoteCache, usdToRWF, time.Now)
	bookingService := service.NewBookingService(bookingRepo, activityRepo)
	activityService := service.NewActivityService(activityRepo)

	quoteHandler := handler.NewQuoteHandler(quoteService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	activityHandler := handler.NewActivityHandler(activityService)

	api := router.Group("/api/v1")
	{
		api.POST("/quotes/person", quoteHandler.Person)
		api.POST("/quotes/vehicle", quoteHandler.Vehicle)
		api.POST("/quotes/activity", quoteHandler.Activity)
		api.POST("/quotes/behind-the-scenes", quoteHandler.BehindTheScenes)
		api.GET("/activities", activityHandler.List)
		api.GET("/activities/:id", activityHandler.Get)
		api.POST("/bookings", bookingHandler.Create)
		api.GET("/bookings", bookingHandler.List)
		api.GET("/bookings/:id", bookingHandler.Get)
		api.GET("/bookings/:id/quote", quoteHandler.Booking)
	}
}
