package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyulbade/park-booking-service/internal/service"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"service not found", fmt.Errorf("booking 'x': %w", service.ErrNotFound), http.StatusNotFound},
		{"no rows", pgx.ErrNoRows, http.StatusNotFound},
		{"unique", &pgconn.PgError{Code: "23505"}, http.StatusConflict},
		{"foreign key", &pgconn.PgError{Code: "23503"}, http.StatusBadRequest},
		{"check", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23514"}), http.StatusBadRequest},
		{"bad uuid", &pgconn.PgError{Code: "22P02"}, http.StatusBadRequest},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := MapError(tt.err)
			assert.Equal(t, tt.status, status)
		})
	}
}

func newTestRouter(h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), Logger(), ErrorHandler())
	router.GET("/test", h)
	return router
}

func TestErrorHandler(t *testing.T) {
	router := newTestRouter(func(c *gin.Context) {
		_ = c.Error(fmt.Errorf("activity 'a': %w", service.ErrNotFound))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "resource not found", resp.Error)
}

func TestErrorHandler_KeepsWrittenResponse(t *testing.T) {
	router := newTestRouter(func(c *gin.Context) {
		_ = c.Error(errors.New("logged only"))
		c.JSON(http.StatusTeapot, gin.H{"ok": false})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestRequestID(t *testing.T) {
	var seen string
	router := newTestRouter(func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusNoContent)
	})

	t.Run("generated when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		router.ServeHTTP(w, req)

		assert.Len(t, seen, 36)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("propagated when present", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-123", seen)
		assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = orig })

	router := newTestRouter(func(c *gin.Context) {
		zerolog.Ctx(c.Request.Context()).Info().Msg("from handler")
		_ = c.Error(service.ErrNotFound)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test?x=1", nil)
	req.Header.Set(RequestIDHeader, "req-log")
	router.ServeHTTP(w, req)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var handlerLine, accessLine map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &handlerLine))
	require.NoError(t, json.Unmarshal(lines[1], &accessLine))

	assert.Equal(t, "req-log", handlerLine["request_id"])
	assert.Equal(t, "req-log", accessLine["request_id"])
	assert.Equal(t, "warn", accessLine["level"])
	assert.Equal(t, "/test", accessLine["route"])
	assert.Equal(t, "x=1", accessLine["query"])
	assert.EqualValues(t, http.StatusNotFound, accessLine["status"])
	assert.Contains(t, accessLine["error"], "resource not found")
}
