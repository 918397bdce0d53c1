package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/anyulbade/park-booking-service/internal/dto"
	"github.com/anyulbade/park-booking-service/internal/service"
)

type BookingHandler struct {
	svc *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func bookingID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return "", false
	}
	return id, true
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	agg, validationErrors, err := h.svc.CreateBooking(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if len(validationErrors) > 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error:  "booking validation failed",
			Errors: validationErrors,
		})
		return
	}

	c.JSON(http.StatusCreated, agg)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	agg, err := h.svc.GetBooking(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, agg)
}

func (h *BookingHandler) List(c *gin.Context) {
	q, err := dto.ParseBookingListQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bookings, total, err := h.svc.ListBookings(c.Request.Context(), q.Status, q.PageSize, q.Offset())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       bookings,
		"pagination": dto.NewPagination(q, total),
	})
}
