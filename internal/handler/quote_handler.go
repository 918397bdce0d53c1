package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/park-booking-service/internal/dto"
	"github.com/anyulbade/park-booking-service/internal/service"
)

type QuoteHandler struct {
	svc *service.QuoteService
}

func NewQuoteHandler(svc *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{svc: svc}
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return false
	}
	return true
}

func (h *QuoteHandler) Person(c *gin.Context) {
	var req dto.PersonQuoteRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.svc.QuotePerson(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *QuoteHandler) Vehicle(c *gin.Context) {
	var req dto.VehicleQuoteRequest
	if !bindJSON(c, &req) {
		return
	}

	c.JSON(http.StatusOK, h.svc.QuoteVehicle(&req))
}

func (h *QuoteHandler) Activity(c *gin.Context) {
	var req dto.ActivityQuoteRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.svc.QuoteActivity(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *QuoteHandler) BehindTheScenes(c *gin.Context) {
	var req dto.BehindTheScenesQuoteRequest
	if !bindJSON(c, &req) {
		return
	}

	c.JSON(http.StatusOK, h.svc.QuoteBehindTheScenes(&req))
}

// Booking prices a stored booking. Path ids are checked for UUID shape
// before they reach the database. refresh=true drops any cached quote first.
func (h *QuoteHandler) Booking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	if c.Query("refresh") == "true" {
		h.svc.ForgetBookingQuote(c.Request.Context(), id)
	}

	quote, err := h.svc.QuoteBooking(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, quote)
}
