package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/anyulbade/park-booking-service/internal/model"
	"github.com/anyulbade/park-booking-service/internal/service"
)

type ActivityHandler struct {
	svc *service.ActivityService
}

func NewActivityHandler(svc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

func (h *ActivityHandler) List(c *gin.Context) {
	kind := c.Query("kind")
	if kind != "" && kind != model.ActivityKindStandard && kind != model.ActivityKindBehindTheScenes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid kind filter"})
		return
	}

	activities, err := h.svc.ListActivities(c.Request.Context(), kind)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": activities})
}

func (h *ActivityHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity id"})
		return
	}

	activity, err := h.svc.GetActivity(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, activity)
}
