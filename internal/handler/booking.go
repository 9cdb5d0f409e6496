package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eventhotel/booking-api/internal/middleware"
	"github.com/eventhotel/booking-api/internal/model"
	"github.com/eventhotel/booking-api/internal/service/domain"
)

// BookingWorkflow is what the handler needs from the workflow layer.
type BookingWorkflow interface {
	Get(ctx context.Context, userID uint) (*model.Booking, error)
	Create(ctx context.Context, userID, roomID uint) (uint, error)
	Update(ctx context.Context, userID, roomID, bookingID uint) (uint, error)
}

type BookingHandler struct {
	workflow BookingWorkflow
	logger   *zap.Logger
}

func NewBookingHandler(workflow BookingWorkflow, logger *zap.Logger) *BookingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingHandler{
		workflow: workflow,
		logger:   logger,
	}
}

// RegisterRoutes mounts the booking endpoints behind the given
// middleware (rate limiter, auth gate).
func RegisterRoutes(r gin.IRouter, h *BookingHandler, mws ...gin.HandlerFunc) {
	group := r.Group("/booking", mws...)
	group.GET("", h.HandleGet)
	group.POST("", h.HandleCreate)
	group.PUT("/:bookingId", h.HandleUpdate)
}

type BookingRequest struct {
	RoomID uint `json:"roomId"`
}

func (h *BookingHandler) HandleGet(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	booking, err := h.workflow.Get(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) HandleCreate(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RoomID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomId is required"})
		return
	}

	bookingID, err := h.workflow.Create(c.Request.Context(), userID, req.RoomID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookingId": bookingID})
}

func (h *BookingHandler) HandleUpdate(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil || bookingID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bookingId must be a positive integer"})
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RoomID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomId is required"})
		return
	}

	updatedID, err := h.workflow.Update(c.Request.Context(), userID, req.RoomID, uint(bookingID))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookingId": updatedID})
}

// respondError applies the canonical mapping: auth failures 401,
// business denials 403, missing resources 404, everything else 500.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, domain.ErrRoomFull):
		c.JSON(http.StatusForbidden, gin.H{"error": "room has no free capacity"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "you don't have permission to access this resource"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		h.logger.Error("booking request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
