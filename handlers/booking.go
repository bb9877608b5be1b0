package handlers

import (
	"net/http"

	"atithi/models"
	"atithi/services/booking"
	"atithi/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking session workflow over HTTP.
type BookingHandler struct {
	Sessions booking.BookingSessionService
}

func NewBookingHandler(sessions booking.BookingSessionService) *BookingHandler {
	return &BookingHandler{Sessions: sessions}
}

// StartBookingSession opens a session for a stay window and returns the
// availability-filtered unit options.
func (h *BookingHandler) StartBookingSession(c *gin.Context) {
	var req booking.StayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Sessions.InitiateSession(req)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to start booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateBookingSession replaces the selection and returns the reprice.
// A nil breakdown in the response means the selection is not ready and the
// form should suppress the total.
func (h *BookingHandler) UpdateBookingSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var sel models.StaySelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Sessions.UpdateSession(sessionID, sel)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to update booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmBooking freezes the session into a booking. Late conflicts return
// 409 with the contested unit numbers so the form can prompt re-selection.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Sessions.ConfirmBooking(input.SessionID)
	if err != nil {
		if conflict, ok := booking.AsConflict(err); ok {
			c.JSON(http.StatusConflict, gin.H{
				"error": "units no longer available",
				"units": conflict.Units,
			})
			return
		}
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to confirm booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBookingSession abandons an open session.
func (h *BookingHandler) CancelBookingSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Sessions.CancelSession(sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
