package handlers

import (
	"context"
	"net/http"

	bookingRepo "atithi/database/repository/booking"
	"atithi/services/booking"
	"atithi/utils"

	"github.com/gin-gonic/gin"
)

// StayOpsHandler exposes the post-confirmation lifecycle: check-in,
// check-out, housekeeping and maintenance.
type StayOpsHandler struct {
	Ops      booking.StayOpsService
	Bookings bookingRepo.BookingRepository
}

func NewStayOpsHandler(ops booking.StayOpsService, bookings bookingRepo.BookingRepository) *StayOpsHandler {
	return &StayOpsHandler{Ops: ops, Bookings: bookings}
}

func (h *StayOpsHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Bookings.List(context.Background(), c.Query("status"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *StayOpsHandler) GetBooking(c *gin.Context) {
	b, err := h.Bookings.GetByNumber(context.Background(), c.Param("bookingNumber"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *StayOpsHandler) CheckIn(c *gin.Context) {
	if err := h.Ops.CheckIn(c.Param("bookingNumber")); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "check-in failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "checkedin"})
}

func (h *StayOpsHandler) CheckOut(c *gin.Context) {
	if err := h.Ops.CheckOut(c.Param("bookingNumber")); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "check-out failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "checkedout"})
}

type unitOpInput struct {
	UnitType   string `json:"unitType" binding:"required"`
	UnitNumber string `json:"unitNumber" binding:"required"`
	From       string `json:"from,omitempty"`
}

func (h *StayOpsHandler) ClearHousekeeping(c *gin.Context) {
	var input unitOpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Ops.ClearHousekeeping(input.UnitType, input.UnitNumber); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear housekeeping hold", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

func (h *StayOpsHandler) StartMaintenance(c *gin.Context) {
	var input unitOpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Ops.StartMaintenance(input.UnitType, input.UnitNumber, input.From); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to start maintenance", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "maintenance"})
}

func (h *StayOpsHandler) EndMaintenance(c *gin.Context) {
	var input unitOpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Ops.EndMaintenance(input.UnitType, input.UnitNumber); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to end maintenance", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
