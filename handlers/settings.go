package handlers

import (
	"context"
	"net/http"

	settingsRepo "atithi/database/repository/settings"
	"atithi/models"
	"atithi/utils"

	"github.com/gin-gonic/gin"
)

// SettingsHandler serves the property-wide settings document.
type SettingsHandler struct {
	Settings settingsRepo.SettingsRepository
}

func NewSettingsHandler(settings settingsRepo.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{Settings: settings}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	s, err := h.Settings.GetSettings(context.Background())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var s models.Settings
	if err := c.ShouldBindJSON(&s); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Settings.UpdateSettings(context.Background(), s); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, s)
}
