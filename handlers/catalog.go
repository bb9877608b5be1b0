package handlers

import (
	"context"
	"net/http"

	catalogRepo "atithi/database/repository/catalog"
	"atithi/models"
	"atithi/services/availability"
	"atithi/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the unit-type catalog, optionally filtered to units
// available for a requested stay window.
type CatalogHandler struct {
	Catalog  catalogRepo.CatalogRepository
	Resolver *availability.Resolver
}

func NewCatalogHandler(catalog catalogRepo.CatalogRepository, resolver *availability.Resolver) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog, Resolver: resolver}
}

// ListUnitTypes returns catalog entries. With startDate, endDate and the
// slot's clock times supplied, each entry's units are narrowed to the ones
// the resolver reports available for that window.
func (h *CatalogHandler) ListUnitTypes(c *gin.Context) {
	propertyType := c.Query("propertyType")
	types, err := h.Catalog.GetUnitTypes(context.Background(), propertyType)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load catalog", err.Error())
		return
	}

	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate != "" && endDate != "" {
		fromTime := c.DefaultQuery("fromTime", "14:00")
		toTime := c.DefaultQuery("toTime", "12:00")
		start, end, err := availability.Window(
			models.DateRange{StartDate: startDate, EndDate: endDate},
			models.TimeSlot{FromTime: fromTime, ToTime: toTime},
		)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid stay window", err.Error())
			return
		}
		for i := range types {
			var free []models.Unit
			for _, unit := range types[i].Units {
				if h.Resolver.IsAvailable(unit, start, end) {
					free = append(free, unit)
				}
			}
			types[i].Units = free
		}
	}

	c.JSON(http.StatusOK, types)
}

// GetUnitType returns one catalog entry with its full occupancy history.
func (h *CatalogHandler) GetUnitType(c *gin.Context) {
	ut, err := h.Catalog.GetUnitType(context.Background(), c.Param("name"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "unit type not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, ut)
}

// UnitStatus classifies one unit at an instant, for calendar coloring.
func (h *CatalogHandler) UnitStatus(c *gin.Context) {
	ut, err := h.Catalog.GetUnitType(context.Background(), c.Param("name"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "unit type not found", err.Error())
		return
	}
	at, err := utils.ParseTimestamp(c.Query("at"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid instant", err.Error())
		return
	}
	number := c.Param("number")
	for _, unit := range ut.Units {
		if unit.Number == number {
			c.JSON(http.StatusOK, gin.H{
				"number": number,
				"status": h.Resolver.StatusAt(unit, at),
			})
			return
		}
	}
	utils.JSONError(c, http.StatusNotFound, "unit not found", number)
}

// UpsertUnitType creates or replaces a catalog entry (admin).
func (h *CatalogHandler) UpsertUnitType(c *gin.Context) {
	var ut models.UnitType
	if err := c.ShouldBindJSON(&ut); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if ut.Name == "" || (ut.PropertyType != models.PropertyRoom && ut.PropertyType != models.PropertyHall) {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "name and a valid propertyType are required")
		return
	}
	if err := h.Catalog.UpsertUnitType(context.Background(), ut); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save unit type", err.Error())
		return
	}
	c.JSON(http.StatusOK, ut)
}
