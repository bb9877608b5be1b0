package routes

import (
	"net/http"

	"atithi/handlers"
	"atithi/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers wired in main.
type HandlerBundle struct {
	Booking  *handlers.BookingHandler
	Catalog  *handlers.CatalogHandler
	Settings *handlers.SettingsHandler
	StayOps  *handlers.StayOpsHandler
}

// RegisterRoutes registers all endpoints.
func RegisterRoutes(r *gin.Engine, h HandlerBundle) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterBookingRoutes(r, h.Booking, h.StayOps)
	RegisterCatalogRoutes(r, h.Catalog, h.Settings)
	RegisterAdminRoutes(r, h)
}

// RegisterBookingRoutes registers the booking session workflow.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler, oh *handlers.StayOpsHandler) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/session", bh.StartBookingSession)                // Phase 1: start session
		booking.PUT("/session/:sessionID", bh.UpdateBookingSession)     // Phase 2: reprice on change
		booking.POST("/confirm", bh.ConfirmBooking)                     // Phase 3: confirm booking
		booking.DELETE("/session/:sessionID", bh.CancelBookingSession)  // abandon
		booking.GET("", oh.ListBookings)
		booking.GET("/:bookingNumber", oh.GetBooking)
	}
}

// RegisterCatalogRoutes registers the read-only catalog and settings feeds
// the booking form loads once per session.
func RegisterCatalogRoutes(r *gin.Engine, ch *handlers.CatalogHandler, sh *handlers.SettingsHandler) {
	catalog := r.Group("/api/catalog")
	{
		catalog.GET("/unit-types", ch.ListUnitTypes)
		catalog.GET("/unit-types/:name", ch.GetUnitType)
		catalog.GET("/unit-types/:name/units/:number/status", ch.UnitStatus)
	}
	r.GET("/api/settings", sh.GetSettings)
}

// RegisterAdminRoutes registers the staff-only mutations.
func RegisterAdminRoutes(r *gin.Engine, h HandlerBundle) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminAuthMiddleware())
	{
		admin.PUT("/catalog/unit-types", h.Catalog.UpsertUnitType)
		admin.PUT("/settings", h.Settings.UpdateSettings)

		admin.POST("/bookings/:bookingNumber/checkin", h.StayOps.CheckIn)
		admin.POST("/bookings/:bookingNumber/checkout", h.StayOps.CheckOut)
		admin.POST("/housekeeping/clear", h.StayOps.ClearHousekeeping)
		admin.POST("/maintenance/start", h.StayOps.StartMaintenance)
		admin.POST("/maintenance/end", h.StayOps.EndMaintenance)
	}
}
