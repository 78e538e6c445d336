package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/WoolleyCutzz/salon-booking/internal/audit"
	"github.com/WoolleyCutzz/salon-booking/internal/cache"
	"github.com/WoolleyCutzz/salon-booking/internal/config"
	"github.com/WoolleyCutzz/salon-booking/internal/handlers"
	infraRepo "github.com/WoolleyCutzz/salon-booking/internal/infra/repository"
	"github.com/WoolleyCutzz/salon-booking/internal/middleware"
	ucBooking "github.com/WoolleyCutzz/salon-booking/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	c *cache.Cache,
	log zerolog.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db, cfg.FreeCancelledSlots)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	updateBookingUC := ucBooking.NewUpdateBooking(bookingRepo, auditDispatcher)
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo, cfg.FreeCancelledSlots)
	summaryUC := ucBooking.NewDashboardSummary(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)
	stylistHandler := handlers.NewStylistHandler(db, c, availabilityUC)
	bookingHandler := handlers.NewBookingHandler(
		bookingRepo,
		createBookingUC,
		updateBookingUC,
		auditDispatcher,
	)
	dashboardHandler := handlers.NewDashboardHandler(summaryUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/stylists", stylistHandler.List)
		api.GET("/stylists/:id", stylistHandler.Get)
		api.GET("/stylists/:id/availability", stylistHandler.Availability)

		api.POST("/bookings", bookingHandler.Create)
		api.GET("/bookings", bookingHandler.List)
		api.GET("/bookings/:id", bookingHandler.Get)
		api.PATCH("/bookings/:id", bookingHandler.Update)
		api.DELETE("/bookings/:id", bookingHandler.Delete)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/dashboard", dashboardHandler.Summary)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
