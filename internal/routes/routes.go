package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/bemviver/clinic-scheduler/internal/cache"
	"github.com/bemviver/clinic-scheduler/internal/config"
	"github.com/bemviver/clinic-scheduler/internal/handlers"
	infraRepo "github.com/bemviver/clinic-scheduler/internal/infra/repository"
	"github.com/bemviver/clinic-scheduler/internal/middleware"
	"github.com/bemviver/clinic-scheduler/internal/notify"
	ucBooking "github.com/bemviver/clinic-scheduler/internal/usecase/booking"
	"github.com/bemviver/clinic-scheduler/internal/whatsapp"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger zerolog.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	waClient := whatsapp.NewClient(cfg, logger)
	avCache := cache.New(cfg.RedisAddr, logger)
	dispatcher := notify.NewDispatcher(cfg.WebhookURL, waClient, logger)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(appointmentRepo, cfg, avCache)

	createUC := ucBooking.NewCreateAppointment(
		appointmentRepo,
		cfg,
		dispatcher,
		avCache,
	)

	confirmUC := ucBooking.NewConfirmInbound(
		appointmentRepo,
		cfg,
		waClient,
		logger,
	)

	listRecentUC := ucBooking.NewListRecent(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(availabilityUC, createUC)
	adminHandler := handlers.NewAdminHandler(listRecentUC, waClient)
	whatsappHandler := handlers.NewWhatsAppHandler(cfg, confirmUC, logger)

	// ======================================================
	// ROTAS
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICO
		// ------------------------------
		api.GET("/availability", bookingHandler.Availability)
		api.POST("/appointments", bookingHandler.Create)

		// ------------------------------
		// WEBHOOK WHATSAPP
		// ------------------------------
		api.GET("/whatsapp/webhook", whatsappHandler.Verify)
		api.POST("/whatsapp/webhook", whatsappHandler.Receive)

		// ------------------------------
		// ADMIN (BASIC AUTH)
		// ------------------------------
		admin := api.Group("/")
		admin.Use(middleware.BasicAuthMiddleware(cfg))
		{
			admin.GET("/appointments", adminHandler.ListAppointments)
			admin.GET("/whatsapp/test", adminHandler.WhatsAppTest)
		}
	}
}
