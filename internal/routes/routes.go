package routes

import (
	"github.com/gin-gonic/gin"
	goredis "github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/thierrygoms/barberapp-server/internal/config"
	"github.com/thierrygoms/barberapp-server/internal/handlers"
	infraRepo "github.com/thierrygoms/barberapp-server/internal/infra/repository"
	"github.com/thierrygoms/barberapp-server/internal/loyalty"
	"github.com/thierrygoms/barberapp-server/internal/middleware"
	"github.com/thierrygoms/barberapp-server/internal/notify"
	"github.com/thierrygoms/barberapp-server/internal/storage"
	ucAppointment "github.com/thierrygoms/barberapp-server/internal/usecase/appointment"
	ucCatalog "github.com/thierrygoms/barberapp-server/internal/usecase/catalog"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *goredis.Client, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)
	pushTokenRepo := infraRepo.NewPushTokenGormRepository(db)

	uploader := storage.NewS3Uploader(cfg)

	pushSender := notify.NewExpoSender()
	pushDispatcher := notify.NewDispatcher(pushSender, pushTokenRepo)

	loyaltyStore := loyalty.NewRedisStore(rdb, "")
	loyaltySvc := loyalty.NewService(appointmentRepo, loyaltyStore)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		cfg.Timezone,
	)

	listAppointmentsUC := ucAppointment.NewListForOwner(
		appointmentRepo,
	)

	setStatusUC := ucAppointment.NewSetStatus(
		appointmentRepo,
		pushDispatcher,
		cfg.Timezone,
	)

	deleteServiceUC := ucCatalog.NewDeleteService(
		catalogRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, uploader)
	barberHandler := handlers.NewBarberHandler(db, uploader)
	serviceHandler := handlers.NewServiceHandler(db, deleteServiceUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		setStatusUC,
		appointmentRepo,
		cfg.Timezone,
	)

	loyaltyHandler := handlers.NewLoyaltyHandler(loyaltySvc)
	pushHandler := handlers.NewPushHandler(pushTokenRepo)
	calendarHandler := handlers.NewCalendarHandler(cfg.Timezone)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.POST("/me/avatar", meHandler.UploadAvatar)

			secured.GET("/barbers", barberHandler.List)
			secured.GET("/services", serviceHandler.List)

			secured.GET("/calendar", calendarHandler.Month)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.GET("/me/appointments/history", appointmentHandler.History)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// LOYALTY
			// ------------------------------
			secured.GET("/me/loyalty", loyaltyHandler.Status)
			secured.POST("/me/loyalty/redeem", loyaltyHandler.Redeem)

			secured.POST("/me/push-tokens", pushHandler.RegisterToken)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/appointments", appointmentHandler.AdminList)
				admin.PATCH("/appointments/:id/status", appointmentHandler.AdminSetStatus)

				admin.POST("/barbers", barberHandler.Create)
				admin.PATCH("/barbers/:id", barberHandler.Update)
				admin.DELETE("/barbers/:id", barberHandler.Delete)
				admin.POST("/barbers/:id/photo", barberHandler.UploadPhoto)

				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)
			}
		}
	}
}
