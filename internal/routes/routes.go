package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-queue/internal/audit"
	"github.com/BruksfildServices01/salon-queue/internal/auth"
	"github.com/BruksfildServices01/salon-queue/internal/config"
	"github.com/BruksfildServices01/salon-queue/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-queue/internal/infra/repository"
	"github.com/BruksfildServices01/salon-queue/internal/middleware"
	"github.com/BruksfildServices01/salon-queue/internal/notify"
	"github.com/BruksfildServices01/salon-queue/internal/timezone"
	"github.com/BruksfildServices01/salon-queue/internal/validators"
	ucAppointment "github.com/BruksfildServices01/salon-queue/internal/usecase/appointment"
	ucBarber "github.com/BruksfildServices01/salon-queue/internal/usecase/barber"
	ucQueue "github.com/BruksfildServices01/salon-queue/internal/usecase/queue"
	ucSchedule "github.com/BruksfildServices01/salon-queue/internal/usecase/schedule"
)

// Deps are the process-wide singletons the routes are built from. Notifier,
// Audit, RateLimiter and Clock may be nil.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger

	Notifier    notify.Notifier
	Audit       *audit.Dispatcher
	RateLimiter *middleware.RedisRateLimiter
	Clock       timezone.Clock
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(d.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	if d.RateLimiter != nil {
		r.Use(d.RateLimiter.Middleware(d.Logger, true))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.Timezone)

	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	queueRepo := infraRepo.NewQueueGormRepository(d.DB)
	barberRepo := infraRepo.NewBarberGormRepository(d.DB)
	serviceRepo := infraRepo.NewServiceGormRepository(d.DB)
	userRepo := infraRepo.NewUserGormRepository(d.DB)

	tokens := auth.NewTokens(cfg.JWTSecret)
	guard := auth.NewTokenGuard(tokens, userRepo)

	authOpts := auth.Options{IsAdminEmail: cfg.IsAdminEmail}
	if cfg.CheckEmailDomain {
		authOpts.EmailDomainCheck = validators.IsEmailDomainValidContext
	}
	authService := auth.NewService(userRepo, tokens, authOpts)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, d.Notifier, d.Audit, loc, d.Clock)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, d.Notifier, d.Audit)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(appointmentRepo, d.Audit)
	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(appointmentRepo, d.Audit, loc)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, d.Audit)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)
	sendRemindersUC := ucAppointment.NewSendReminders(appointmentRepo, d.Notifier, d.Audit)

	availabilityUC := ucSchedule.NewGetAvailability(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		rescheduleAppointmentUC,
		deleteAppointmentUC,
		getAppointmentUC,
		listAppointmentsByDateUC,
		sendRemindersUC,
	)

	queueHandler := handlers.NewQueueHandler(
		ucQueue.NewJoinQueue(queueRepo, d.Audit, d.Clock),
		ucQueue.NewListQueue(queueRepo),
		ucQueue.NewGetPosition(queueRepo),
		ucQueue.NewCancelEntry(queueRepo, d.Audit),
		ucQueue.NewCompleteEntry(queueRepo, d.Audit),
		ucQueue.NewRemoveEntry(queueRepo, d.Audit),
	)

	barberHandler := handlers.NewBarberHandler(
		ucBarber.NewCreateBarber(barberRepo, d.Audit),
		ucBarber.NewListBarbers(barberRepo),
		ucBarber.NewDeleteBarber(barberRepo, d.Audit),
	)

	scheduleHandler := handlers.NewScheduleHandler(availabilityUC)
	serviceHandler := handlers.NewServiceHandler(serviceRepo, d.Audit)
	authHandler := handlers.NewAuthHandler(authService)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(d.DB))

	authed := middleware.AuthMiddleware(guard)
	admin := []gin.HandlerFunc{authed, middleware.AdminOnly(guard)}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/update", authed, authHandler.Update)
		api.POST("/auth/check", authed, authHandler.Check)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		appointments := api.Group("/appointments")
		{
			appointments.POST("", appointmentHandler.Create)
			appointments.POST("/cancel/:id", appointmentHandler.Cancel)
			appointments.POST("/complete/:id", appointmentHandler.Complete)
			appointments.POST("/reschedule/:id", appointmentHandler.Reschedule)
			appointments.DELETE("/:id", appointmentHandler.Delete)
			appointments.GET("/detail/:id", appointmentHandler.Get)
			appointments.GET("/:date", appointmentHandler.ListByDate)
			appointments.POST("/reminders/:date", append(admin, appointmentHandler.SendReminders)...)
		}

		// ------------------------------
		// QUEUE
		// ------------------------------
		queue := api.Group("/queue")
		{
			queue.POST("", queueHandler.Join)
			queue.GET("", queueHandler.List)
			queue.GET("/search/:queueid", queueHandler.Search)
			queue.POST("/complete/:id", queueHandler.Complete)
			queue.POST("/cancel/:id", queueHandler.Cancel)
			queue.DELETE("/:id", queueHandler.Remove)
		}

		// ------------------------------
		// SCHEDULE
		// ------------------------------
		api.GET("/schedule/:barberId/:date", scheduleHandler.Availability)

		// ------------------------------
		// BARBERS
		// ------------------------------
		barbers := api.Group("/barbers")
		{
			barbers.GET("", barberHandler.List)
			barbers.POST("", append(admin, barberHandler.Create)...)
			barbers.DELETE("/:id", append(admin, barberHandler.Delete)...)
		}

		// ------------------------------
		// SERVICES
		// ------------------------------
		services := api.Group("/services")
		{
			services.GET("", serviceHandler.List)
			services.GET("/:id", serviceHandler.Get)
			services.POST("", append(admin, serviceHandler.Create)...)
			services.PUT("/:id", append(admin, serviceHandler.Update)...)
			services.DELETE("/:id", append(admin, serviceHandler.Delete)...)
		}

		api.GET("/audit-logs", append(admin, auditLogsHandler.List)...)
	}
}
