package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/barbeariaclassica/agenda-api/internal/audit"
	"github.com/barbeariaclassica/agenda-api/internal/config"
	"github.com/barbeariaclassica/agenda-api/internal/db"
	"github.com/barbeariaclassica/agenda-api/internal/handlers"
	infraRepo "github.com/barbeariaclassica/agenda-api/internal/infra/repository"
	"github.com/barbeariaclassica/agenda-api/internal/metrics"
	"github.com/barbeariaclassica/agenda-api/internal/middleware"
	"github.com/barbeariaclassica/agenda-api/internal/timezone"
	ucAppointment "github.com/barbeariaclassica/agenda-api/internal/usecase/appointment"
	ucBarber "github.com/barbeariaclassica/agenda-api/internal/usecase/barber"
)

func RegisterRoutes(r *gin.Engine, store *db.Store, cfg *config.Config, log *zap.Logger, m *metrics.Metrics) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware(m))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	barberRepo := infraRepo.NewBarberFileRepository(store)
	appointmentRepo := infraRepo.NewAppointmentFileRepository(store)
	auditRepo := infraRepo.NewAuditFileRepository(store)

	auditLogger := audit.New(auditRepo)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	loc := timezone.Location(cfg.Timezone)
	now := func() time.Time { return timezone.NowIn(cfg.Timezone) }

	// ======================================================
	// USE CASES
	// ======================================================
	listBarbersUC := ucBarber.NewListBarbers(barberRepo)
	addBarberUC := ucBarber.NewAddBarber(barberRepo, auditDispatcher)
	renameBarberUC := ucBarber.NewRenameBarber(barberRepo, auditDispatcher)
	removeBarberUC := ucBarber.NewRemoveBarber(barberRepo, auditDispatcher)

	getAvailabilityUC := ucAppointment.NewGetAvailability(barberRepo, appointmentRepo, now)
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		barberRepo,
		appointmentRepo,
		auditDispatcher,
		m,
		loc,
		now,
	)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	listByMonthUC := ucAppointment.NewListByMonth(appointmentRepo)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg)
	bookingHandler := handlers.NewBookingHandler(listBarbersUC, getAvailabilityUC, createAppointmentUC)
	calendarHandler := handlers.NewCalendarHandler(listByMonthUC, listAppointmentsUC)
	barberHandler := handlers.NewBarberHandler(addBarberUC, renameBarberUC, removeBarberUC)
	appointmentHandler := handlers.NewAppointmentHandler(listAppointmentsUC, deleteAppointmentUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditRepo)

	// ======================================================
	// MÉTRICAS
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICA: agendamento e calendário
		// ------------------------------
		api.GET("/barbers", bookingHandler.ListBarbers)
		api.GET("/availability", bookingHandler.Availability)
		api.POST("/appointments", bookingHandler.CreateAppointment)
		api.GET("/calendar", calendarHandler.Month)
		api.GET("/calendar/day", calendarHandler.Day)

		// ------------------------------
		// AUTH (credencial fixa)
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		// ------------------------------
		// GERENCIAMENTO
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/appointments", appointmentHandler.List)
			admin.DELETE("/appointments/:id", appointmentHandler.Delete)

			admin.POST("/barbers", barberHandler.Create)
			admin.PATCH("/barbers/:id", barberHandler.Rename)
			admin.DELETE("/barbers/:id", barberHandler.Delete)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
