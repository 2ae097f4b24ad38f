package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/vittaestetica/clinica-api/internal/audit"
	"github.com/vittaestetica/clinica-api/internal/cache"
	"github.com/vittaestetica/clinica-api/internal/config"
	"github.com/vittaestetica/clinica-api/internal/handlers"
	infraRepo "github.com/vittaestetica/clinica-api/internal/infra/repository"
	"github.com/vittaestetica/clinica-api/internal/middleware"
	"github.com/vittaestetica/clinica-api/internal/payments"
	"github.com/vittaestetica/clinica-api/internal/storage"
	ucAppointment "github.com/vittaestetica/clinica-api/internal/usecase/appointment"
	ucFinance "github.com/vittaestetica/clinica-api/internal/usecase/finance"
	ucStock "github.com/vittaestetica/clinica-api/internal/usecase/stock"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	stockRepo := infraRepo.NewStockGormRepository(db)
	financeRepo := infraRepo.NewFinanceGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	dashboardCache := cache.New(cfg.RedisURL, cfg.DashboardCacheTTL)
	uploader := storage.NewUploader(cfg)

	mp, err := payments.New(cfg.MercadoPagoToken)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure mercado pago client")
	}

	// ======================================================
	// 🧠 USE CASES — AGENDAMENTOS
	// ======================================================
	bookAppointmentUC := ucAppointment.NewBookAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.WhatsAppNumber,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	// ======================================================
	// 🧠 USE CASES — ESTOQUE / FINANCEIRO
	// ======================================================
	restockUC := ucStock.NewRestock(stockRepo, auditDispatcher)
	cashboxUC := ucFinance.NewCashbox(financeRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, uploader)

	bookingHandler := handlers.NewBookingHandler(bookAppointmentUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		confirmAppointmentUC,
		completeAppointmentUC,
		cancelAppointmentUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
	)

	clientHandler := handlers.NewClientHandler(db)
	treatmentHandler := handlers.NewTreatmentHandler(db)
	productHandler := handlers.NewProductHandler(db, restockUC, stockRepo)
	consumptionHandler := handlers.NewConsumptionHandler(db)

	revenueHandler := handlers.NewRevenueHandler(db, mp)
	expenseHandler := handlers.NewExpenseHandler(db)
	cashboxHandler := handlers.NewCashboxHandler(cashboxUC)

	dashboardHandler := handlers.NewDashboardHandler(db, dashboardCache)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/tratamentos", treatmentHandler.List)
			publicAPI.POST("/agendamentos", bookingHandler.Create)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.Get)
			secured.POST("/me/profile-picture", meHandler.UploadProfilePicture)

			// ------------------------------
			// AGENDAMENTOS
			// ------------------------------
			secured.GET("/agendamentos", appointmentHandler.ListByDate)
			secured.GET("/agendamentos/month", appointmentHandler.ListByMonth)
			secured.PATCH("/agendamentos/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/agendamentos/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/agendamentos/:id/complete", appointmentHandler.Complete)

			secured.GET("/agendamentos/:id/consumos", consumptionHandler.ListByAppointment)
			secured.POST("/agendamentos/:id/consumos", consumptionHandler.Create)
			secured.DELETE("/agendamentos/:id/consumos/:consumoId", consumptionHandler.Delete)

			// ------------------------------
			// CADASTROS
			// ------------------------------
			secured.GET("/clientes", clientHandler.List)
			secured.GET("/clientes/:id", clientHandler.Get)
			secured.PATCH("/clientes/:id", clientHandler.Update)

			secured.GET("/tratamentos", treatmentHandler.List)
			secured.POST("/tratamentos", treatmentHandler.Create)
			secured.PATCH("/tratamentos/:id", treatmentHandler.Update)

			// ------------------------------
			// ESTOQUE
			// ------------------------------
			secured.GET("/produtos", productHandler.List)
			secured.POST("/produtos", productHandler.Create)
			secured.PATCH("/produtos/:id", productHandler.Update)
			secured.POST("/produtos/:id/entrada", productHandler.Entrada)
			secured.GET("/produtos/:id/movimentacoes", productHandler.Movimentacoes)

			// ------------------------------
			// FINANCEIRO
			// ------------------------------
			secured.GET("/receitas", revenueHandler.List)
			secured.POST("/receitas", revenueHandler.Create)
			secured.PATCH("/receitas/:id", revenueHandler.Update)
			secured.POST("/receitas/:id/link-pagamento", revenueHandler.PaymentLink)

			secured.GET("/despesas", expenseHandler.List)
			secured.POST("/despesas", expenseHandler.Create)
			secured.PATCH("/despesas/:id", expenseHandler.Update)

			secured.GET("/categorias-despesa", expenseHandler.ListCategories)
			secured.POST("/categorias-despesa", expenseHandler.CreateCategory)

			secured.GET("/caixa", cashboxHandler.Summary)

			// ------------------------------
			// DASHBOARD
			// ------------------------------
			dashboard := secured.Group("/dashboard")
			{
				dashboard.GET("/agendamentos/tratamento", dashboardHandler.AppointmentsByTreatment)
				dashboard.GET("/agendamentos/mes", dashboardHandler.AppointmentsByMonth)
				dashboard.GET("/agendamentos/cancelamento", dashboardHandler.CancellationRate)
				dashboard.GET("/receitas/forma-pagamento", dashboardHandler.RevenueByPaymentMethod)
				dashboard.GET("/despesas/categoria", dashboardHandler.ExpensesByCategory)
				dashboard.GET("/estoque/baixo", dashboardHandler.LowStock)
				dashboard.GET("/estoque/movimentacoes", dashboardHandler.StockMovementTotals)
				dashboard.GET("/clientes/faixa-etaria", dashboardHandler.ClientsByAgeBucket)
			}

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
