package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/viki/internal/audit"
	"github.com/BruksfildServices01/viki/internal/config"
	"github.com/BruksfildServices01/viki/internal/handlers"
	"github.com/BruksfildServices01/viki/internal/infra/idempotency"
	infraRepo "github.com/BruksfildServices01/viki/internal/infra/repository"
	"github.com/BruksfildServices01/viki/internal/metrics"
	"github.com/BruksfildServices01/viki/internal/middleware"
	"github.com/BruksfildServices01/viki/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/viki/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/viki/internal/usecase/catalog"
	ucCheckout "github.com/BruksfildServices01/viki/internal/usecase/checkout"
	ucClient "github.com/BruksfildServices01/viki/internal/usecase/client"
	ucFinance "github.com/BruksfildServices01/viki/internal/usecase/finance"
)

// Deps são os colaboradores montados no main. Links e Archiver são
// opcionais (nil desativa).
type Deps struct {
	Audit    *audit.Dispatcher
	Tokens   idempotency.Store
	Links    ucCatalog.LinkProvider
	Archiver ucFinance.Archiver
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(metrics.Middleware())

	loc := timezone.Location(cfg.SalonTimezone)

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	clientRepo := infraRepo.NewClientGormRepository(db)
	serviceRepo := infraRepo.NewServiceGormRepository(db)
	ledgerRepo := infraRepo.NewLedgerGormRepository(db)

	// ======================================================
	// USE CASES — CATALOG / CLIENTS
	// ======================================================
	listServicesUC := ucCatalog.NewListServicesByStylist(serviceRepo)
	resolveNamesUC := ucCatalog.NewResolveNames(serviceRepo)
	createServiceUC := ucCatalog.NewCreateService(serviceRepo, deps.Audit)
	updateServiceUC := ucCatalog.NewUpdateService(serviceRepo, deps.Audit)
	provisionLinkUC := ucCatalog.NewProvisionPaymentLink(serviceRepo, deps.Links, deps.Audit)

	resolveClientUC := ucClient.NewResolveClient(clientRepo)
	listClientsUC := ucClient.NewListClients(clientRepo)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createRequestUC := ucAppointment.NewCreateRequest(appointmentRepo, resolveNamesUC, deps.Audit)
	submitIntakeUC := ucAppointment.NewSubmitIntake(resolveClientUC, createRequestUC, deps.Tokens, loc)
	listPendingUC := ucAppointment.NewListPendingRequests(appointmentRepo, loc)
	confirmUC := ucAppointment.NewConfirmAppointment(appointmentRepo, deps.Audit)
	declineUC := ucAppointment.NewDeclineAppointment(appointmentRepo, deps.Audit)
	rescheduleUC := ucAppointment.NewRescheduleAppointment(appointmentRepo, deps.Audit, loc)
	markPaidUC := ucAppointment.NewMarkPaidManually(appointmentRepo, deps.Audit)

	// ======================================================
	// USE CASES — CHECKOUT / FINANCE
	// ======================================================
	getCheckoutUC := ucCheckout.NewGetCheckout(appointmentRepo, serviceRepo)
	paymentURLUC := ucCheckout.NewBuildPaymentURL(getCheckoutUC)
	closeUC := ucCheckout.NewMarkPaidAndClose(markPaidUC)

	buildLedgerUC := ucFinance.NewBuildLedger(ledgerRepo)
	exportLedgerUC := ucFinance.NewExportLedger(buildLedgerUC, deps.Archiver, loc)
	recordPaymentUC := ucFinance.NewRecordPayment(ledgerRepo, deps.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(listServicesUC, submitIntakeUC)
	appointmentHandler := handlers.NewAppointmentHandler(listPendingUC, confirmUC, declineUC, rescheduleUC, closeUC)
	checkoutHandler := handlers.NewCheckoutHandler(getCheckoutUC, paymentURLUC)
	financeHandler := handlers.NewFinanceHandler(buildLedgerUC, exportLedgerUC, recordPaymentUC)
	serviceHandler := handlers.NewServiceHandler(listServicesUC, createServiceUC, updateServiceUC, provisionLinkUC)
	clientHandler := handlers.NewClientHandler(listClientsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(db))

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (intake)
		// ------------------------------
		publicAPI := api.Group("/public/stylists/:stylistId")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.POST("/intake", publicHandler.SubmitIntake)
		}

		// ------------------------------
		// API PRIVADA (estilista)
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/requests", appointmentHandler.ListRequests)

			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/decline", appointmentHandler.Decline)
			secured.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)
			secured.PATCH("/appointments/:id/mark-paid", appointmentHandler.MarkPaid)

			secured.GET("/appointments/:id/checkout", checkoutHandler.Get)
			secured.POST("/appointments/:id/checkout/total", checkoutHandler.Total)
			secured.POST("/appointments/:id/checkout/payment-url", checkoutHandler.PaymentURL)

			secured.GET("/finance/ledger", financeHandler.Ledger)
			secured.GET("/finance/export.csv", financeHandler.Export)
			secured.POST("/finance/payments", financeHandler.RecordPayment)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.POST("/services/:id/payment-link", serviceHandler.ProvisionPaymentLink)

			secured.GET("/clients", clientHandler.List)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
