package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	appanalytics "github.com/jhoicas/feria-pos/internal/application/analytics"
	"github.com/jhoicas/feria-pos/internal/application/auth"
	appstate "github.com/jhoicas/feria-pos/internal/application/state"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StateUC     *appstate.StateUseCase
	DashboardUC *appanalytics.DashboardUseCase
	AuditUC     *appanalytics.AuditUseCase
	InventoryUC *appanalytics.InventoryUseCase
	CustomerUC  *appanalytics.CustomerUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
	// Metrics handler Prometheus; nil deja /metrics sin registrar.
	Metrics nethttp.Handler
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	snapshotHandler := NewSnapshotHandler(deps.StateUC)
	protected.Get("/snapshot", snapshotHandler.Get)

	// Punto de venta
	saleHandler := NewSaleHandler(deps.StateUC)
	protected.Post("/sales", saleHandler.Create)

	// Directorio y cobranza
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.StateUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Post("/:id/payments", customerHandler.RegisterPayment)

	// Preventa
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.StateUC)
	orders.Post("/", orderHandler.Create)
	orders.Patch("/:id/status", orderHandler.SetStatus)

	// Logística
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.StateUC)
	transfers.Post("/", transferHandler.Create)
	transfers.Post("/:id/receive", transferHandler.Receive)

	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.StateUC)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Post("/adjustments", inventoryHandler.Adjust)

	// Tablero y auditoría
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.AuditUC)
	protected.Get("/dashboard", dashboardHandler.GetSummary)
	protected.Get("/audit-log", dashboardHandler.AuditLog)
}
