package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/Inventario-stock/internal/application/auth"
	"github.com/jhoicas/Inventario-stock/internal/application/exchange"
	"github.com/jhoicas/Inventario-stock/internal/application/inventory"
	"github.com/jhoicas/Inventario-stock/internal/application/notification"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName  string
	Engine   *inventory.Engine
	Session  *auth.Manager
	Exchange *exchange.UseCase
	Toasts   *notification.Channel
	Metrics  http.Handler // opcional
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")

	// Sesión (público)
	sessionHandler := NewSessionHandler(deps.Session)
	api.Post("/session/login", sessionHandler.Login)
	api.Post("/session/logout", sessionHandler.Logout)
	api.Get("/session", sessionHandler.Get)

	dashboardHandler := NewDashboardHandler(deps.Engine, deps.Toasts)
	api.Get("/notification", dashboardHandler.Notification)

	// Rutas protegidas (requieren sesión iniciada)
	protected := api.Group("/", RequireSession(deps.Session))

	productHandler := NewProductHandler(deps.Engine)
	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", productHandler.Update)
	products.Post("/:id/stock", productHandler.UpdateStock)
	products.Put("/:id/stock/initial", productHandler.InitialStock)
	protected.Post("/scan", productHandler.Scan)

	supplierHandler := NewSupplierHandler(deps.Engine)
	suppliers := protected.Group("/suppliers")
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Delete("/:name", supplierHandler.Delete)

	alertHandler := NewAlertHandler(deps.Engine, deps.Exchange)
	alerts := protected.Group("/alerts")
	alerts.Get("/", alertHandler.List)
	alerts.Get("/export.csv", alertHandler.ExportCSV)
	alerts.Get("/export.pdf", alertHandler.ExportPDF)

	settingsHandler := NewSettingsHandler(deps.Engine)
	protected.Get("/settings", settingsHandler.Get)
	protected.Patch("/settings", settingsHandler.Update)

	importHandler := NewImportHandler(deps.Exchange)
	protected.Post("/import/preview", importHandler.Preview)
	protected.Post("/import", importHandler.Import)

	protected.Get("/dashboard", dashboardHandler.Get)
	protected.Post("/sample-data", dashboardHandler.SampleData)
}
