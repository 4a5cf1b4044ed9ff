package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/application/inventory"
	"github.com/jhoicas/Inventario-stock/internal/application/notification"
)

// DashboardHandler tablero, toast actual y datos de ejemplo.
type DashboardHandler struct {
	engine *inventory.Engine
	toasts *notification.Channel
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(engine *inventory.Engine, toasts *notification.Channel) *DashboardHandler {
	return &DashboardHandler{engine: engine, toasts: toasts}
}

// Get godoc
// @Summary      Indicadores del inventario
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	return c.JSON(dto.DashboardResponse{
		Stats:     h.engine.Stats(),
		Alerts:    h.engine.Alerts(),
		Suppliers: len(h.engine.Suppliers()),
	})
}

// Notification godoc
// @Summary      Toast visible
// @Tags         notification
// @Produce      json
// @Success      200  {object}  dto.NotificationResponse
// @Router       /api/notification [get]
func (h *DashboardHandler) Notification(c *fiber.Ctx) error {
	t, ok := h.toasts.Current()
	if !ok {
		return c.JSON(dto.NotificationResponse{})
	}
	return c.JSON(dto.NotificationResponse{Visible: true, Toast: &t})
}

// SampleData godoc
// @Summary      Cargar productos de ejemplo (reemplaza el catálogo)
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/sample-data [post]
func (h *DashboardHandler) SampleData(c *fiber.Ctx) error {
	h.engine.LoadSampleData()
	products := h.engine.Products()
	return c.JSON(dto.ProductListResponse{Products: products, Total: len(products)})
}
