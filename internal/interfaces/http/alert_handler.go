package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/application/exchange"
	"github.com/jhoicas/Inventario-stock/internal/application/inventory"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// AlertHandler alertas derivadas y su exportación.
type AlertHandler struct {
	engine   *inventory.Engine
	exchange *exchange.UseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(engine *inventory.Engine, uc *exchange.UseCase) *AlertHandler {
	return &AlertHandler{engine: engine, exchange: uc}
}

// List godoc
// @Summary      Alertas de stock (faible primero, rupture después)
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  dto.AlertListResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	alerts := h.engine.Alerts()
	out := dto.AlertListResponse{Alerts: alerts}
	for _, a := range alerts {
		if a.Type == entity.AlertOut {
			out.Out++
		} else {
			out.Low++
		}
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar alertas en CSV (;)
// @Tags         alerts
// @Produce      text/csv
// @Success      200  {file}    file
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alerts/export.csv [get]
func (h *AlertHandler) ExportCSV(c *fiber.Ctx) error {
	file, err := h.exchange.ExportCSV()
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, file)
}

// ExportPDF godoc
// @Summary      Exportar alertas en PDF
// @Tags         alerts
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alerts/export.pdf [get]
func (h *AlertHandler) ExportPDF(c *fiber.Ctx) error {
	file, err := h.exchange.ExportPDF()
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, file)
}

func sendFile(c *fiber.Ctx, file *exchange.ExportFile) error {
	c.Attachment(file.Name)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Send(file.Data)
}
