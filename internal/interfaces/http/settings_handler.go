package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/application/inventory"
)

// SettingsHandler preferencias de la aplicación.
type SettingsHandler struct {
	engine *inventory.Engine
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(engine *inventory.Engine) *SettingsHandler {
	return &SettingsHandler{engine: engine}
}

// Get godoc
// @Summary      Ajustes actuales
// @Tags         settings
// @Produce      json
// @Success      200  {object}  entity.AppSettings
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.engine.Settings())
}

// Update godoc
// @Summary      Modificar ajustes (merge superficial)
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSettingsRequest  true  "Campos a modificar"
// @Success      200   {object}  entity.AppSettings
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings [patch]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	h.engine.UpdateSettings(in.ToPatch())
	return c.JSON(h.engine.Settings())
}
