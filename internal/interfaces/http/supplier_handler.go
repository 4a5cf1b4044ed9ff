package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/application/inventory"
)

// SupplierHandler lista ordenada de proveedores.
type SupplierHandler struct {
	engine *inventory.Engine
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(engine *inventory.Engine) *SupplierHandler {
	return &SupplierHandler{engine: engine}
}

// List godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Produce      json
// @Success      200  {object}  dto.SupplierListResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.SupplierListResponse{Suppliers: h.engine.Suppliers()})
}

// Create godoc
// @Summary      Añadir proveedor (duplicados y vacíos se ignoran)
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SupplierRequest  true  "Nombre"
// @Success      200   {object}  dto.SupplierListResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	h.engine.AddSupplier(in.Name)
	return c.JSON(dto.SupplierListResponse{Suppliers: h.engine.Suppliers()})
}

// Delete godoc
// @Summary      Eliminar proveedor (sus productos pasan a "Autre")
// @Tags         suppliers
// @Produce      json
// @Param        name  path  string  true  "Nombre"
// @Success      200   {object}  dto.SupplierListResponse
// @Router       /api/suppliers/{name} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_NAME", Message: "nombre mal codificado"})
	}
	h.engine.RemoveSupplier(name)
	return c.JSON(dto.SupplierListResponse{Suppliers: h.engine.Suppliers()})
}
