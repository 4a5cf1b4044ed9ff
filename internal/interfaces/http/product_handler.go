package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/application/inventory"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// ProductHandler catálogo y operaciones de stock.
type ProductHandler struct {
	engine *inventory.Engine
	now    func() time.Time
}

// NewProductHandler construye el handler.
func NewProductHandler(engine *inventory.Engine) *ProductHandler {
	return &ProductHandler{engine: engine, now: time.Now}
}

func productID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	return id, err == nil
}

// lookup resuelve :id a un producto existente o escribe la respuesta de error.
func (h *ProductHandler) lookup(c *fiber.Ctx) (int64, bool, error) {
	id, ok := productID(c)
	if !ok {
		return 0, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	if _, found := h.engine.Product(id); !found {
		return 0, false, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return id, true, nil
}

// List godoc
// @Summary      Listar o buscar productos
// @Tags         products
// @Produce      json
// @Param        q    query  string  false  "Nombre, ubicación o EAN"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products := h.engine.Search(c.Query("q"))
	return c.JSON(dto.ProductListResponse{Products: products, Total: len(products)})
}

// Create godoc
// @Summary      Añadir productos
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductsRequest  true  "Productos"
// @Success      201   {object}  dto.ProductListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductsRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	now := h.now()
	products := make([]entity.Product, 0, len(in.Products))
	for i, p := range in.Products {
		products = append(products, p.ToEntity(now, i))
	}
	h.engine.AddProducts(products)
	return c.Status(fiber.StatusCreated).JSON(dto.ProductListResponse{Products: products, Total: len(products)})
}

// GetByID godoc
// @Summary      Obtener producto
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  entity.Product
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	p, found := h.engine.Product(id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(p)
}

// Update godoc
// @Summary      Modificar campos de un producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID del producto"
// @Param        body  body  entity.ProductPatch  true  "Campos a modificar"
// @Success      200   {object}  entity.Product
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [patch]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok, err := h.lookup(c)
	if !ok {
		return err
	}
	var patch entity.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	h.engine.UpdateProduct(id, patch)
	p, _ := h.engine.Product(id)
	return c.JSON(p)
}

// UpdateStock godoc
// @Summary      Ajustar stock (+/-)
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID del producto"
// @Param        body  body  dto.UpdateStockRequest  true  "Cambio"
// @Success      200   {object}  entity.Product
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [post]
func (h *ProductHandler) UpdateStock(c *fiber.Ctx) error {
	id, ok, err := h.lookup(c)
	if !ok {
		return err
	}
	var in dto.UpdateStockRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	h.engine.UpdateStock(id, in.Change, in.Reason)
	p, _ := h.engine.Product(id)
	return c.JSON(p)
}

// InitialStock godoc
// @Summary      Inicializar stock y umbral
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "ID del producto"
// @Param        body  body  dto.InitialStockRequest  true  "Cantidad y umbral"
// @Success      200   {object}  entity.Product
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock/initial [put]
func (h *ProductHandler) InitialStock(c *fiber.Ctx) error {
	id, ok, err := h.lookup(c)
	if !ok {
		return err
	}
	var in dto.InitialStockRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	h.engine.SetInitialStock(id, in.Quantity, in.Threshold)
	p, _ := h.engine.Product(id)
	return c.JSON(p)
}

// Scan godoc
// @Summary      Venta por escaneo de código EAN (-1)
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanRequest  true  "Código"
// @Success      200   {object}  entity.Product
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/scan [post]
func (h *ProductHandler) Scan(c *fiber.Ctx) error {
	var in dto.ScanRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	p, err := h.engine.ScanSale(in.EAN)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(p)
}
