package http

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/application/exchange"
)

// maxUpload tamaño máximo de un CSV subido como multipart.
const maxUpload = 8 << 20

// ImportHandler previsualización e importación de catálogo CSV.
type ImportHandler struct {
	uc *exchange.UseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *exchange.UseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
}

// uploaded lee el campo "file" como bytes crudos (conserva Windows-1252).
func uploaded(c *fiber.Ctx) ([]byte, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxUpload))
}

// Preview godoc
// @Summary      Previsualizar CSV (cabecera + filas)
// @Tags         import
// @Accept       json,mpfd
// @Produce      json
// @Param        body  body      dto.PreviewRequest  false  "CSV en texto"
// @Param        file  formData  file                false  "CSV"
// @Success      200   {object}  exchange.Table
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/import/preview [post]
func (h *ImportHandler) Preview(c *fiber.Ctx) error {
	var content []byte
	if isMultipart(c) {
		data, err := uploaded(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "campo file requerido"})
		}
		content = data
	} else {
		var in dto.PreviewRequest
		if ok, err := parseBody(c, &in); !ok {
			return err
		}
		content = []byte(in.Content)
	}
	table, err := h.uc.Preview(content)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(table)
}

// Import godoc
// @Summary      Importar productos desde CSV
// @Tags         import
// @Accept       json,mpfd
// @Produce      json
// @Param        body     body      dto.ImportRequest  false  "CSV en texto + mapeo"
// @Param        file     formData  file               false  "CSV"
// @Param        mapping  formData  string             false  "ean=0,name=1,..."
// @Success      200      {object}  exchange.ImportResult
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/import [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	var (
		content []byte
		mapping exchange.Mapping
	)
	if isMultipart(c) {
		data, err := uploaded(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "campo file requerido"})
		}
		m, err := exchange.ParseMapping(c.FormValue("mapping"))
		if err != nil {
			return writeError(c, err)
		}
		content, mapping = data, m
	} else {
		var in dto.ImportRequest
		if ok, err := parseBody(c, &in); !ok {
			return err
		}
		content, mapping = []byte(in.Content), exchange.Mapping(in.Mapping)
	}
	res, err := h.uc.Import(content, mapping)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}
