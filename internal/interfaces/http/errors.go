package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
)

var validate = validator.New()

// parseBody decodifica y valida el cuerpo. Devuelve la respuesta de error ya escrita
// (ok=false) para que el handler solo tenga que retornarla.
func parseBody(c *fiber.Ctx, out any) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	return true, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fe.Namespace() + ": regla " + fe.Tag()
	}
	return err.Error()
}

// writeError traduce errores de dominio a códigos HTTP.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrNotAuthenticated):
		status, code = fiber.StatusUnauthorized, "NOT_AUTHENTICATED"
	case errors.Is(err, domain.ErrProductNotFound), errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrOutOfStock):
		status, code = fiber.StatusConflict, "OUT_OF_STOCK"
	case errors.Is(err, domain.ErrScannerDisabled):
		status, code = fiber.StatusForbidden, "SCANNER_DISABLED"
	case errors.Is(err, domain.ErrRemote):
		status, code = fiber.StatusBadGateway, "REMOTE"
	case errors.Is(err, domain.ErrStorage):
		status, code = fiber.StatusInternalServerError, "STORAGE"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
