package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-stock/internal/application/auth"
	"github.com/jhoicas/Inventario-stock/internal/application/dto"
)

// SessionHandler login / logout / estado de la sesión.
type SessionHandler struct {
	manager *auth.Manager
}

// NewSessionHandler construye el handler.
func NewSessionHandler(manager *auth.Manager) *SessionHandler {
	return &SessionHandler{manager: manager}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/session/login [post]
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	if err := h.manager.Login(c.UserContext(), in.Email, in.Password); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.current())
}

// Logout godoc
// @Summary      Cerrar sesión (borra el estado local)
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/session/logout [post]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	h.manager.Logout(c.UserContext())
	return c.JSON(h.current())
}

// Get godoc
// @Summary      Estado de la sesión
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/session [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.current())
}

func (h *SessionHandler) current() dto.SessionResponse {
	s := h.manager.Session()
	return dto.SessionResponse{IsAuthenticated: s.IsAuthenticated, UserEmail: s.UserEmail}
}
