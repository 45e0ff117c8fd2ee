package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-api/internal/application/auth"
	"github.com/jhoicas/comercio-api/internal/application/dto"
)

// AuthHandler maneja el intercambio de credenciales por token.
type AuthHandler struct {
	uc *auth.AuthUseCase
	v  *Validator
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, v *Validator) *AuthHandler {
	return &AuthHandler{uc: uc, v: v}
}

// Token godoc
// @Summary      Obtener token de acceso
// @Description  Acepta form (application/x-www-form-urlencoded) o JSON. username admite nombre de usuario o email.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Param        username  formData  string  true  "Usuario o email"
// @Param        password  formData  string  true  "Password"
// @Success      200       {object}  dto.TokenResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Failure      401       {object}  dto.ErrorResponse
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := h.v.Bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Refresh godoc
// @Summary      Renovar token de acceso
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TokenResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/refresh_token [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	out, err := h.uc.Refresh(GetUser(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
