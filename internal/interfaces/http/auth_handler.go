package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/AgriCore-api/internal/application/auth"
	"github.com/jhoicas/AgriCore-api/internal/application/dto"
	"github.com/jhoicas/AgriCore-api/internal/domain"
	"github.com/jhoicas/AgriCore-api/pkg/config"
	"github.com/jhoicas/AgriCore-api/pkg/logger"
)

// AuthHandler expone registro, login, logout y cambio de contraseña.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie config.CookieConfig
	log    *logger.Logger
}

func NewAuthHandler(uc *auth.AuthUseCase, cookie config.CookieConfig, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie, log: log}
}

// Register crea un nuevo usuario.
// POST /api/v1/user/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo de la petición inválido"))
	}
	user, err := h.uc.RegisterUser(req)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			h.log.Warn().Str("username", req.Username).Msg("registro con username duplicado")
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("usuario registrado correctamente", user))
}

// Login autentica y fija la cookie accessToken.
// POST /api/v1/user/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo de la petición inválido"))
	}
	res, err := h.uc.Login(req)
	if err != nil {
		return respondError(c, err)
	}
	h.setAuthCookie(c, res.Token)
	return c.JSON(dto.OK("login exitoso", res))
}

// Logout limpia la cookie de sesión.
// POST /api/v1/user/logOut
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     h.cookie.Path,
		Domain:   h.cookie.Domain,
		Expires:  time.Unix(0, 0),
		Secure:   h.cookie.Secure,
		HTTPOnly: h.cookie.HTTPOnly,
		SameSite: h.cookie.SameSite,
	})
	return c.JSON(dto.OK("sesión cerrada", nil))
}

// UpdatePassword cambia la contraseña del usuario autenticado.
// POST /api/v1/user/update-user-password
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	var req dto.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo de la petición inválido"))
	}
	if err := h.uc.UpdatePassword(GetUserID(c), req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("contraseña actualizada", nil))
}

func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     h.cookie.Path,
		Domain:   h.cookie.Domain,
		MaxAge:   h.cookie.MaxAge,
		Secure:   h.cookie.Secure,
		HTTPOnly: h.cookie.HTTPOnly,
		SameSite: h.cookie.SameSite,
	})
}
