package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/AgriCore-api/internal/application/dto"
	"github.com/jhoicas/AgriCore-api/pkg/jwt"
)

// Locals keys para UserID y Username en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
)

// CookieName nombre de la cookie que transporta el access token.
const CookieName = "accessToken"

// AuthMiddleware valida el JWT de la cookie accessToken (o del header
// Authorization como fallback para clientes no-browser) y extrae UserID y
// Username a c.Locals. El núcleo confía en este ownerId sin revalidar.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(CookieName)
		if tokenString == "" || tokenString == "undefined" || tokenString == "null" {
			tokenString = bearerToken(c.Get("Authorization"))
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("usuario no autenticado"))
		}
		userID, username, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("token inválido o expirado"))
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUsername, username)
		return c.Next()
	}
}

// bearerToken extrae el token de un header "Bearer <token>"; vacío si no aplica.
func bearerToken(authHeader string) string {
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUsername devuelve el Username del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
