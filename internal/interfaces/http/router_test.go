package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/AgriCore-api/internal/interfaces/http"
	"github.com/jhoicas/AgriCore-api/pkg/config"
	"github.com/jhoicas/AgriCore-api/pkg/logger"
)

// buildRouterApp monta el router completo con dependencias vacías: suficiente
// para verificar métodos y protección de rutas, porque el middleware de auth
// corta antes de llegar a cualquier caso de uso.
func buildRouterApp() *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Cookie:    config.CookieConfig{Name: "accessToken", Path: "/"},
		JWTSecret: testJWTSecret,
		Log:       logger.New(logger.Config{Env: "development", Level: "error"}),
	})
	return app
}

// El cambio de contraseña va por POST (contrato del frontend) y exige sesión:
// sin token responde 401, nunca 404/405.
func TestRouter_UpdatePassword_EsPOSTProtegido(t *testing.T) {
	app := buildRouterApp()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/update-user-password", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"la ruta POST debe existir y estar protegida")

	req = httptest.NewRequest(http.MethodPatch, "/api/v1/user/update-user-password", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode,
		"PATCH no forma parte del contrato de esta ruta")
}

// Las rutas del ciclo de vida de cultivos exigen sesión.
func TestRouter_RutasDeCultivoProtegidas(t *testing.T) {
	app := buildRouterApp()

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/crop/"},
		{http.MethodGet, "/api/v1/crop/"},
		{http.MethodPatch, "/api/v1/crop/abc"},
		{http.MethodGet, "/api/v1/dashboard"},
		{http.MethodGet, "/api/v1/report/crops"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
			"%s %s debe exigir autenticación", tc.method, tc.path)
	}
}
