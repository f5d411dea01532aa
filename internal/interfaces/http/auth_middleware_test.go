package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tortas-api/internal/domain/entity"
	apphttp "github.com/jhoicas/tortas-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/tortas-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testEmail     = "ana@example.com"
	testIssuer    = "tortas-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT para email con el rol indicado.
func tokenFor(t *testing.T, email, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testIssuer, testExpMin, pkgjwt.Identity{
		UserID: testUserID, Email: email, Name: "Ana", Role: role,
	})
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// tokenForRole genera un JWT del usuario de prueba con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	return tokenFor(t, testEmail, role)
}

// doGet lanza una petición GET a path y devuelve la respuesta.
func doGet(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	return doGet(t, app, "/protected", authHeader)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["role"])
}

func TestRequireRole_ClienteBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "user"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_VariosRolesPermitidos(t *testing.T) {
	app := buildTestApp("admin", "user")
	resp := doRequest(t, app, tokenForRole(t, "user"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

func TestRequireRole_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestRequireRole_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_FormatoSinBearer_Retorna401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Token abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware: extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeSesion(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		s := apphttp.GetSession(c)
		return c.JSON(fiber.Map{
			"user_id": s.UserID,
			"email":   s.Email,
			"name":    s.Name,
			"role":    s.Role,
		})
	})

	resp := doGet(t, app, "/me", tokenForRole(t, "admin"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testEmail, body["email"])
	assert.Equal(t, "Ana", body["name"])
	assert.Equal(t, "admin", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests OptionalAuth y RequireSelfOrAdmin
// ──────────────────────────────────────────────────────────────────────────────

func buildOptionalApp() *fiber.App {
	app := fiber.New()
	app.Get("/track", apphttp.OptionalAuth(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"admin": apphttp.GetSession(c).IsAdmin(), "role": apphttp.GetRole(c)})
	})
	return app
}

func TestOptionalAuth_SinToken_PeticionAnonima(t *testing.T) {
	resp := doGet(t, buildOptionalApp(), "/track", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["admin"])
	assert.Equal(t, "", body["role"])
}

func TestOptionalAuth_TokenInvalido_NoRechaza(t *testing.T) {
	resp := doGet(t, buildOptionalApp(), "/track", "Bearer basura")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOptionalAuth_TokenAdmin(t *testing.T) {
	resp := doGet(t, buildOptionalApp(), "/track", tokenForRole(t, "admin"))
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["admin"])
}

func buildOwnerApp() *fiber.App {
	app := fiber.New()
	app.Get("/orders/user/:email",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireSelfOrAdmin("email"),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func TestRequireSelfOrAdmin(t *testing.T) {
	app := buildOwnerApp()
	cases := []struct {
		name   string
		path   string
		auth   string
		status int
	}{
		{"propio email", "/orders/user/ana@example.com", tokenForRole(t, "user"), http.StatusOK},
		{"propio email codificado y en mayúsculas", "/orders/user/ANA%40Example.com", tokenForRole(t, "user"), http.StatusOK},
		{"email ajeno", "/orders/user/otro@example.com", tokenForRole(t, "user"), http.StatusForbidden},
		{"admin ve cualquiera", "/orders/user/otro@example.com", tokenForRole(t, "admin"), http.StatusOK},
		{"sin token", "/orders/user/ana@example.com", "", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doGet(t, app, tc.path, tc.auth)
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RefreshRole: el rol vigente prevalece sobre el del token
// ──────────────────────────────────────────────────────────────────────────────

type fixedRoles map[string]string

func (f fixedRoles) CurrentRole(_ context.Context, s *entity.Session) (string, error) {
	return f[s.UserID], nil
}

func buildRefreshApp(roles fixedRoles) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RefreshRole(roles),
		apphttp.RequireRole("admin"),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func TestRefreshRole(t *testing.T) {
	cases := []struct {
		name   string
		roles  fixedRoles
		status int
	}{
		{"sigue siendo admin", fixedRoles{testUserID: "admin"}, http.StatusOK},
		{"degradado tras emitir el token", fixedRoles{testUserID: "user"}, http.StatusForbidden},
		{"cuenta eliminada", fixedRoles{}, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doRequest(t, buildRefreshApp(tc.roles), tokenForRole(t, "admin"))
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestRefreshRole_PromovidoAccedeConTokenAnterior(t *testing.T) {
	resp := doRequest(t, buildRefreshApp(fixedRoles{testUserID: "admin"}), tokenForRole(t, "user"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
