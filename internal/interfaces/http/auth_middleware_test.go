package http_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-clientes/pkg/jwt"
)

const testSecret = "clave-de-prueba"

func TestAuth_SinTokenRechaza(t *testing.T) {
	app := newTestApp(t, testSecret)

	req := httptest.NewRequest(fiber.MethodGet, "/api/clients", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_FormatosInvalidos(t *testing.T) {
	app := newTestApp(t, testSecret)

	cases := []string{
		"Basic abc123",
		"Bearer",
		"Bearer   ",
		"Bearer no-es-un-jwt",
	}
	for _, header := range cases {
		req := httptest.NewRequest(fiber.MethodGet, "/api/clients", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestAuth_FirmaIncorrectaRechaza(t *testing.T) {
	app := newTestApp(t, testSecret)

	token, err := jwt.Generate("otra-clave", "user-1", "user@example.com", "gestion-clientes", 15)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/api/clients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_TokenValidoPasa(t *testing.T) {
	app := newTestApp(t, testSecret)

	token, err := jwt.Generate(testSecret, "user-1", "user@example.com", "gestion-clientes", 15)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/api/clients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// Sin JWT_SECRET el gate no se monta: la API es pública.
func TestAuth_SinSecretEsPublica(t *testing.T) {
	app := newTestApp(t, "")

	req := httptest.NewRequest(fiber.MethodGet, "/api/clients", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
