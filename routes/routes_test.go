package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/coinfolio/coinfolio/config"
	"github.com/coinfolio/coinfolio/models"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))

	config.NewLoggerService()
	config.DataBase = db
	config.App = &config.AppConfig{
		Listen:          ":0",
		RateLimitMax:    1000,
		RateLimitWindow: 60,
		CacheExpiration: 1,
	}

	return SetupRouter()
}

func jsonRequest(method, target string, payload interface{}, token string) *http.Request {
	var body io.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	if len(token) > 0 {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

func decodeBody(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, dst))
}

func registerAndLogin(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp, err := app.Test(jsonRequest("POST", "/api/auth/register", fiber.Map{
		"email":    "a@x.com",
		"username": "alice",
		"password": "correcthorse",
	}, ""))
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	resp, err = app.Test(jsonRequest("POST", "/api/auth/login", fiber.Map{
		"email":    "a@x.com",
		"password": "correcthorse",
	}, ""))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Token)

	return body.Token
}

func TestRegisterExcludesSensitiveFields(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/auth/register", fiber.Map{
		"email":    "a@x.com",
		"username": "alice",
		"password": "correcthorse",
	}, ""))
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var fields map[string]interface{}
	decodeBody(t, resp, &fields)

	assert.Equal(t, "a@x.com", fields["email"])
	for _, excluded := range []string{"created_at", "last_login", "is_active", "password_hash"} {
		_, present := fields[excluded]
		assert.Falsef(t, present, "register response must not carry %q", excluded)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupTestApp(t)

	payload := fiber.Map{"email": "a@x.com", "username": "alice", "password": "correcthorse"}
	resp, err := app.Test(jsonRequest("POST", "/api/auth/register", payload, ""))
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	payload["username"] = "bob"
	resp, err = app.Test(jsonRequest("POST", "/api/auth/register", payload, ""))
	require.NoError(t, err)
	assert.Equal(t, 422, resp.StatusCode)
}

func TestLoginTouchesLastLogin(t *testing.T) {
	app := setupTestApp(t)

	registerAndLogin(t, app)

	user, err := models.FindUserByEmail("a@x.com")
	require.NoError(t, err)
	assert.True(t, user.LastLogin.Valid)
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupTestApp(t)

	registerAndLogin(t, app)

	resp, err := app.Test(jsonRequest("POST", "/api/auth/login", fiber.Map{
		"email":    "a@x.com",
		"password": "wrong",
	}, ""))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestGetMeRequiresToken(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(jsonRequest("GET", "/api/auth/me", nil, ""))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	app := setupTestApp(t)

	token := registerAndLogin(t, app)
	require.NoError(t, models.CreateCryptocurrency(&models.Cryptocurrency{Symbol: "BTC", IsActive: true}))

	resp, err := app.Test(jsonRequest("POST", "/api/trade/orders", fiber.Map{
		"symbol":     "BTC",
		"order_type": "buy",
		"price":      "65000",
		"quantity":   "0.1",
	}, token))
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var order struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	decodeBody(t, resp, &order)
	assert.Equal(t, "pending", order.Status)

	resp, err = app.Test(jsonRequest("POST", "/api/trade/orders/1/cancel", nil, token))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	decodeBody(t, resp, &order)
	assert.Equal(t, "cancelled", order.Status)

	// A cancelled order cannot be cancelled again.
	resp, err = app.Test(jsonRequest("POST", "/api/trade/orders/1/cancel", nil, token))
	require.NoError(t, err)
	assert.Equal(t, 422, resp.StatusCode)
}

func TestPortfolioEndpoints(t *testing.T) {
	app := setupTestApp(t)

	token := registerAndLogin(t, app)
	require.NoError(t, models.CreateCryptocurrency(&models.Cryptocurrency{Symbol: "BTC", IsActive: true}))

	resp, err := app.Test(jsonRequest("POST", "/api/portfolio/", nil, token))
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var portfolio struct {
		ID int64 `json:"id"`
	}
	decodeBody(t, resp, &portfolio)

	resp, err = app.Test(jsonRequest("POST", "/api/portfolio/1/assets", fiber.Map{
		"symbol":   "BTC",
		"quantity": "0.5",
	}, token))
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	// Same pair again is a constraint violation.
	resp, err = app.Test(jsonRequest("POST", "/api/portfolio/1/assets", fiber.Map{
		"symbol":   "BTC",
		"quantity": "0.5",
	}, token))
	require.NoError(t, err)
	assert.Equal(t, 422, resp.StatusCode)

	resp, err = app.Test(jsonRequest("DELETE", "/api/portfolio/1", nil, token))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
