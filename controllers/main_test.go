package controllers_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"elearn/config"
	"elearn/routes"
	"elearn/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestApp builds the full route tree over a private in-memory database.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, utils.Migrate(db))

	cfg := &config.Config{
		JWTSecret:  "testsecret",
		SaltRounds: bcrypt.MinCost,
	}

	logger := log.New(io.Discard, "", 0)
	app := fiber.New(fiber.Config{
		ErrorHandler: utils.AppErrorHandler(logger),
	})
	routes.SetupRoutes(app, db, cfg)

	return app, db, cfg
}

func jsonRequest(method, target string, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func signup(t *testing.T, app *fiber.App, name, email, password string, superadmin bool) {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"email":%q,"password":%q,"isSuperadmin":%v}`,
		name, email, password, superadmin)
	resp, err := app.Test(jsonRequest("POST", "/auth/signup", body))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

// signin authenticates and returns the session cookie.
func signin(t *testing.T, app *fiber.App, email, password string) *http.Cookie {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	resp, err := app.Test(jsonRequest("POST", "/auth/signin", body))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == utils.AccessTokenCookie {
			return cookie
		}
	}
	t.Fatal("signin response did not set a session cookie")
	return nil
}
