package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/models"
	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/store"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) (*fiber.App, *store.SessionStore) {
	t.Helper()

	sessionStore := store.NewSeededStore(zap.NewNop())
	handler := NewHandler(sessionStore, "test-secret", false, zap.NewNop())

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, sessionStore
}

func jsonRequest(t *testing.T, method string, path string, payload any) *http.Request {
	t.Helper()

	var body *bytes.Reader
	if payload == nil {
		body = bytes.NewReader(nil)
	} else {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	request.Header.Set("Content-Type", "application/json")
	return request
}

func performRequest(t *testing.T, app *fiber.App, request *http.Request) *http.Response {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	return response
}

// loginCookie performs a login and returns the auth cookie value for use in
// follow-up requests.
func loginCookie(t *testing.T, app *fiber.App, role string, email string, password string) string {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/auth/login", fiber.Map{
		"role":     role,
		"email":    email,
		"password": password,
	})
	response := performRequest(t, app, request)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("login as %s failed with status %d", email, response.StatusCode)
	}
	cookie := responseCookieValue(response.Cookies(), authCookieName)
	if cookie == "" {
		t.Fatalf("expected auth cookie after login as %s", email)
	}
	return cookie
}

func residentCookie(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()
	return loginCookie(t, app, models.RoleResident, email, password)
}

func managerCookie(t *testing.T, app *fiber.App) string {
	t.Helper()
	return loginCookie(t, app, models.RoleManager, "owner@beacon.com", "password123")
}

func withAuthCookie(request *http.Request, cookie string) *http.Request {
	request.Header.Set("Cookie", authCookieName+"="+cookie)
	return request
}
