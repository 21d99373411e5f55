package api

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/models"
)

func responseCookieValue(cookies []*http.Cookie, name string) string {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

func decodeUserResponse(t *testing.T, body io.Reader) models.User {
	t.Helper()

	user := models.User{}
	if err := json.NewDecoder(body).Decode(&user); err != nil {
		t.Fatalf("decode user response: %v", err)
	}
	return user
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]string{}
	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload["error"]
}
