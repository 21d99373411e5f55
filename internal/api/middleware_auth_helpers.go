package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/models"
)

type authClaims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// authenticateRequest resolves the session cookie to a fresh user record.
// The token only carries the id and role; the record itself is always
// re-read from the store so a session observes edits made since login.
func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, error) {
	rawToken := strings.TrimSpace(c.Cookies(authCookieName))
	if rawToken == "" {
		return nil, errors.New("missing auth cookie")
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, errors.New("token expired")
	}

	if claims.Role == models.RoleManager {
		manager := handler.store.Manager()
		if claims.UserID != manager.ID {
			return nil, errors.New("unknown manager id")
		}
		return &manager, nil
	}

	resident, found := handler.store.FindResident(claims.UserID)
	if !found {
		return nil, errors.New("resident no longer exists")
	}
	return &resident, nil
}
