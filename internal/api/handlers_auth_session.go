package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/models"
	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/store"
)

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	role := credentials.Role
	if role == "" {
		role = models.RoleResident
	}

	user, err := handler.store.Authenticate(role, credentials.Email, credentials.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	if err := handler.setAuthCookie(c, &user, credentials.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(presentUser(user))
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.store.Logout()
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
