package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/services"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	c.Locals(contextUserKey, user)
	return c.Next()
}

func (handler *Handler) ManagerOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || !services.IsManagerUser(user) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "manager access required"})
	}
	return c.Next()
}
