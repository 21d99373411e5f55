package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/models"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Me returns the fresh record for the authenticated identity. The auth
// middleware already re-read it from the store, so manager edits show up on
// the resident's next request.
func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(presentUser(*user))
}

func (handler *Handler) DailyQuote(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"quote": models.DailyQuote(time.Now())})
}

func (handler *Handler) RecoveryResources(c *fiber.Ctx) error {
	links := models.RecoveryResources()
	linkType := c.Query("type")
	if linkType == "" {
		return c.JSON(links)
	}

	filtered := make([]models.RecoveryLink, 0, len(links))
	for _, link := range links {
		if link.Type == linkType {
			filtered = append(filtered, link)
		}
	}
	return c.JSON(filtered)
}
