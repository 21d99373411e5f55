package api

import "github.com/gofiber/fiber/v2"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// confirmedDestructive gates every delete behind an explicit confirmation
// flag from the client. A request without it is answered with 428 and
// changes nothing, matching the portal's confirm-before-delete dialogs.
func confirmedDestructive(c *fiber.Ctx) bool {
	return c.Query("confirm") == "true"
}

func respondConfirmationRequired(c *fiber.Ctx) error {
	return apiError(c, fiber.StatusPreconditionRequired, "confirmation required")
}
