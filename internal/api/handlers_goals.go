package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/services"
)

func (handler *Handler) ToggleMilestone(c *fiber.Ctx) error {
	actor, record, err := handler.actingResident(c)
	if err != nil {
		return respondResidentRecordRequired(c)
	}

	updated := services.ToggleMilestone(record, c.Params("goalID"), c.Params("milestoneID"))
	return handler.submitResidentUpdate(c, actor, updated)
}
