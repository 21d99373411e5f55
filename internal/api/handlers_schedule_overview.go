package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/services"
)

// ScheduleOverview is the manager's cross-resident shift view. It is
// recomputed from the roster on every request; `name` filters by
// case-insensitive substring, `day` by exact match.
func (handler *Handler) ScheduleOverview(c *fiber.Ctx) error {
	overview := services.AggregateShifts(handler.store.Residents(), c.Query("name"), c.Query("day"))
	return c.JSON(overview)
}
