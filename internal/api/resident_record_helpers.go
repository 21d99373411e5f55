package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/models"
)

var errNoResidentRecord = errors.New("no resident record for identity")

// actingResident pairs the authenticated identity with its fresh roster
// record. The self-service endpoints only make sense for identities that
// actually live on the roster; the manager uses the roster routes instead.
func (handler *Handler) actingResident(c *fiber.Ctx) (*models.User, models.User, error) {
	actor, ok := currentUser(c)
	if !ok {
		return nil, models.User{}, errNoResidentRecord
	}
	record, found := handler.store.FindResident(actor.ID)
	if !found {
		return nil, models.User{}, errNoResidentRecord
	}
	return actor, record, nil
}

// submitResidentUpdate pushes a whole-record replacement through the store
// and answers with whatever the store now holds. A denied update is logged
// inside the store and deliberately not surfaced here: the response simply
// carries the unchanged record.
func (handler *Handler) submitResidentUpdate(c *fiber.Ctx, actor *models.User, updated models.User) error {
	_ = handler.store.ReplaceResident(actor, updated)
	current, found := handler.store.FindResident(updated.ID)
	if !found {
		return apiError(c, fiber.StatusNotFound, "resident not found")
	}
	return c.JSON(presentUser(current))
}

func respondResidentRecordRequired(c *fiber.Ctx) error {
	return apiError(c, fiber.StatusForbidden, "resident account required")
}
