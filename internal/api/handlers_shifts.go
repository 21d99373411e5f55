package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/services"
)

func (handler *Handler) SaveShift(c *fiber.Ctx) error {
	actor, record, err := handler.actingResident(c)
	if err != nil {
		return respondResidentRecordRequired(c)
	}

	payload := shiftPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	updated, err := services.SaveShift(record, payload.ShiftInput, payload.EditingID)
	if err != nil {
		if errors.Is(err, services.ErrShiftEmployerRequired) {
			return apiError(c, fiber.StatusBadRequest, "employer is required")
		}
		if errors.Is(err, services.ErrShiftDayUnknown) {
			return apiError(c, fiber.StatusBadRequest, "day must be one of Mon through Sun")
		}
		return apiError(c, fiber.StatusBadRequest, "invalid shift")
	}

	return handler.submitResidentUpdate(c, actor, updated)
}

func (handler *Handler) DeleteShift(c *fiber.Ctx) error {
	actor, record, err := handler.actingResident(c)
	if err != nil {
		return respondResidentRecordRequired(c)
	}
	if !confirmedDestructive(c) {
		return respondConfirmationRequired(c)
	}

	updated := services.DeleteShift(record, c.Params("id"))
	return handler.submitResidentUpdate(c, actor, updated)
}
