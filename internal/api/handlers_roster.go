package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/services"
	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/store"
)

func (handler *Handler) ListResidents(c *fiber.Ctx) error {
	return c.JSON(presentUsers(handler.store.Residents()))
}

func (handler *Handler) AddResident(c *fiber.Ctx) error {
	actor, _ := currentUser(c)

	input := newResidentInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := services.ValidateNewResident(input.Name, input.Email); err != nil {
		if errors.Is(err, services.ErrResidentNameRequired) {
			return apiError(c, fiber.StatusBadRequest, "name is required")
		}
		return apiError(c, fiber.StatusBadRequest, "a valid email is required")
	}

	resident, err := handler.store.AddResident(actor, input.Name, input.Email)
	if err != nil {
		return apiError(c, fiber.StatusForbidden, "manager access required")
	}
	return c.Status(fiber.StatusCreated).JSON(presentUser(resident))
}

func (handler *Handler) DeleteResident(c *fiber.Ctx) error {
	actor, _ := currentUser(c)
	if !confirmedDestructive(c) {
		return respondConfirmationRequired(c)
	}

	if err := handler.store.DeleteResident(actor, c.Params("id")); err != nil {
		if errors.Is(err, store.ErrProtectedRecord) {
			return apiError(c, fiber.StatusConflict, "cannot delete the house manager account")
		}
		return apiError(c, fiber.StatusForbidden, "manager access required")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// UpdateResidentFinance edits one numeric ledger field at a time and pushes
// the whole replacement record through the store, so the authorization gate
// stays a single checkpoint.
func (handler *Handler) UpdateResidentFinance(c *fiber.Ctx) error {
	actor, _ := currentUser(c)

	record, found := handler.store.FindResident(c.Params("id"))
	if !found {
		return apiError(c, fiber.StatusNotFound, "resident not found")
	}

	input := financeInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	updated, err := services.ApplyFinancialField(record, input.Field, input.Value)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "unknown financial field")
	}

	return handler.submitResidentUpdate(c, actor, updated)
}
