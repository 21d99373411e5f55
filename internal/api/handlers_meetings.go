package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/services"
)

// ListMeetings returns the acting resident's attendance in display order:
// newest date first. Stored order is insertion order; the sort happens here
// because it is a view concern.
func (handler *Handler) ListMeetings(c *fiber.Ctx) error {
	_, record, err := handler.actingResident(c)
	if err != nil {
		return respondResidentRecordRequired(c)
	}
	return c.JSON(services.SortedAttendance(record.Attendance))
}

func (handler *Handler) SaveMeeting(c *fiber.Ctx) error {
	actor, record, err := handler.actingResident(c)
	if err != nil {
		return respondResidentRecordRequired(c)
	}

	payload := meetingPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	updated, err := services.SaveMeeting(record, payload.MeetingInput, payload.EditingID)
	if err != nil {
		if errors.Is(err, services.ErrMeetingLocationRequired) {
			return apiError(c, fiber.StatusBadRequest, "meeting location is required")
		}
		return apiError(c, fiber.StatusBadRequest, "invalid meeting")
	}

	return handler.submitResidentUpdate(c, actor, updated)
}

func (handler *Handler) DeleteMeeting(c *fiber.Ctx) error {
	actor, record, err := handler.actingResident(c)
	if err != nil {
		return respondResidentRecordRequired(c)
	}
	if !confirmedDestructive(c) {
		return respondConfirmationRequired(c)
	}

	updated := services.DeleteMeeting(record, c.Params("id"))
	return handler.submitResidentUpdate(c, actor, updated)
}
