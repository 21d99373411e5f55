package services

import (
	"github.com/google/uuid"
	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/models"
)

// SaveShift produces a replacement user record with the shift applied. When
// editingID matches an existing shift its fields are rewritten in place,
// keeping the id and list position; otherwise a new shift is appended with a
// fresh id. The input record is never mutated.
func SaveShift(user models.User, input ShiftInput, editingID string) (models.User, error) {
	if err := ValidateShiftInput(input); err != nil {
		return models.User{}, err
	}

	updated := user.Clone()
	if editingID != "" {
		for index := range updated.Schedule.Shifts {
			if updated.Schedule.Shifts[index].ID == editingID {
				updated.Schedule.Shifts[index] = models.Shift{
					ID:        editingID,
					Day:       input.Day,
					StartTime: input.StartTime,
					EndTime:   input.EndTime,
					Employer:  input.Employer,
				}
				return updated, nil
			}
		}
	}

	updated.Schedule.Shifts = append(updated.Schedule.Shifts, models.Shift{
		ID:        uuid.NewString(),
		Day:       input.Day,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Employer:  input.Employer,
	})
	return updated, nil
}

// DeleteShift removes the matching shift; an unknown id leaves the record
// unchanged apart from being a fresh copy.
func DeleteShift(user models.User, shiftID string) models.User {
	updated := user.Clone()
	filtered := make([]models.Shift, 0, len(updated.Schedule.Shifts))
	for _, shift := range updated.Schedule.Shifts {
		if shift.ID != shiftID {
			filtered = append(filtered, shift)
		}
	}
	updated.Schedule.Shifts = filtered
	return updated
}
