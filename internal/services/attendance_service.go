package services

import (
	"sort"

	"github.com/google/uuid"
	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/models"
)

// SaveMeeting mirrors SaveShift's edit-or-create semantics, keyed on the
// attendance id, except that newly logged meetings are prepended so the most
// recent entry shows first even before the date sort.
func SaveMeeting(user models.User, input MeetingInput, editingID string) (models.User, error) {
	if err := ValidateMeetingInput(input); err != nil {
		return models.User{}, err
	}

	updated := user.Clone()
	if editingID != "" {
		for index := range updated.Attendance {
			if updated.Attendance[index].ID == editingID {
				updated.Attendance[index] = models.Attendance{
					ID:       editingID,
					Date:     input.Date,
					Type:     input.Type,
					Location: input.Location,
					Time:     input.Time,
				}
				return updated, nil
			}
		}
	}

	entry := models.Attendance{
		ID:       uuid.NewString(),
		Date:     input.Date,
		Type:     input.Type,
		Location: input.Location,
		Time:     input.Time,
	}
	updated.Attendance = append([]models.Attendance{entry}, updated.Attendance...)
	return updated, nil
}

// DeleteMeeting removes the matching attendance record; unknown ids are a
// no-op.
func DeleteMeeting(user models.User, meetingID string) models.User {
	updated := user.Clone()
	filtered := make([]models.Attendance, 0, len(updated.Attendance))
	for _, record := range updated.Attendance {
		if record.ID != meetingID {
			filtered = append(filtered, record)
		}
	}
	updated.Attendance = filtered
	return updated
}

// SortedAttendance is the display ordering: newest date first, relying on
// ISO dates sorting lexicographically. The sort is stable so same-day
// entries keep their stored order, and the stored list itself is untouched.
func SortedAttendance(records []models.Attendance) []models.Attendance {
	sorted := make([]models.Attendance, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(left int, right int) bool {
		return sorted[left].Date > sorted[right].Date
	})
	return sorted
}
