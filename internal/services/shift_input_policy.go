package services

import (
	"errors"
	"strings"
)

var (
	ErrShiftEmployerRequired = errors.New("shift employer required")
	ErrShiftDayUnknown       = errors.New("shift day unknown")
)

// WeekDays is the closed set of values accepted for a shift's day field.
var WeekDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type ShiftInput struct {
	Day       string `json:"day" form:"day"`
	StartTime string `json:"startTime" form:"startTime"`
	EndTime   string `json:"endTime" form:"endTime"`
	Employer  string `json:"employer" form:"employer"`
}

func IsKnownWeekDay(day string) bool {
	for _, known := range WeekDays {
		if day == known {
			return true
		}
	}
	return false
}

// ValidateShiftInput rejects a shift before it ever reaches the store.
// Employer is the only required free-text field; the day value is flagged
// when it falls outside the seven-day set instead of being stored silently.
func ValidateShiftInput(input ShiftInput) error {
	if strings.TrimSpace(input.Employer) == "" {
		return ErrShiftEmployerRequired
	}
	if !IsKnownWeekDay(input.Day) {
		return ErrShiftDayUnknown
	}
	return nil
}
