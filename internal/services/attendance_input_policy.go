package services

import (
	"errors"
	"strings"
)

var ErrMeetingLocationRequired = errors.New("meeting location required")

type MeetingInput struct {
	Date     string `json:"date" form:"date"`
	Type     string `json:"type" form:"type"`
	Location string `json:"location" form:"location"`
	Time     string `json:"time" form:"time"`
}

// ValidateMeetingInput runs before any store call. Location is the only
// required field; date and time stay free-form strings.
func ValidateMeetingInput(input MeetingInput) error {
	if strings.TrimSpace(input.Location) == "" {
		return ErrMeetingLocationRequired
	}
	return nil
}
