package services

import (
	"strings"

	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/models"
)

// ShiftOverview is one row of the manager's cross-resident schedule view: a
// shift tagged with the display name of the resident who works it.
type ShiftOverview struct {
	ResidentName string `json:"residentName"`
	Day          string `json:"day"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Employer     string `json:"employer"`
}

// AggregateShifts flattens every resident's shift list and applies the two
// manager filters: case-insensitive substring match on the resident name,
// and exact-string match on the day (empty day means no day filter). The
// result is derived data, recomputed on every call.
func AggregateShifts(residents []models.User, nameFilter string, dayFilter string) []ShiftOverview {
	loweredName := strings.ToLower(nameFilter)
	overview := make([]ShiftOverview, 0)
	for _, resident := range residents {
		if !strings.Contains(strings.ToLower(resident.Name), loweredName) {
			continue
		}
		for _, shift := range resident.Schedule.Shifts {
			if dayFilter != "" && shift.Day != dayFilter {
				continue
			}
			overview = append(overview, ShiftOverview{
				ResidentName: resident.Name,
				Day:          shift.Day,
				StartTime:    shift.StartTime,
				EndTime:      shift.EndTime,
				Employer:     shift.Employer,
			})
		}
	}
	return overview
}
