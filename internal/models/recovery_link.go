package models

import "time"

const (
	LinkTypeMeeting  = "meeting"
	LinkTypeMaterial = "material"
)

// RecoveryLink is static reference data shown on the resident dashboard.
// Links are never mutated at runtime.
type RecoveryLink struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

func RecoveryResources() []RecoveryLink {
	return []RecoveryLink{
		{Title: "AA Online Meetings", URL: "https://aa-intergroup.org/meetings/", Type: LinkTypeMeeting, Description: "Global directory of AA Zoom meetings"},
		{Title: "NA Virtual", URL: "https://virtual-na.org/", Type: LinkTypeMeeting, Description: "Narcotics Anonymous online presence"},
		{Title: "SMART Recovery", URL: "https://www.smartrecovery.org/community/", Type: LinkTypeMeeting, Description: "Science-based self-empowerment"},
		{Title: "The Fix", URL: "https://www.thefix.com/", Type: LinkTypeMaterial, Description: "Addiction and recovery news"},
		{Title: "Inspiration Daily", URL: "https://www.hazeldenbettyford.org/thought-for-the-day", Type: LinkTypeMaterial, Description: "Hazelden Betty Ford daily meditations"},
	}
}

var quotes = []string{
	"Recovery is not for people who need it, it's for people who want it.",
	"One day at a time.",
	"Your best days are ahead of you.",
	"It does not matter how slowly you go as long as you do not stop.",
}

// DailyQuote rotates through the quote list once per calendar day.
func DailyQuote(now time.Time) string {
	day := now.Unix() / 86400
	if day < 0 {
		day = -day
	}
	return quotes[day%int64(len(quotes))]
}
