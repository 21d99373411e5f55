package models

type Attendance struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Type     string `json:"type"`
	Location string `json:"location,omitempty"`
	Time     string `json:"time,omitempty"`
}

// MeetingTypes lists the program kinds offered in the log-meeting form. The
// stored Type field stays free-form; this is presentation reference data.
var MeetingTypes = []string{
	"AA",
	"NA",
	"Celebrate Recovery",
	"SMART Recovery",
	"Other",
}
