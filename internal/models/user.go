package models

const (
	RoleResident = "RESIDENT"
	RoleManager  = "MANAGER"
)

const (
	// ManagerID identifies the house-manager singleton. The record with this
	// id never appears in the resident collection and cannot be deleted.
	ManagerID = "owner-1"

	DefaultResidentPassword = "newuser123"
	DefaultWeeklyRent       = 150
)

type User struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	Password        string       `json:"password,omitempty"`
	Role            string       `json:"role"`
	RentDueThisWeek float64      `json:"rentDueThisWeek"`
	TotalPaid       float64      `json:"totalPaid"`
	TotalOwed       float64      `json:"totalOwed"`
	Schedule        WorkSchedule `json:"schedule"`
	Goals           []Goal       `json:"goals"`
	Attendance      []Attendance `json:"attendance,omitempty"`
}

type WorkSchedule struct {
	Shifts []Shift `json:"shifts"`
}

type Shift struct {
	ID        string `json:"id"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Employer  string `json:"employer"`
}

// NewResident builds a resident record with the house defaults: weekly rent
// due, nothing paid or owed yet, an empty schedule, and the shared starter
// password the manager hands out at move-in.
func NewResident(id string, name string, email string) User {
	return User{
		ID:              id,
		Name:            name,
		Email:           email,
		Password:        DefaultResidentPassword,
		Role:            RoleResident,
		RentDueThisWeek: DefaultWeeklyRent,
		TotalPaid:       0,
		TotalOwed:       0,
		Schedule:        WorkSchedule{Shifts: []Shift{}},
		Goals:           []Goal{},
	}
}

// Clone returns a deep copy. Store snapshots hand out clones so callers can
// never alias the authoritative slices.
func (user User) Clone() User {
	copied := user
	copied.Schedule = user.Schedule.Clone()
	if user.Goals != nil {
		copied.Goals = make([]Goal, len(user.Goals))
		for index := range user.Goals {
			copied.Goals[index] = user.Goals[index].Clone()
		}
	}
	if user.Attendance != nil {
		copied.Attendance = make([]Attendance, len(user.Attendance))
		copy(copied.Attendance, user.Attendance)
	}
	return copied
}

func (schedule WorkSchedule) Clone() WorkSchedule {
	copied := WorkSchedule{}
	if schedule.Shifts != nil {
		copied.Shifts = make([]Shift, len(schedule.Shifts))
		copy(copied.Shifts, schedule.Shifts)
	}
	return copied
}
