package models

// SeedResidents returns the move-in roster the portal starts with. Callers
// get a fresh copy each time; seed data is never shared state.
func SeedResidents() []User {
	return []User{
		{
			ID:              "res-1",
			Name:            "John Doe",
			Email:           "john@example.com",
			Password:        "john123",
			Role:            RoleResident,
			RentDueThisWeek: 150,
			TotalPaid:       1200,
			TotalOwed:       300,
			Schedule: WorkSchedule{Shifts: []Shift{
				{ID: "s1", Day: "Mon", StartTime: "08:00", EndTime: "16:00", Employer: "Main St. Cafe"},
				{ID: "s2", Day: "Wed", StartTime: "08:00", EndTime: "16:00", Employer: "Main St. Cafe"},
			}},
			Goals: []Goal{
				{
					ID:    "g1",
					Title: "90 Days Sober",
					Milestones: []Milestone{
						{ID: "m1", Text: "30 Days", Completed: true},
						{ID: "m2", Text: "60 Days", Completed: false},
						{ID: "m3", Text: "90 Days", Completed: false},
					},
				},
			},
		},
		{
			ID:              "res-2",
			Name:            "Sarah Smith",
			Email:           "sarah@example.com",
			Password:        "sarah123",
			Role:            RoleResident,
			RentDueThisWeek: 150,
			TotalPaid:       2400,
			TotalOwed:       0,
			Schedule: WorkSchedule{Shifts: []Shift{
				{ID: "s3", Day: "Mon", StartTime: "09:00", EndTime: "17:00", Employer: "Tech Solutions Inc"},
				{ID: "s4", Day: "Tue", StartTime: "09:00", EndTime: "17:00", Employer: "Tech Solutions Inc"},
			}},
			Goals: []Goal{
				{
					ID:    "g2",
					Title: "Save for Apartment",
					Milestones: []Milestone{
						{ID: "m4", Text: "Save $500", Completed: true},
						{ID: "m5", Text: "Save $1000", Completed: true},
						{ID: "m6", Text: "Credit Check", Completed: false},
					},
				},
			},
		},
	}
}

// ManagerUser returns the house-manager singleton. It exists from process
// start and is never created or destroyed at runtime.
func ManagerUser() User {
	return User{
		ID:       ManagerID,
		Name:     "House Manager",
		Email:    "owner@beacon.com",
		Password: "password123",
		Role:     RoleManager,
		Schedule: WorkSchedule{Shifts: []Shift{}},
		Goals:    []Goal{},
	}
}
