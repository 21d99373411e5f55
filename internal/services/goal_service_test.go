package services

import (
	"reflect"
	"testing"

	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/models"
)

func goalTestUser() models.User {
	return models.User{
		ID:        "res-1",
		Role:      models.RoleResident,
		TotalPaid: 1200,
		Goals: []models.Goal{
			{
				ID:    "g1",
				Title: "90 Days Sober",
				Milestones: []models.Milestone{
					{ID: "m1", Text: "30 Days", Completed: true},
					{ID: "m2", Text: "60 Days", Completed: false},
				},
			},
			{
				ID:    "g2",
				Title: "Save for Apartment",
				Milestones: []models.Milestone{
					{ID: "m3", Text: "Save $500", Completed: false},
				},
			},
		},
	}
}

func TestToggleMilestoneFlipsOnlyTheMatch(t *testing.T) {
	user := goalTestUser()

	updated := ToggleMilestone(user, "g1", "m2")
	if !updated.Goals[0].Milestones[1].Completed {
		t.Fatal("expected m2 flipped to completed")
	}
	if !updated.Goals[0].Milestones[0].Completed {
		t.Fatal("m1 must stay completed")
	}
	if updated.Goals[1].Milestones[0].Completed {
		t.Fatal("m3 in the other goal must stay untouched")
	}
}

func TestToggleMilestoneTwiceRestoresOriginal(t *testing.T) {
	user := goalTestUser()

	once := ToggleMilestone(user, "g1", "m2")
	twice := ToggleMilestone(once, "g1", "m2")
	if !reflect.DeepEqual(twice, user) {
		t.Fatalf("double toggle must restore the record exactly:\n got %#v\nwant %#v", twice, user)
	}
}

func TestToggleMilestoneUnknownIDsLeaveRecordUnchanged(t *testing.T) {
	user := goalTestUser()

	if updated := ToggleMilestone(user, "g1", "missing"); !reflect.DeepEqual(updated, user) {
		t.Fatal("unknown milestone id must be a no-op")
	}
	if updated := ToggleMilestone(user, "missing", "m1"); !reflect.DeepEqual(updated, user) {
		t.Fatal("unknown goal id must be a no-op")
	}
}

func TestToggleMilestoneDoesNotMutateInput(t *testing.T) {
	user := goalTestUser()

	_ = ToggleMilestone(user, "g1", "m2")
	if user.Goals[0].Milestones[1].Completed {
		t.Fatal("input record was mutated")
	}
}
