package services

import (
	"testing"

	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/models"
)

func TestCanMutate(t *testing.T) {
	manager := &models.User{ID: models.ManagerID, Role: models.RoleManager}
	john := &models.User{ID: "res-1", Role: models.RoleResident}
	sarahRecord := models.User{ID: "res-2", Role: models.RoleResident}
	johnRecord := models.User{ID: "res-1", Role: models.RoleResident}

	cases := []struct {
		name   string
		actor  *models.User
		target models.User
		want   bool
	}{
		{"manager edits anyone", manager, sarahRecord, true},
		{"resident edits self", john, johnRecord, true},
		{"resident edits other", john, sarahRecord, false},
		{"nil actor", nil, johnRecord, false},
	}
	for _, testCase := range cases {
		if got := CanMutate(testCase.actor, testCase.target); got != testCase.want {
			t.Fatalf("%s: CanMutate = %v, want %v", testCase.name, got, testCase.want)
		}
	}
}

func TestRoleHelpers(t *testing.T) {
	if !IsManagerUser(&models.User{Role: models.RoleManager}) {
		t.Fatal("expected manager role to be recognized")
	}
	if IsManagerUser(nil) || IsResidentUser(nil) {
		t.Fatal("nil user has no role")
	}
	if !IsResidentUser(&models.User{Role: models.RoleResident}) {
		t.Fatal("expected resident role to be recognized")
	}
}
