package services

import "github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/models"

func IsManagerUser(user *models.User) bool {
	return user != nil && user.Role == models.RoleManager
}

func IsResidentUser(user *models.User) bool {
	return user != nil && user.Role == models.RoleResident
}

// CanMutate decides whether the acting identity may replace the target
// record: the manager may touch anyone, a resident only their own record.
func CanMutate(actor *models.User, target models.User) bool {
	if IsManagerUser(actor) {
		return true
	}
	return actor != nil && actor.ID == target.ID
}
