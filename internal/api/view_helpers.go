package api

import "github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/models"

// presentUser strips the password before a record leaves the process.
// Stored passwords are plaintext, so no response body may carry them.
func presentUser(user models.User) models.User {
	user.Password = ""
	return user
}

func presentUsers(users []models.User) []models.User {
	presented := make([]models.User, len(users))
	for index := range users {
		presented[index] = presentUser(users[index])
	}
	return presented
}
