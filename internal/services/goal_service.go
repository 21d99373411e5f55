package services

import "github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/models"

// ToggleMilestone flips the completed flag on exactly the matching milestone
// within the matching goal. When either id is unknown the returned record is
// an unchanged copy.
func ToggleMilestone(user models.User, goalID string, milestoneID string) models.User {
	updated := user.Clone()
	for goalIndex := range updated.Goals {
		if updated.Goals[goalIndex].ID != goalID {
			continue
		}
		milestones := updated.Goals[goalIndex].Milestones
		for milestoneIndex := range milestones {
			if milestones[milestoneIndex].ID == milestoneID {
				milestones[milestoneIndex].Completed = !milestones[milestoneIndex].Completed
			}
		}
	}
	return updated
}
