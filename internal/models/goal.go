package models

type Goal struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Milestones []Milestone `json:"milestones"`
}

type Milestone struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func (goal Goal) Clone() Goal {
	copied := goal
	if goal.Milestones != nil {
		copied.Milestones = make([]Milestone, len(goal.Milestones))
		copy(copied.Milestones, goal.Milestones)
	}
	return copied
}
