package models

// Class is a training group led by one coach user.
type Class struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Schedule string `json:"schedule"`
	CoachID  string `json:"coachId"`
}
