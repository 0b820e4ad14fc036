package models

import "time"

// Student is an enrolled student. ClassID is empty while the student is not
// assigned to a class.
type Student struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	BirthDate  *time.Time `json:"birthDate,omitempty"`
	Guardian   string     `json:"guardian"`
	Phone      string     `json:"phone"`
	MonthlyFee float64    `json:"monthlyFee"`
	ClassID    string     `json:"classId,omitempty"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"createdAt"`
}
