package models

import "time"

// Attendance is one check-in of a student to a class on a given date.
// The store enforces a single check-in per (student, class, date).
type Attendance struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"studentId"`
	ClassID     string    `json:"classId"`
	Date        time.Time `json:"date"`
	CheckedInBy string    `json:"checkedInBy"`
}
