package models

import "time"

// Payment records one monthly fee payment. ReferenceMonth uses the "YYYY-MM"
// form; a student has at most one payment per reference month.
type Payment struct {
	ID             string    `json:"id"`
	StudentID      string    `json:"studentId"`
	ReferenceMonth string    `json:"referenceMonth"`
	Amount         float64   `json:"amount"`
	PaidAt         time.Time `json:"paidAt"`
}
