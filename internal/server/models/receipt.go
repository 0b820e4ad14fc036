package models

import "time"

// Receipt is the metadata row describing a payment receipt stored in blob
// storage. The binary itself lives under FilePath in the bucket.
type Receipt struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"studentId"`
	UploadedBy string    `json:"uploadedBy"`
	FilePath   string    `json:"filePath"`
	FileURL    string    `json:"fileUrl"`
	FileName   string    `json:"fileName"`
	UploadedAt time.Time `json:"uploadedAt"`
}
