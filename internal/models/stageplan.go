package models

import "time"

// StagePlan references a blob in the upload directory by its generated
// filename. Record and blob are created together; deleting the record
// also removes the blob.
type StagePlan struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:200;not null" json:"title"`
	Filename   string    `gorm:"size:300;not null" json:"filename"`
	UploadedBy string    `gorm:"size:80" json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
	EventID    *uint     `gorm:"index" json:"event_id"`
}
