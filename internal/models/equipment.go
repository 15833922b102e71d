package models

import "time"

type Equipment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Barcode   string    `gorm:"uniqueIndex;size:100;not null" json:"barcode"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Category  string    `gorm:"size:100" json:"category"`
	Location  string    `gorm:"size:200" json:"location"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
