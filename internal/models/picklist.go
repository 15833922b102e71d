package models

import "time"

// PickListItem with a nil EventID belongs to the general, unscoped list.
type PickListItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ItemName  string    `gorm:"size:200;not null" json:"item_name"`
	Quantity  int       `gorm:"default:1" json:"quantity"`
	IsChecked bool      `gorm:"default:false" json:"is_checked"`
	AddedBy   string    `gorm:"size:80" json:"added_by"`
	CreatedAt time.Time `json:"created_at"`
	EventID   *uint     `gorm:"index" json:"event_id"`
}
