package models

import "time"

// CrewMember is free text rather than a User reference: crews routinely
// include people who never get an account.
type CrewAssignment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EventID    uint      `gorm:"index;not null" json:"event_id"`
	CrewMember string    `gorm:"size:80;not null" json:"crew_member"`
	Role       string    `gorm:"size:100" json:"role"`
	AssignedAt time.Time `gorm:"autoCreateTime" json:"assigned_at"`
}
