package models

import "time"

// Event owns its crew assignments, pick list items and stage plans;
// deleting an event removes all three.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	EventDate   time.Time `gorm:"not null" json:"event_date"`
	Location    string    `gorm:"size:200" json:"location"`
	CreatedBy   string    `gorm:"size:80" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`

	CrewAssignments []CrewAssignment `gorm:"constraint:OnDelete:CASCADE" json:"crew_assignments,omitempty"`
	PickListItems   []PickListItem   `gorm:"constraint:OnDelete:CASCADE" json:"pick_list_items,omitempty"`
	StagePlans      []StagePlan      `gorm:"constraint:OnDelete:CASCADE" json:"stage_plans,omitempty"`
}
