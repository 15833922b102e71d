package handlers

import (
	"net/http"
	"time"

	"prodcrew/internal/middleware"
	"prodcrew/internal/models"
	"prodcrew/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Accepted event_date layouts. Clients send naive local timestamps;
// offsets and bare dates are tolerated.
var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseEventDate(raw string) (time.Time, bool) {
	for _, layout := range eventDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Calendar lists all events in chronological order.
func Calendar(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var events []models.Event
		if err := db.Order("event_date asc").Find(&events).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to list events")
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

// ListEvents orders newest first, for selector dropdowns.
func ListEvents(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var events []models.Event
		if err := db.Order("event_date desc").Find(&events).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to list events")
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

// Dashboard returns the next five upcoming events.
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var events []models.Event
		err := db.Where("event_date >= ?", time.Now()).
			Order("event_date asc").
			Limit(5).
			Find(&events).Error
		if err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to list events")
			return
		}
		c.JSON(http.StatusOK, gin.H{"upcoming_events": events})
	}
}

func EventDetail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event models.Event
		err := db.
			Preload("CrewAssignments").
			Preload("PickListItems").
			Preload("StagePlans").
			First(&event, c.Param("id")).Error
		if err != nil {
			jsonError(c, http.StatusNotFound, "event not found")
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

type addEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"event_date"`
	Location    string `json:"location"`
}

func AddEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			jsonError(c, http.StatusBadRequest, "invalid request")
			return
		}
		if req.Title == "" {
			jsonError(c, http.StatusBadRequest, "title is required")
			return
		}
		if req.EventDate == "" {
			jsonError(c, http.StatusBadRequest, "event_date is required")
			return
		}
		date, ok := parseEventDate(req.EventDate)
		if !ok {
			jsonError(c, http.StatusBadRequest, "invalid event_date")
			return
		}

		event := models.Event{
			Title:       req.Title,
			Description: req.Description,
			EventDate:   date,
			Location:    req.Location,
			CreatedBy:   middleware.CurrentUser(c).Username,
		}
		if err := db.Create(&event).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to save event")
			return
		}
		jsonCreated(c, event.ID)
	}
}

type updateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	EventDate   *string `json:"event_date"`
	Location    *string `json:"location"`
}

func UpdateEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event models.Event
		if err := db.First(&event, c.Param("id")).Error; err != nil {
			jsonError(c, http.StatusNotFound, "event not found")
			return
		}

		var req updateEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			jsonError(c, http.StatusBadRequest, "invalid request")
			return
		}

		if req.Title != nil {
			event.Title = *req.Title
		}
		if req.Description != nil {
			event.Description = *req.Description
		}
		if req.EventDate != nil {
			date, ok := parseEventDate(*req.EventDate)
			if !ok {
				jsonError(c, http.StatusBadRequest, "invalid event_date")
				return
			}
			event.EventDate = date
		}
		if req.Location != nil {
			event.Location = *req.Location
		}

		if err := db.Save(&event).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to update event")
			return
		}
		jsonOK(c)
	}
}

// DeleteEvent removes the event and its three dependent collections in
// one transaction. Stage plan blobs are removed after a successful
// commit; blob cleanup is never allowed to fail the delete.
func DeleteEvent(db *gorm.DB, uploads *storage.Dir) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event models.Event
		if err := db.First(&event, c.Param("id")).Error; err != nil {
			jsonError(c, http.StatusNotFound, "event not found")
			return
		}

		var plans []models.StagePlan
		if err := db.Where("event_id = ?", event.ID).Find(&plans).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to delete event")
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("event_id = ?", event.ID).Delete(&models.CrewAssignment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("event_id = ?", event.ID).Delete(&models.PickListItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("event_id = ?", event.ID).Delete(&models.StagePlan{}).Error; err != nil {
				return err
			}
			return tx.Delete(&event).Error
		})
		if err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to delete event")
			return
		}

		for _, plan := range plans {
			_ = uploads.Remove(plan.Filename)
		}
		jsonOK(c)
	}
}
