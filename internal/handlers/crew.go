package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"prodcrew/internal/mailer"
	"prodcrew/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListCrew(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var assignments []models.CrewAssignment

		query := db.Model(&models.CrewAssignment{})
		if raw := c.Query("event_id"); raw != "" {
			eventID, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				jsonError(c, http.StatusBadRequest, "invalid event_id")
				return
			}
			query = query.Where("event_id = ?", uint(eventID))
		}

		if err := query.Find(&assignments).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to list crew assignments")
			return
		}
		c.JSON(http.StatusOK, assignments)
	}
}

type assignCrewRequest struct {
	EventID    uint   `json:"event_id"`
	CrewMember string `json:"crew_member"`
	Role       string `json:"role"`
}

// AssignCrew creates the assignment and then, outside the write, tries
// to notify the crew member. The notification is fire-and-forget: its
// outcome never changes the response.
func AssignCrew(db *gorm.DB, notifier mailer.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req assignCrewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			jsonError(c, http.StatusBadRequest, "invalid request")
			return
		}
		if req.EventID == 0 {
			jsonError(c, http.StatusBadRequest, "event_id is required")
			return
		}
		if req.CrewMember == "" {
			jsonError(c, http.StatusBadRequest, "crew_member is required")
			return
		}

		var event models.Event
		if err := db.First(&event, req.EventID).Error; err != nil {
			jsonError(c, http.StatusNotFound, "event not found")
			return
		}

		assignment := models.CrewAssignment{
			EventID:    event.ID,
			CrewMember: req.CrewMember,
			Role:       req.Role,
		}
		if err := db.Create(&assignment).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to save crew assignment")
			return
		}

		var user models.User
		if err := db.Where("username = ?", req.CrewMember).First(&user).Error; err == nil &&
			user.Email != nil && *user.Email != "" {
			subject := "Assigned to Event: " + event.Title
			notifier.Notify(subject, *user.Email, assignmentBody(user.Username, event, req.Role))
		}

		jsonCreated(c, assignment.ID)
	}
}

func assignmentBody(username string, event models.Event, role string) string {
	location := event.Location
	if location == "" {
		location = "TBD"
	}
	if role == "" {
		role = "Crew Member"
	}

	return fmt.Sprintf(`Hello %s,

You have been assigned to the following event:

Event: %s
Date: %s
Location: %s
Role: %s

Please log in to the Production Crew Management System for more details.

Thanks!
`,
		username,
		event.Title,
		event.EventDate.Format("January 02, 2006 at 03:04 PM"),
		location,
		role,
	)
}

func RemoveCrew(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var assignment models.CrewAssignment
		if err := db.First(&assignment, c.Param("id")).Error; err != nil {
			jsonError(c, http.StatusNotFound, "crew assignment not found")
			return
		}
		if err := db.Delete(&assignment).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to delete crew assignment")
			return
		}
		jsonOK(c)
	}
}
