package handlers

import (
	"net/http"
	"strconv"

	"prodcrew/internal/middleware"
	"prodcrew/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListPickList returns the items for one event, or the general list
// when no event_id is given. "No event" means unscoped, not "any".
func ListPickList(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.PickListItem

		query := db.Model(&models.PickListItem{})
		if raw := c.Query("event_id"); raw != "" {
			eventID, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				jsonError(c, http.StatusBadRequest, "invalid event_id")
				return
			}
			query = query.Where("event_id = ?", uint(eventID))
		} else {
			query = query.Where("event_id IS NULL")
		}

		if err := query.Find(&items).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to list pick list items")
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

type addPickListItemRequest struct {
	ItemName string `json:"item_name"`
	Quantity *int   `json:"quantity"`
	EventID  *uint  `json:"event_id"`
}

func AddPickListItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addPickListItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			jsonError(c, http.StatusBadRequest, "invalid request")
			return
		}
		if req.ItemName == "" {
			jsonError(c, http.StatusBadRequest, "item_name is required")
			return
		}

		quantity := 1
		if req.Quantity != nil && *req.Quantity > 0 {
			quantity = *req.Quantity
		}

		if req.EventID != nil {
			var count int64
			if err := db.Model(&models.Event{}).Where("id = ?", *req.EventID).Count(&count).Error; err != nil || count == 0 {
				jsonError(c, http.StatusNotFound, "event not found")
				return
			}
		}

		item := models.PickListItem{
			ItemName: req.ItemName,
			Quantity: quantity,
			AddedBy:  middleware.CurrentUser(c).Username,
			EventID:  req.EventID,
		}
		if err := db.Create(&item).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to save pick list item")
			return
		}
		jsonCreated(c, item.ID)
	}
}

func TogglePickListItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.PickListItem
		if err := db.First(&item, c.Param("id")).Error; err != nil {
			jsonError(c, http.StatusNotFound, "pick list item not found")
			return
		}

		item.IsChecked = !item.IsChecked
		if err := db.Model(&item).Update("is_checked", item.IsChecked).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to update pick list item")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "is_checked": item.IsChecked})
	}
}

func DeletePickListItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.PickListItem
		if err := db.First(&item, c.Param("id")).Error; err != nil {
			jsonError(c, http.StatusNotFound, "pick list item not found")
			return
		}
		if err := db.Delete(&item).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to delete pick list item")
			return
		}
		jsonOK(c)
	}
}
