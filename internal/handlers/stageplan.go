package handlers

import (
	"net/http"
	"strconv"

	"prodcrew/internal/middleware"
	"prodcrew/internal/models"
	"prodcrew/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListStagePlans returns the plans for one event when event_id is
// given, otherwise every plan (unlike the pick list, which scopes its
// unfiltered view to the general list).
func ListStagePlans(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var plans []models.StagePlan

		query := db.Model(&models.StagePlan{})
		if raw := c.Query("event_id"); raw != "" {
			eventID, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				jsonError(c, http.StatusBadRequest, "invalid event_id")
				return
			}
			query = query.Where("event_id = ?", uint(eventID))
		}

		if err := query.Find(&plans).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to list stage plans")
			return
		}
		c.JSON(http.StatusOK, plans)
	}
}

// UploadStagePlan writes the blob first and only then commits the
// record. A blob without a record is acceptable garbage; a record
// without a blob is not.
func UploadStagePlan(db *gorm.DB, uploads *storage.Dir) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, header, err := c.Request.FormFile("file")
		if err != nil {
			jsonError(c, http.StatusBadRequest, "no file provided")
			return
		}
		defer file.Close()

		if header.Filename == "" {
			jsonError(c, http.StatusBadRequest, "no file selected")
			return
		}

		var eventID *uint
		if raw := c.PostForm("event_id"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				jsonError(c, http.StatusBadRequest, "invalid event_id")
				return
			}
			var count int64
			if err := db.Model(&models.Event{}).Where("id = ?", uint(parsed)).Count(&count).Error; err != nil || count == 0 {
				jsonError(c, http.StatusNotFound, "event not found")
				return
			}
			id := uint(parsed)
			eventID = &id
		}

		filename, err := uploads.Save(file, header.Filename)
		if err == storage.ErrEmptyFilename {
			jsonError(c, http.StatusBadRequest, "no file selected")
			return
		}
		if err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to store file")
			return
		}

		title := c.PostForm("title")
		if title == "" {
			title = filename
		}

		plan := models.StagePlan{
			Title:      title,
			Filename:   filename,
			UploadedBy: middleware.CurrentUser(c).Username,
			EventID:    eventID,
		}
		if err := db.Create(&plan).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to save stage plan")
			return
		}
		jsonCreated(c, plan.ID)
	}
}

func ServeUpload(uploads *storage.Dir) gin.HandlerFunc {
	return func(c *gin.Context) {
		path, ok := uploads.Path(c.Param("filename"))
		if !ok {
			jsonError(c, http.StatusNotFound, "file not found")
			return
		}
		c.File(path)
	}
}

func DeleteStagePlan(db *gorm.DB, uploads *storage.Dir) gin.HandlerFunc {
	return func(c *gin.Context) {
		var plan models.StagePlan
		if err := db.First(&plan, c.Param("id")).Error; err != nil {
			jsonError(c, http.StatusNotFound, "stage plan not found")
			return
		}
		if err := db.Delete(&plan).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to delete stage plan")
			return
		}
		// Blob goes after the record; an already-missing file is fine.
		_ = uploads.Remove(plan.Filename)
		jsonOK(c)
	}
}
