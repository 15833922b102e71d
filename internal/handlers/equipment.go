package handlers

import (
	"net/http"
	"strings"
	"time"

	"prodcrew/internal/cache"
	"prodcrew/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const searchCacheTTL = 60 * time.Second

func ListEquipment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.Equipment
		if err := db.Find(&items).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to list equipment")
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// SearchEquipment does a case-insensitive substring match over name,
// barcode and location. Results are cached briefly when redis is
// configured; a slightly stale hit list is fine for a picking UI.
func SearchEquipment(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := strings.ToLower(strings.TrimSpace(c.Query("q")))
		ctx := c.Request.Context()
		cacheKey := "equipment:search:q=" + q

		var items []models.Equipment
		if cache.Get(ctx, rdb, cacheKey, &items) {
			c.JSON(http.StatusOK, items)
			return
		}

		like := "%" + q + "%"
		err := db.
			Where("LOWER(name) LIKE ? OR LOWER(barcode) LIKE ? OR LOWER(location) LIKE ?", like, like, like).
			Find(&items).Error
		if err != nil {
			jsonError(c, http.StatusInternalServerError, "search failed")
			return
		}

		cache.Set(ctx, rdb, cacheKey, items, searchCacheTTL)
		c.JSON(http.StatusOK, items)
	}
}

func EquipmentByBarcode(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.Equipment
		if err := db.Where("barcode = ?", c.Param("code")).First(&item).Error; err != nil {
			jsonError(c, http.StatusNotFound, "equipment not found")
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

type addEquipmentRequest struct {
	Barcode  string `json:"barcode"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

func AddEquipment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addEquipmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			jsonError(c, http.StatusBadRequest, "invalid request")
			return
		}
		if req.Barcode == "" {
			jsonError(c, http.StatusBadRequest, "barcode is required")
			return
		}
		if req.Name == "" {
			jsonError(c, http.StatusBadRequest, "name is required")
			return
		}

		var count int64
		if err := db.Model(&models.Equipment{}).Where("barcode = ?", req.Barcode).Count(&count).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to save equipment")
			return
		}
		if count > 0 {
			jsonError(c, http.StatusConflict, "barcode already exists")
			return
		}

		item := models.Equipment{
			Barcode:  req.Barcode,
			Name:     req.Name,
			Category: req.Category,
			Location: req.Location,
			Notes:    req.Notes,
		}
		if err := db.Create(&item).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to save equipment")
			return
		}
		jsonCreated(c, item.ID)
	}
}

// Barcode is the physical label on the gear and is not patchable; only
// the descriptive fields are.
type updateEquipmentRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Location *string `json:"location"`
	Notes    *string `json:"notes"`
}

func UpdateEquipment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.Equipment
		if err := db.First(&item, c.Param("id")).Error; err != nil {
			jsonError(c, http.StatusNotFound, "equipment not found")
			return
		}

		var req updateEquipmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			jsonError(c, http.StatusBadRequest, "invalid request")
			return
		}

		if req.Name != nil {
			item.Name = *req.Name
		}
		if req.Category != nil {
			item.Category = *req.Category
		}
		if req.Location != nil {
			item.Location = *req.Location
		}
		if req.Notes != nil {
			item.Notes = *req.Notes
		}

		if err := db.Save(&item).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to update equipment")
			return
		}
		jsonOK(c)
	}
}

func DeleteEquipment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.Equipment
		if err := db.First(&item, c.Param("id")).Error; err != nil {
			jsonError(c, http.StatusNotFound, "equipment not found")
			return
		}
		if err := db.Delete(&item).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to delete equipment")
			return
		}
		jsonOK(c)
	}
}
