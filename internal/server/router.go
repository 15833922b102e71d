package server

import (
	"net/http"

	"prodcrew/internal/config"
	"prodcrew/internal/handlers"
	"prodcrew/internal/mailer"
	"prodcrew/internal/middleware"
	"prodcrew/internal/storage"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Uploads may reach 16 MiB; anything bigger is rejected at the body.
const maxRequestBody = 16 << 20

func limitRequestBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

func NewRouter(cfg *config.Config, db *gorm.DB, uploads *storage.Dir, notifier mailer.Notifier, rdb *redis.Client) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("prodcrew_session", store))
	r.Use(limitRequestBody(maxRequestBody))

	// AUTH
	r.POST("/login", handlers.Login(db))
	r.GET("/logout", handlers.Logout())

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth(db))

	auth.GET("/dashboard", handlers.Dashboard(db))

	// EQUIPMENT
	auth.GET("/equipment", handlers.ListEquipment(db))
	auth.GET("/equipment/search", handlers.SearchEquipment(db, rdb))
	auth.GET("/equipment/barcode/:code", handlers.EquipmentByBarcode(db))
	auth.POST("/equipment/add", middleware.RequireAdmin(), handlers.AddEquipment(db))
	auth.PUT("/equipment/update/:id", middleware.RequireAdmin(), handlers.UpdateEquipment(db))
	auth.DELETE("/equipment/delete/:id", middleware.RequireAdmin(), handlers.DeleteEquipment(db))

	// PICK LIST
	auth.GET("/picklist", handlers.ListPickList(db))
	auth.POST("/picklist/add", handlers.AddPickListItem(db))
	auth.POST("/picklist/toggle/:id", handlers.TogglePickListItem(db))
	auth.DELETE("/picklist/delete/:id", handlers.DeletePickListItem(db))

	// STAGE PLANS
	auth.GET("/stageplans", handlers.ListStagePlans(db))
	auth.POST("/stageplans/upload", handlers.UploadStagePlan(db, uploads))
	auth.GET("/uploads/:filename", handlers.ServeUpload(uploads))
	auth.DELETE("/stageplans/delete/:id", handlers.DeleteStagePlan(db, uploads))

	// EVENTS / CALENDAR
	auth.GET("/calendar", handlers.Calendar(db))
	auth.GET("/events", handlers.ListEvents(db))
	auth.GET("/events/:id", handlers.EventDetail(db))
	auth.POST("/events/add", handlers.AddEvent(db))
	auth.PUT("/events/update/:id", handlers.UpdateEvent(db))
	auth.DELETE("/events/delete/:id", middleware.RequireAdmin(), handlers.DeleteEvent(db, uploads))

	// CREW
	auth.GET("/crew", handlers.ListCrew(db))
	auth.POST("/crew/assign", handlers.AssignCrew(db, notifier))
	auth.DELETE("/crew/remove/:id", handlers.RemoveCrew(db))

	// ADMIN
	auth.GET("/admin/users", middleware.RequireAdmin(), handlers.ListUsers(db))
	auth.POST("/admin/users/add", middleware.RequireAdmin(), handlers.AddUser(db))
	auth.DELETE("/admin/users/delete/:id", middleware.RequireAdmin(), handlers.DeleteUser(db))

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
