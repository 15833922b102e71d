package middleware

import (
	"net/http"

	"prodcrew/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const currentUserKey = "CurrentUser"

// RequireAuth resolves the session to a user record and puts it in the
// request context. A missing or stale session gets a 401.
func RequireAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		uid, ok := sess.Get("user_id").(uint)
		if !ok || uid == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		var user models.User
		if err := db.First(&user, uid).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user resolved by RequireAuth. Zero value when
// called outside an authenticated route.
func CurrentUser(c *gin.Context) models.User {
	val, ok := c.Get(currentUserKey)
	if !ok {
		return models.User{}
	}
	user, _ := val.(models.User)
	return user
}
