package handlers

import (
	"net/http"
	"strings"

	"prodcrew/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login deliberately answers an unknown username and a wrong password
// with the same message, so the endpoint cannot be used to enumerate
// accounts.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			jsonError(c, http.StatusBadRequest, "invalid request")
			return
		}
		req.Username = strings.TrimSpace(req.Username)

		var user models.User
		if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
			jsonError(c, http.StatusUnauthorized, "invalid username or password")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			jsonError(c, http.StatusUnauthorized, "invalid username or password")
			return
		}

		sess := sessions.Default(c)
		sess.Set("user_id", user.ID)
		if err := sess.Save(); err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to save session")
			return
		}

		jsonOK(c)
	}
}

func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		sess.Clear()
		_ = sess.Save()
		jsonOK(c)
	}
}
