package handlers

import (
	"net/http"
	"strconv"

	"prodcrew/internal/middleware"
	"prodcrew/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func ListUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Find(&users).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to list users")
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

type addUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

// AddUser enforces unique usernames always, and unique emails only when
// an email is supplied; any number of users may have no email at all.
func AddUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			jsonError(c, http.StatusBadRequest, "invalid request")
			return
		}
		if req.Username == "" {
			jsonError(c, http.StatusBadRequest, "username is required")
			return
		}
		if req.Password == "" {
			jsonError(c, http.StatusBadRequest, "password is required")
			return
		}

		var count int64
		if err := db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to save user")
			return
		}
		if count > 0 {
			jsonError(c, http.StatusConflict, "username already exists")
			return
		}

		var email *string
		if req.Email != "" {
			if err := db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
				jsonError(c, http.StatusInternalServerError, "failed to save user")
				return
			}
			if count > 0 {
				jsonError(c, http.StatusConflict, "email already exists")
				return
			}
			email = &req.Email
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to hash password")
			return
		}

		user := models.User{
			Username:     req.Username,
			Email:        email,
			PasswordHash: string(hash),
			IsAdmin:      req.IsAdmin,
		}
		if err := db.Create(&user).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to save user")
			return
		}
		jsonCreated(c, user.ID)
	}
}

// DeleteUser refuses to delete the caller's own account, admin or not.
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			jsonError(c, http.StatusNotFound, "user not found")
			return
		}
		if uint(id) == middleware.CurrentUser(c).ID {
			jsonError(c, http.StatusBadRequest, "cannot delete yourself")
			return
		}

		var user models.User
		if err := db.First(&user, uint(id)).Error; err != nil {
			jsonError(c, http.StatusNotFound, "user not found")
			return
		}
		if err := db.Delete(&user).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to delete user")
			return
		}
		jsonOK(c)
	}
}
