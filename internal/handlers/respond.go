package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func jsonError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func jsonOK(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func jsonCreated(c *gin.Context, id uint) {
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}
