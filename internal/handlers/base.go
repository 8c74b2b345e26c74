package handlers

import (
	"net/http"
	"time"

	"greatblog/internal/middleware"
	"greatblog/internal/models"

	"github.com/gin-gonic/gin"
)

// respondError writes a JSON error body with the given status.
func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// currentUser returns the user resolved by the auth middleware. Only call
// on routes behind AuthRequired.
func currentUser(c *gin.Context) *models.User {
	return c.MustGet(middleware.CheckUserKey).(*models.User)
}

// Health reports that the server is up.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
