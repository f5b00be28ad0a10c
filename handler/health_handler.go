package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/utils"
)

// Welcome handles GET /
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the backend!"})
}

// Healthz handles GET /healthz with process and host figures.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"system": utils.CollectSystemStats(),
	})
}
