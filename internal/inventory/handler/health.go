package handler

import (
	"net/http"

	"github.com/amoylab/inventory/pkg/version"
	"github.com/gin-gonic/gin"
)

// HandleHealthz reports liveness
func HandleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.Get()})
}
