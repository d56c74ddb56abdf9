package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sebasr/greeting-service/internal/models"
)

// HelloHandler handles the root endpoint
func HelloHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewGreeting("Hello World!"))
}
