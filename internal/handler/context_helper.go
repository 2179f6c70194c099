package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-club-registry-api/internal/middleware"
	"github.com/noah-isme/sma-club-registry-api/internal/models"
)

func userFromContext(c *gin.Context) *models.User {
	return middleware.CurrentUser(c)
}
