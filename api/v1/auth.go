package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/activi-backend/dto"
	"github.com/activi-backend/services"
)

// Register handles user registration
func Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	authResponse, err := services.Register(req)
	if err != nil {
		errorJSON(c, err)
		return
	}

	c.JSON(http.StatusCreated, authResponse)
}

// Login handles user authentication
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	authResponse, err := services.Login(req)
	if err != nil {
		errorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse)
}
