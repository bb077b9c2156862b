package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/activi-backend/dto"
	"github.com/activi-backend/services"
)

var projectService = services.NewProjectService()

// ListProjects returns the caller's projects, most recently updated first
func ListProjects(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
		return
	}

	projects, err := projectService.ListProjects(userID.(string))
	if err != nil {
		errorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// SaveProject creates or updates a project for the caller. The same endpoint
// serves both cases; the status code reports which happened.
func SaveProject(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
		return
	}

	var req dto.SaveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	project, created, err := projectService.SaveProject(userID.(string), req)
	if err != nil {
		errorJSON(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, project)
}

// DeleteProject deletes one of the caller's projects
func DeleteProject(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
		return
	}

	if err := projectService.DeleteProject(userID.(string), c.Param("id")); err != nil {
		errorJSON(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
