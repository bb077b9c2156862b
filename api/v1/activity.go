package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/activi-backend/dto"
	"github.com/activi-backend/services"
)

var activityService = services.NewActivityService()

// ListActivityTypes returns the whole catalog ordered by display rank.
// Public: no authentication required.
func ListActivityTypes(c *gin.Context) {
	activities, err := activityService.ListActivityTypes()
	if err != nil {
		errorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, activities)
}

// GetActivityTypeByName returns one catalog entry by machine name
func GetActivityTypeByName(c *gin.Context) {
	activity, err := activityService.GetActivityTypeByName(c.Param("name"))
	if err != nil {
		errorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

// CreateActivityType creates a catalog entry
func CreateActivityType(c *gin.Context) {
	var req dto.CreateActivityTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	activity, err := activityService.CreateActivityType(req)
	if err != nil {
		errorJSON(c, err)
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// UpdateActivityType partially updates a catalog entry
func UpdateActivityType(c *gin.Context) {
	var req dto.UpdateActivityTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	activity, err := activityService.UpdateActivityType(c.Param("id"), req)
	if err != nil {
		errorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

// DeleteActivityType removes a catalog entry
func DeleteActivityType(c *gin.Context) {
	if err := activityService.DeleteActivityType(c.Param("id")); err != nil {
		errorJSON(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ReorderActivityTypes applies a batch of display-order updates atomically
func ReorderActivityTypes(c *gin.Context) {
	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "activities must be an array"})
		return
	}

	if err := activityService.ReorderActivityTypes(req); err != nil {
		errorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order updated successfully"})
}
