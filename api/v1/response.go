package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/activi-backend/utils"
)

// errorJSON writes an error as {"message": ...} with the status carried by
// the error kind. Anything that is not an AppError surfaces as a 500.
func errorJSON(c *gin.Context, err error) {
	c.JSON(utils.ErrorStatus(err), gin.H{"message": err.Error()})
}
