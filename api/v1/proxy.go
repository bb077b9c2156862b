package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/activi-backend/services"
)

var proxyService = services.NewProxyService()

// GetSyllables proxies the syllable-splitting service
func GetSyllables(c *gin.Context) {
	data, err := proxyService.FetchSyllables(c.Query("word"))
	if err != nil {
		errorJSON(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// SearchResources proxies the pictogram search API, rewriting image URLs to
// route back through this service
func SearchResources(c *gin.Context) {
	items, err := proxyService.SearchResources(
		c.Query("query"),
		c.Query("type"),
		c.Query("items_per_page"),
	)
	if err != nil {
		errorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetImage streams a remote image through the service with a 24h cache
// directive
func GetImage(c *gin.Context) {
	body, contentType, err := proxyService.FetchImage(c.Query("url"))
	if err != nil {
		errorJSON(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, contentType, body)
}
