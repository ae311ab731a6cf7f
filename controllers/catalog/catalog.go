package catalogControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sudarshan-939/vimala-2/gateway"
)

// GET /catalog?type=camera&q=sony
// Fetches the current catalog from the gateway and applies the type
// filter and search the equipment page offers.
func GetCatalog(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		catalog, err := gw.FetchCatalog(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		typeFilter := c.Query("type")
		query := strings.ToLower(strings.TrimSpace(c.Query("q")))

		filtered := catalog[:0:0]
		for _, item := range catalog {
			if typeFilter != "" && typeFilter != "all" && string(item.Type) != typeFilter {
				continue
			}
			if query != "" &&
				!strings.Contains(strings.ToLower(item.Name), query) &&
				!strings.Contains(strings.ToLower(item.Description), query) &&
				!strings.Contains(strings.ToLower(string(item.Type)), query) {
				continue
			}
			filtered = append(filtered, item)
		}

		c.JSON(http.StatusOK, filtered)
	}
}

// GET /gallery
func GetGallery(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		gallery, err := gw.FetchGallery(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gallery)
	}
}

// GET /contact
func GetContactInfo(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		info, err := gw.FetchContactInfo(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, info)
	}
}
