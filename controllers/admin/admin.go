package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sudarshan-939/vimala-2/gateway"
	"github.com/Sudarshan-939/vimala-2/models"
)

// Equipment, gallery and contact info are owned by the gateway; the
// admin dashboard manages them through these proxies.

// POST /admin/equipment
func CreateEquipment(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.EquipmentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := gw.AddEquipment(c.Request.Context(), input)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}

// DELETE /admin/equipment/:id
func DeleteEquipment(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
			return
		}

		if err := gw.DeleteEquipment(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Equipment deleted"})
	}
}

// POST /admin/gallery
// Replaces the whole gallery, the way the dashboard saves it.
func UpdateGallery(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var gallery models.Gallery
		if err := c.ShouldBindJSON(&gallery); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := gw.UpdateGallery(c.Request.Context(), gallery); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Gallery updated"})
	}
}

// POST /admin/contact
func UpdateContactInfo(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var info models.ContactInfo
		if err := c.ShouldBindJSON(&info); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := gw.UpdateContactInfo(c.Request.Context(), info); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Contact info updated"})
	}
}
