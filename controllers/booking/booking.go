package bookingControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sudarshan-939/vimala-2/gateway"
	"github.com/Sudarshan-939/vimala-2/models"
)

type updateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// Map string to BookingStatus
func mapBookingStatus(status string) (models.BookingStatus, error) {
	switch strings.ToLower(status) {
	case string(models.BookingStatusPending):
		return models.BookingStatusPending, nil
	case string(models.BookingStatusConfirmed):
		return models.BookingStatusConfirmed, nil
	case string(models.BookingStatusCompleted):
		return models.BookingStatusCompleted, nil
	default:
		return "", errors.New("invalid booking status")
	}
}

// GET /session/bookings?email=
// The gateway returns all bookings; filtering by customer email
// happens here, matching the site's "my bookings" view.
func GetUserBookings(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		bookings, err := gw.FetchBookings(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		mine := bookings[:0:0]
		for _, b := range bookings {
			if strings.EqualFold(b.Customer.Email, email) {
				mine = append(mine, b)
			}
		}

		c.JSON(http.StatusOK, mine)
	}
}

// GET /admin/bookings
func GetAllBookings(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := gw.FetchBookings(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

// PUT /admin/bookings/:bookingID
func UpdateBookingStatus(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID := c.Param("bookingID")
		if bookingID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bookingID is required"})
			return
		}

		var input updateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status, err := mapBookingStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := gw.UpdateBookingStatus(c.Request.Context(), bookingID, status); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Booking status updated successfully"})
	}
}
