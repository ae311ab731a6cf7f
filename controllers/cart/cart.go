package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sudarshan-939/vimala-2/cart"
	"github.com/Sudarshan-939/vimala-2/gateway"
	"github.com/Sudarshan-939/vimala-2/session"
)

type cartItemInput struct {
	EquipmentID string `json:"equipment_id" binding:"required"`
}

func currentSession(c *gin.Context, sessions *session.Manager) *session.Session {
	sessionID := c.GetString("session_id")
	return sessions.GetOrCreate(sessionID)
}

// cartError maps store errors onto HTTP responses.
func cartError(c *gin.Context, err error) {
	var stockErr *cart.StockExceededError
	switch {
	case errors.Is(err, cart.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Equipment does not exist"})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, gin.H{"error": stockErr.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}

// GET /session/cart
func GetCart(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := currentSession(c, sessions)
		c.JSON(http.StatusOK, s.Cart.View())
	}
}

// POST /session/cart
// Adds one unit of the equipment against a freshly fetched catalog;
// stock data is considered stale between requests, so every mutation
// refetches before validating.
func AddCartItem(sessions *session.Manager, gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input cartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		catalog, err := gw.FetchCatalog(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		s := currentSession(c, sessions)
		if err := s.Cart.Add(input.EquipmentID, catalog); err != nil {
			cartError(c, err)
			return
		}

		c.JSON(http.StatusOK, s.Cart.View())
	}
}

// POST /session/cart/increment
func IncrementCartItem(sessions *session.Manager, gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input cartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		catalog, err := gw.FetchCatalog(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		s := currentSession(c, sessions)
		if err := s.Cart.Increment(input.EquipmentID, catalog); err != nil {
			cartError(c, err)
			return
		}

		c.JSON(http.StatusOK, s.Cart.View())
	}
}

// POST /session/cart/decrement
// A quantity-1 line is removed entirely; no stock check needed.
func DecrementCartItem(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input cartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		s := currentSession(c, sessions)
		s.Cart.Decrement(input.EquipmentID)
		c.JSON(http.StatusOK, s.Cart.View())
	}
}

// DELETE /session/cart/:equipment_id
func RemoveCartItem(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := currentSession(c, sessions)
		s.Cart.Remove(c.Param("equipment_id"))
		c.JSON(http.StatusOK, s.Cart.View())
	}
}

// DELETE /session/cart
func ClearCart(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := currentSession(c, sessions)
		s.Cart.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
