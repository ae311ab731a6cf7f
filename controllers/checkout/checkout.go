package checkoutControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sudarshan-939/vimala-2/checkout"
	"github.com/Sudarshan-939/vimala-2/gateway"
	"github.com/Sudarshan-939/vimala-2/metrics"
	"github.com/Sudarshan-939/vimala-2/models"
	"github.com/Sudarshan-939/vimala-2/session"
)

// Field-level validation happens in the checkout machine so missing
// fields come back named, not as a bind error.
type submitInput struct {
	Customer models.CustomerDetails `json:"customer"`
	Project  models.ProjectDetails  `json:"projectDetails"`
}

// BookingListener is notified of every confirmed booking. The admin
// websocket feed hangs off this.
type BookingListener func(models.Booking)

func currentSession(c *gin.Context, sessions *session.Manager) *session.Session {
	return sessions.GetOrCreate(c.GetString("session_id"))
}

// POST /session/checkout/open
func OpenCart(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := currentSession(c, sessions)
		view := s.Checkout.OpenCart()
		c.JSON(http.StatusOK, gin.H{
			"state": s.Checkout.State(),
			"cart":  view,
		})
	}
}

// POST /session/checkout/details
func ProceedToDetails(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := currentSession(c, sessions)
		if err := s.Checkout.ProceedToDetails(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": s.Checkout.State()})
	}
}

// POST /session/checkout/submit
// Drives DetailsEntry -> Submitting -> Receipt. Validation failures
// and gateway rejections leave the cart and form untouched.
func Submit(sessions *session.Manager, listeners ...BookingListener) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input submitInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		s := currentSession(c, sessions)
		booking, err := s.Checkout.Submit(c.Request.Context(), input.Customer, input.Project)
		if err != nil {
			submitError(c, err)
			return
		}

		metrics.BookingsSubmitted.WithLabelValues("confirmed").Inc()
		for _, notify := range listeners {
			notify(booking)
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Booking placed successfully",
			"state":   s.Checkout.State(),
			"booking": booking,
		})
	}
}

func submitError(c *gin.Context, err error) {
	var verr *checkout.ValidationError
	var gwErr *gateway.GatewayError

	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
	case errors.Is(err, checkout.ErrAlreadyInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Please fill all required fields marked with *",
			"fields": verr.Fields,
		})
	case errors.As(err, &gwErr):
		metrics.BookingsSubmitted.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"error": gwErr.Message})
	default:
		metrics.BookingsSubmitted.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}

// GET /session/checkout/receipt
func GetReceipt(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := currentSession(c, sessions)
		receipt, err := s.Checkout.Receipt()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, receipt)
	}
}

// POST /session/checkout/close
// Closes whichever stage is open and returns to browsing.
func Close(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := currentSession(c, sessions)
		s.Checkout.CloseReceipt()
		s.Checkout.CloseCart()
		c.JSON(http.StatusOK, gin.H{"state": s.Checkout.State()})
	}
}
