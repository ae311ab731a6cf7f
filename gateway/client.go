package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/Sudarshan-939/vimala-2/metrics"
	"github.com/Sudarshan-939/vimala-2/models"
)

// GatewayError covers everything that goes wrong talking to the
// booking gateway: transport failures, 5xx, malformed responses and
// success=false envelopes. It never corrupts local cart or form
// state; callers only apply local changes after a success envelope.
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string {
	return e.Message
}

// envelope is the gateway's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Client talks to the remote booking gateway. All durable state
// (equipment, bookings, gallery, contact info, accounts) lives there.
type Client struct {
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker
	baseURL string
}

func NewClient(baseURL string) *Client {
	name := "BookingGateway"
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(cbName string, from gobreaker.State, to gobreaker.State) {
			metrics.SetCircuitBreakerState(cbName, to)
			log.WithFields(log.Fields{
				"circuit": cbName,
				"from":    from.String(),
				"to":      to.String(),
			}).Info("Circuit breaker state changed")
		},
	})
	metrics.SetCircuitBreakerState(name, gobreaker.StateClosed)

	return &Client{
		http: resty.New().
			SetTimeout(10 * time.Second).
			SetRetryCount(0), // no automatic retries, the breaker decides
		breaker: breaker,
		baseURL: strings.TrimRight(baseURL, "/") + "/api",
	}
}

// call runs one gateway request through the circuit breaker, decodes
// the envelope and unmarshals data into out (when out is non-nil).
func (c *Client) call(ctx context.Context, method, endpoint string, body interface{}, authToken string, out interface{}) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		req := c.http.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json")
		if body != nil {
			req.SetBody(body)
		}
		if authToken != "" {
			req.SetHeader("Authorization", "Bearer "+authToken)
		}

		resp, err := req.Execute(method, c.baseURL+endpoint)
		if err != nil {
			return nil, &GatewayError{Message: "booking gateway unreachable: " + err.Error()}
		}

		contentType := resp.Header().Get("Content-Type")
		if !strings.Contains(contentType, "application/json") {
			return nil, &GatewayError{Message: "booking gateway returned an invalid response"}
		}

		var env envelope
		if err := json.Unmarshal(resp.Body(), &env); err != nil {
			return nil, &GatewayError{Message: "booking gateway returned malformed JSON"}
		}

		if !env.Success {
			msg := env.Error
			if msg == "" {
				msg = fmt.Sprintf("booking gateway error (HTTP %d)", resp.StatusCode())
			}
			return nil, &GatewayError{Message: msg}
		}

		if out != nil && len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, out); err != nil {
				return nil, &GatewayError{Message: "booking gateway returned unexpected data shape"}
			}
		}
		return nil, nil
	})

	if err != nil {
		metrics.GatewayFailures.WithLabelValues(endpoint).Inc()
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return &GatewayError{Message: "booking gateway temporarily unavailable"}
		}
		var gwErr *GatewayError
		if errors.As(err, &gwErr) {
			return gwErr
		}
		return &GatewayError{Message: err.Error()}
	}
	return nil
}

// FetchCatalog returns the current rentable equipment set.
func (c *Client) FetchCatalog(ctx context.Context) ([]models.EquipmentItem, error) {
	var catalog []models.EquipmentItem
	if err := c.call(ctx, "GET", "/equipment", nil, "", &catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

func (c *Client) AddEquipment(ctx context.Context, input models.EquipmentInput) (models.EquipmentItem, error) {
	var item models.EquipmentItem
	err := c.call(ctx, "POST", "/equipment", input, "", &item)
	return item, err
}

func (c *Client) DeleteEquipment(ctx context.Context, id string) error {
	return c.call(ctx, "DELETE", "/equipment/"+id, nil, "", nil)
}

// SubmitBooking persists a booking request and returns the canonical
// record with its gateway-assigned id, status and creation time.
func (c *Client) SubmitBooking(ctx context.Context, req models.BookingRequest) (models.Booking, error) {
	var booking models.Booking
	err := c.call(ctx, "POST", "/bookings", req, "", &booking)
	return booking, err
}

func (c *Client) FetchBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.call(ctx, "GET", "/bookings", nil, "", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) UpdateBookingStatus(ctx context.Context, bookingID string, status models.BookingStatus) error {
	body := map[string]models.BookingStatus{"status": status}
	return c.call(ctx, "PUT", "/bookings/"+bookingID, body, "", nil)
}

func (c *Client) FetchContactInfo(ctx context.Context) (models.ContactInfo, error) {
	var info models.ContactInfo
	err := c.call(ctx, "GET", "/contact", nil, "", &info)
	return info, err
}

func (c *Client) UpdateContactInfo(ctx context.Context, info models.ContactInfo) error {
	return c.call(ctx, "POST", "/contact", info, "", nil)
}

func (c *Client) FetchGallery(ctx context.Context) (models.Gallery, error) {
	var gallery models.Gallery
	err := c.call(ctx, "GET", "/gallery", nil, "", &gallery)
	return gallery, err
}

func (c *Client) UpdateGallery(ctx context.Context, gallery models.Gallery) error {
	return c.call(ctx, "POST", "/gallery", gallery, "", nil)
}

// Login forwards credentials to the gateway; the returned token is
// opaque to this service.
func (c *Client) Login(ctx context.Context, email, password string) (models.AuthResult, error) {
	var result models.AuthResult
	body := map[string]string{"email": email, "password": password}
	err := c.call(ctx, "POST", "/auth/login", body, "", &result)
	return result, err
}

func (c *Client) AdminLogin(ctx context.Context, username, password string) (models.AuthResult, error) {
	var result models.AuthResult
	body := map[string]string{"username": username, "password": password}
	err := c.call(ctx, "POST", "/auth/admin-login", body, "", &result)
	return result, err
}

// GoogleLogin forwards a third-party ID token for the gateway to
// verify; no verification happens locally.
func (c *Client) GoogleLogin(ctx context.Context, idToken string) (models.AuthResult, error) {
	var result models.AuthResult
	body := map[string]string{"token": idToken}
	err := c.call(ctx, "POST", "/auth/google", body, "", &result)
	return result, err
}

func (c *Client) Register(ctx context.Context, name, email, password string) (models.AuthResult, error) {
	var result models.AuthResult
	body := map[string]string{"name": name, "email": email, "password": password}
	err := c.call(ctx, "POST", "/auth/register", body, "", &result)
	return result, err
}
