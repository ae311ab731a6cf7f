package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sudarshan-939/vimala-2/models"
)

func respond(t *testing.T, w http.ResponseWriter, status int, body interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestFetchCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/equipment", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		respond(t, w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"id": "eq-1", "name": "Sony FX6 Cinema Camera", "type": "camera", "price": 13500, "stock": 5},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	catalog, err := client.FetchCatalog(context.Background())

	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "eq-1", catalog[0].ID)
	assert.Equal(t, models.EquipmentTypeCamera, catalog[0].Type)
	assert.Equal(t, 5, catalog[0].Stock)
}

func TestSubmitBookingSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req models.BookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 3, req.RentalDays)

		respond(t, w, http.StatusCreated, map[string]interface{}{
			"success": true,
			"data": models.Booking{
				BookingID:      "BK-42",
				Customer:       req.Customer,
				EquipmentItems: req.EquipmentItems,
				TotalAmount:    req.TotalAmount,
				RentalDays:     req.RentalDays,
				Status:         models.BookingStatusPending,
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	booking, err := client.SubmitBooking(context.Background(), models.BookingRequest{
		Customer:    models.CustomerDetails{Name: "Asha", Email: "asha@example.com", Phone: "9"},
		TotalAmount: 600,
		RentalDays:  3,
	})

	require.NoError(t, err)
	assert.Equal(t, "BK-42", booking.BookingID)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
}

func TestSubmitBookingRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusConflict, map[string]interface{}{
			"success": false,
			"error":   "Only 1 unit of Sony FX6 Cinema Camera is available",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.SubmitBooking(context.Background(), models.BookingRequest{})

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "Only 1 unit of Sony FX6 Cinema Camera is available", gwErr.Message)
}

func TestNonJSONResponseIsGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<!doctype html><html>bad gateway</html>"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.FetchCatalog(context.Background())

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Contains(t, gwErr.Message, "invalid response")
}

func TestUnreachableGateway(t *testing.T) {
	client := NewClient("http://127.0.0.1:1") // nothing listens here

	_, err := client.FetchCatalog(context.Background())

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
}

func TestCircuitOpensAfterRepeatedFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "boom",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	for i := 0; i < 5; i++ {
		_, err := client.FetchCatalog(context.Background())
		require.Error(t, err)
	}

	// Breaker is open now; the request never reaches the server.
	_, err := client.FetchCatalog(context.Background())
	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Contains(t, gwErr.Message, "temporarily unavailable")
}

func TestAuthProxying(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			respond(t, w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data": models.AuthResult{
					Token: "opaque-token",
					User:  models.User{ID: "u-1", Email: "asha@example.com", Name: "Asha"},
				},
			})
		case "/api/auth/google":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "google-id-token", body["token"])
			respond(t, w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data":    models.AuthResult{Token: "t2", User: models.User{ID: "u-2"}},
			})
		default:
			respond(t, w, http.StatusNotFound, map[string]interface{}{"success": false, "error": "not found"})
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	result, err := client.Login(context.Background(), "asha@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", result.Token)
	assert.Equal(t, "Asha", result.User.Name)

	result, err = client.GoogleLogin(context.Background(), "google-id-token")
	require.NoError(t, err)
	assert.Equal(t, "u-2", result.User.ID)
}
