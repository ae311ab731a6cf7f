package bookingControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sudarshan-939/vimala-2/gateway"
	"github.com/Sudarshan-939/vimala-2/models"
)

func bookingsStub(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/api/bookings/") {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "confirmed", body["status"])
			require.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{"success": true}))
			return
		}

		require.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": []models.Booking{
				{BookingID: "BK-1", Customer: models.CustomerDetails{Name: "Asha", Email: "asha@example.com"}, TotalAmount: 600},
				{BookingID: "BK-2", Customer: models.CustomerDetails{Name: "Ravi", Email: "ravi@example.com"}, TotalAmount: 900},
				{BookingID: "BK-3", Customer: models.CustomerDetails{Name: "Asha", Email: "ASHA@example.com"}, TotalAmount: 300},
			},
		}))
	}))
}

func TestGetUserBookingsFiltersByEmail(t *testing.T) {
	srv := bookingsStub(t)
	defer srv.Close()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/session/bookings", GetUserBookings(gateway.NewClient(srv.URL)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/session/bookings?email=asha@example.com", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var mine []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	require.Len(t, mine, 2) // email match is case-insensitive
	assert.Equal(t, "BK-1", mine[0].BookingID)
	assert.Equal(t, "BK-3", mine[1].BookingID)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/session/bookings", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateBookingStatus(t *testing.T) {
	srv := bookingsStub(t)
	defer srv.Close()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/admin/bookings/:bookingID", UpdateBookingStatus(gateway.NewClient(srv.URL)))

	req := httptest.NewRequest(http.MethodPut, "/admin/bookings/BK-1", strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Unknown statuses never reach the gateway.
	req = httptest.NewRequest(http.MethodPut, "/admin/bookings/BK-1", strings.NewReader(`{"status":"shipped"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid booking status")
}

func TestMapBookingStatus(t *testing.T) {
	status, err := mapBookingStatus("Completed")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, status)

	_, err = mapBookingStatus("cancelled")
	assert.Error(t, err)
}
