package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sudarshan-939/vimala-2/cart"
	"github.com/Sudarshan-939/vimala-2/models"
)

type fakeGateway struct {
	mu       sync.Mutex
	requests []models.BookingRequest
	booking  models.Booking
	err      error
	block    chan struct{} // when set, SubmitBooking waits until closed
}

func (f *fakeGateway) SubmitBooking(ctx context.Context, req models.BookingRequest) (models.Booking, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	if f.err != nil {
		return models.Booking{}, f.err
	}

	booking := f.booking
	if booking.BookingID == "" {
		booking = models.Booking{
			BookingID:      "BK-1",
			Customer:       req.Customer,
			ProjectDetails: req.ProjectDetails,
			EquipmentItems: req.EquipmentItems,
			TotalAmount:    req.TotalAmount,
			RentalDays:     req.RentalDays,
			Status:         models.BookingStatusPending,
			CreatedAt:      time.Now(),
		}
	}
	return booking, nil
}

func (f *fakeGateway) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func machineCatalog() []models.EquipmentItem {
	return []models.EquipmentItem{
		{ID: "eq-1", Name: "Sony FX6 Cinema Camera", Price: 100, Stock: 5},
	}
}

func validCustomer() models.CustomerDetails {
	return models.CustomerDetails{Name: "Asha", Email: "asha@example.com", Phone: "9999999999"}
}

func validProject(t *testing.T) models.ProjectDetails {
	t.Helper()
	return models.ProjectDetails{
		Type:      "documentary",
		ShootDate: time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
	}
}

func newTestMachine(t *testing.T, gw Gateway) *Machine {
	t.Helper()
	store := cart.NewStore()
	require.NoError(t, store.Add("eq-1", machineCatalog()))
	require.NoError(t, store.Increment("eq-1", machineCatalog()))
	return NewMachine(store, gw)
}

func TestOpenCartAlwaysSucceeds(t *testing.T) {
	m := NewMachine(cart.NewStore(), &fakeGateway{})

	view := m.OpenCart()
	assert.Empty(t, view.Lines)
	assert.Equal(t, StateCartOpen, m.State())
}

func TestProceedToDetailsRequiresItems(t *testing.T) {
	m := NewMachine(cart.NewStore(), &fakeGateway{})
	m.OpenCart()

	assert.ErrorIs(t, m.ProceedToDetails(), ErrEmptyCart)
	assert.Equal(t, StateCartOpen, m.State())

	require.NoError(t, m.Cart().Add("eq-1", machineCatalog()))
	require.NoError(t, m.ProceedToDetails())
	assert.Equal(t, StateDetailsEntry, m.State())
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	gw := &fakeGateway{}
	m := newTestMachine(t, gw)
	require.NoError(t, m.ProceedToDetails())

	_, err := m.Submit(context.Background(), models.CustomerDetails{Name: "Asha"}, models.ProjectDetails{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"email", "phone", "project type", "shoot date"}, verr.Fields)
	assert.Equal(t, StateDetailsEntry, m.State())
	assert.Equal(t, 0, gw.requestCount())
	assert.Equal(t, 2, m.Cart().TotalItemCount()) // untouched
}

func TestSubmitRejectsPastShootDate(t *testing.T) {
	gw := &fakeGateway{}
	m := newTestMachine(t, gw)
	require.NoError(t, m.ProceedToDetails())

	project := validProject(t)
	project.ShootDate = time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	_, err := m.Submit(context.Background(), validCustomer(), project)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "shoot date")
	assert.Equal(t, StateDetailsEntry, m.State())
	assert.Equal(t, 0, gw.requestCount())
}

func TestSubmitTodayShootDateAccepted(t *testing.T) {
	gw := &fakeGateway{}
	m := newTestMachine(t, gw)
	require.NoError(t, m.ProceedToDetails())

	project := validProject(t)
	project.ShootDate = time.Now().Format("2006-01-02")

	_, err := m.Submit(context.Background(), validCustomer(), project)
	require.NoError(t, err)
	assert.Equal(t, StateReceipt, m.State())
}

func TestSubmitSuccessClearsCartAndShowsReceipt(t *testing.T) {
	gw := &fakeGateway{}
	m := newTestMachine(t, gw)
	require.NoError(t, m.ProceedToDetails())

	booking, err := m.Submit(context.Background(), validCustomer(), validProject(t))
	require.NoError(t, err)

	assert.Equal(t, StateReceipt, m.State())
	assert.Equal(t, 0, m.Cart().Len())
	assert.Equal(t, "BK-1", booking.BookingID)
	assert.Equal(t, 600.0, booking.TotalAmount) // 100 * 2 * 3 days, pre-tax

	receipt, err := m.Receipt()
	require.NoError(t, err)
	assert.Equal(t, "BK-1", receipt.BookingID)
	require.Len(t, receipt.Lines, 1)
	assert.Equal(t, "Sony FX6 Cinema Camera", receipt.Lines[0].Name)
	assert.Equal(t, 2, receipt.Lines[0].Quantity)
	assert.InDelta(t, 708.0, receipt.GrandTotal, 1e-9)

	m.CloseReceipt()
	assert.Equal(t, StateBrowsing, m.State())
	_, err = m.Receipt()
	assert.ErrorIs(t, err, ErrNoReceipt)
}

func TestSubmitGatewayRejectionPreservesCart(t *testing.T) {
	gw := &fakeGateway{err: errors.New("stock changed for Sony FX6 Cinema Camera")}
	m := newTestMachine(t, gw)
	require.NoError(t, m.ProceedToDetails())

	before := m.Cart().Lines()
	_, err := m.Submit(context.Background(), validCustomer(), validProject(t))

	require.Error(t, err)
	assert.Equal(t, StateDetailsEntry, m.State())
	assert.Equal(t, before, m.Cart().Lines())
	assert.Equal(t, 1, gw.requestCount())
}

func TestDoubleSubmitSendsOneRequest(t *testing.T) {
	gw := &fakeGateway{block: make(chan struct{})}
	m := newTestMachine(t, gw)
	require.NoError(t, m.ProceedToDetails())

	firstDone := make(chan error, 1)
	go func() {
		_, err := m.Submit(context.Background(), validCustomer(), validProject(t))
		firstDone <- err
	}()

	// Wait for the first submit to reach the gateway.
	require.Eventually(t, func() bool {
		return gw.requestCount() == 1
	}, time.Second, 5*time.Millisecond)

	_, err := m.Submit(context.Background(), validCustomer(), validProject(t))
	assert.ErrorIs(t, err, ErrAlreadyInProgress)

	close(gw.block)
	require.NoError(t, <-firstDone)

	assert.Equal(t, 1, gw.requestCount())
	assert.Equal(t, StateReceipt, m.State())
}
