package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Sudarshan-939/vimala-2/cart"
	"github.com/Sudarshan-939/vimala-2/models"
	"github.com/Sudarshan-939/vimala-2/pricing"
)

type State string

const (
	StateBrowsing     State = "browsing"
	StateCartOpen     State = "cart_open"
	StateDetailsEntry State = "details_entry"
	StateSubmitting   State = "submitting"
	StateReceipt      State = "receipt"
)

var (
	ErrEmptyCart = errors.New("cart is empty")

	// ErrAlreadyInProgress guards against a duplicate booking request
	// while one submission is still waiting on the gateway.
	ErrAlreadyInProgress = errors.New("a booking submission is already in progress")

	ErrNoReceipt = errors.New("no confirmed booking to display")
)

// ValidationError lists every missing or invalid checkout field.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

// Gateway is the slice of the booking gateway the machine needs.
type Gateway interface {
	SubmitBooking(ctx context.Context, req models.BookingRequest) (models.Booking, error)
}

// Machine drives one session's cart through the booking flow:
// browsing -> cart open -> details entry -> submitting -> receipt.
// It is non-reentrant: only one submission may be in flight.
type Machine struct {
	mu      sync.Mutex
	state   State
	cart    *cart.Store
	gw      Gateway
	booking *models.Booking // set while in the receipt state

	now func() time.Time // injected in tests
}

func NewMachine(store *cart.Store, gw Gateway) *Machine {
	return &Machine{
		state: StateBrowsing,
		cart:  store,
		gw:    gw,
		now:   time.Now,
	}
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Machine) Cart() *cart.Store {
	return m.cart
}

// OpenCart shows the cart. An empty cart still opens; it just renders
// as empty.
func (m *Machine) OpenCart() models.CartView {
	m.mu.Lock()
	if m.state == StateBrowsing || m.state == StateDetailsEntry {
		m.state = StateCartOpen
	}
	m.mu.Unlock()
	return m.cart.View()
}

// CloseCart returns to browsing without touching the cart.
func (m *Machine) CloseCart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateCartOpen || m.state == StateDetailsEntry {
		m.state = StateBrowsing
	}
}

// ProceedToDetails moves to the customer details form. Rejected for
// an empty cart.
func (m *Machine) ProceedToDetails() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cart.Len() == 0 {
		return ErrEmptyCart
	}
	m.state = StateDetailsEntry
	return nil
}

// validate checks required fields and that the shoot date is not in
// the past. Every offending field is reported, not just the first.
func (m *Machine) validate(customer models.CustomerDetails, project models.ProjectDetails) *ValidationError {
	var fields []string
	if strings.TrimSpace(customer.Name) == "" {
		fields = append(fields, "name")
	}
	if strings.TrimSpace(customer.Email) == "" {
		fields = append(fields, "email")
	}
	if strings.TrimSpace(customer.Phone) == "" {
		fields = append(fields, "phone")
	}
	if strings.TrimSpace(project.Type) == "" {
		fields = append(fields, "project type")
	}
	if strings.TrimSpace(project.ShootDate) == "" {
		fields = append(fields, "shoot date")
	} else {
		shootDate, err := time.Parse("2006-01-02", project.ShootDate)
		today, _ := time.Parse("2006-01-02", m.now().Format("2006-01-02"))
		if err != nil || shootDate.Before(today) {
			fields = append(fields, "shoot date")
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Submit validates the details, builds an immutable booking request
// from the current cart and sends it to the gateway. On success the
// cart is cleared and the canonical booking is kept for the receipt;
// on gateway failure cart and state return to details entry unchanged.
func (m *Machine) Submit(ctx context.Context, customer models.CustomerDetails, project models.ProjectDetails) (models.Booking, error) {
	m.mu.Lock()
	if m.state == StateSubmitting {
		m.mu.Unlock()
		return models.Booking{}, ErrAlreadyInProgress
	}
	if m.cart.Len() == 0 {
		m.mu.Unlock()
		return models.Booking{}, ErrEmptyCart
	}
	if verr := m.validate(customer, project); verr != nil {
		m.state = StateDetailsEntry
		m.mu.Unlock()
		return models.Booking{}, verr
	}

	lines := m.cart.Lines()
	items := make([]models.BookingItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.BookingItem{
			ID:       line.EquipmentID,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}

	req := models.BookingRequest{
		Customer:       customer,
		ProjectDetails: project,
		EquipmentItems: items,
		TotalAmount:    pricing.RentalTotal(lines),
		RentalDays:     pricing.RentalDays,
	}

	m.state = StateSubmitting
	m.mu.Unlock()

	booking, err := m.gw.SubmitBooking(ctx, req)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		// Cart and form are preserved; the user can retry.
		m.state = StateDetailsEntry
		log.WithField("error", err.Error()).Warn("Booking submission rejected by gateway")
		return models.Booking{}, fmt.Errorf("booking submission failed: %w", err)
	}

	m.cart.Clear()
	m.booking = &booking
	m.state = StateReceipt
	log.WithFields(log.Fields{
		"booking_id": booking.BookingID,
		"status":     booking.Status,
		"total":      booking.TotalAmount,
	}).Info("Booking confirmed")

	return booking, nil
}

// Receipt renders the confirmed booking. Only valid in the receipt
// state.
func (m *Machine) Receipt() (pricing.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateReceipt || m.booking == nil {
		return pricing.Receipt{}, ErrNoReceipt
	}
	return pricing.ReceiptFor(*m.booking), nil
}

// CloseReceipt leaves the terminal receipt state back to browsing.
func (m *Machine) CloseReceipt() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateReceipt {
		m.booking = nil
		m.state = StateBrowsing
	}
}
