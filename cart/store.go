package cart

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Sudarshan-939/vimala-2/models"
	"github.com/Sudarshan-939/vimala-2/pricing"
)

var (
	// ErrNotFound means the equipment id is absent from the catalog
	// snapshot the operation was given.
	ErrNotFound = errors.New("equipment not found in catalog")
)

// StockExceededError is returned when a line would grow past the
// stock of its catalog item. The cart is left unchanged.
type StockExceededError struct {
	Name  string
	Stock int
}

func (e *StockExceededError) Error() string {
	return fmt.Sprintf("only %d units of %s are available", e.Stock, e.Name)
}

// Store is one session's cart: an ordered list of lines, unique per
// equipment id. Every mutating operation that depends on stock takes
// the catalog explicitly, because catalog data is considered stale
// between fetches; the gateway stays authoritative at submit time.
type Store struct {
	mu    sync.Mutex
	lines []models.CartLine
}

func NewStore() *Store {
	return &Store{}
}

func findItem(catalog []models.EquipmentItem, id string) (models.EquipmentItem, bool) {
	for _, item := range catalog {
		if item.ID == id {
			return item, true
		}
	}
	return models.EquipmentItem{}, false
}

// Add appends a quantity-1 line for the equipment, or bumps an
// existing line by one if stock allows.
func (s *Store) Add(equipmentID string, catalog []models.EquipmentItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := findItem(catalog, equipmentID)
	if !ok {
		return ErrNotFound
	}

	for i := range s.lines {
		if s.lines[i].EquipmentID == equipmentID {
			if !pricing.CanIncrement(s.lines[i], item) {
				return &StockExceededError{Name: item.Name, Stock: item.Stock}
			}
			s.lines[i].Quantity++
			return nil
		}
	}

	if item.Stock < 1 {
		return &StockExceededError{Name: item.Name, Stock: item.Stock}
	}

	s.lines = append(s.lines, models.CartLine{
		EquipmentID: item.ID,
		Name:        item.Name,
		Price:       item.Price,
		Image:       item.Image,
		Quantity:    1,
		AddedAt:     time.Now(),
	})
	return nil
}

// Increment bumps an existing line by one if stock allows.
func (s *Store) Increment(equipmentID string, catalog []models.EquipmentItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := findItem(catalog, equipmentID)
	if !ok {
		return ErrNotFound
	}

	for i := range s.lines {
		if s.lines[i].EquipmentID == equipmentID {
			if !pricing.CanIncrement(s.lines[i], item) {
				return &StockExceededError{Name: item.Name, Stock: item.Stock}
			}
			s.lines[i].Quantity++
			return nil
		}
	}
	return ErrNotFound
}

// Decrement reduces a line by one; a line at quantity 1 is removed
// entirely, so quantity 0 is never observable. Missing lines are a
// no-op.
func (s *Store) Decrement(equipmentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].EquipmentID == equipmentID {
			if s.lines[i].Quantity > 1 {
				s.lines[i].Quantity--
			} else {
				s.lines = append(s.lines[:i], s.lines[i+1:]...)
			}
			return
		}
	}
}

// Remove deletes the line unconditionally. Idempotent.
func (s *Store) Remove(equipmentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].EquipmentID == equipmentID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called after a confirmed booking.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines returns a copy of the cart in insertion order.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// TotalItemCount is the sum of all line quantities, for the cart badge.
func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// View renders the cart with its derived totals.
func (s *Store) View() models.CartView {
	lines := s.Lines()
	return models.CartView{
		Lines:       lines,
		ItemCount:   s.TotalItemCount(),
		Subtotal:    pricing.CartSubtotal(lines),
		RentalDays:  pricing.RentalDays,
		RentalTotal: pricing.RentalTotal(lines),
	}
}
