package models

import "time"

// CartLine is one equipment entry in a session cart. Quantity is
// always >= 1; a line that would drop to 0 is removed instead.
type CartLine struct {
	EquipmentID string    `json:"equipment_id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"` // per day, copied at add time
	Image       string    `json:"image"`
	Quantity    int       `json:"quantity"`
	AddedAt     time.Time `json:"added_at"`
}

// CartView is what the cart endpoints return to the client.
type CartView struct {
	Lines       []CartLine `json:"lines"`
	ItemCount   int        `json:"item_count"`
	Subtotal    float64    `json:"subtotal"`
	RentalDays  int        `json:"rental_days"`
	RentalTotal float64    `json:"rental_total"`
}
