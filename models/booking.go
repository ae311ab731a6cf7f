package models

import "time"

type BookingStatus string

const (
	// Booking statuses (rental flow)
	BookingStatusPending   BookingStatus = "pending"   // Booking placed, awaiting confirmation
	BookingStatusConfirmed BookingStatus = "confirmed" // Confirmed by the rental desk
	BookingStatusCompleted BookingStatus = "completed" // Equipment returned
)

// CustomerDetails as entered in the checkout form. Name, email and
// phone are required; company and address are optional.
type CustomerDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company,omitempty"`
	Address string `json:"address,omitempty"`
}

type ProjectDetails struct {
	Type                string `json:"type"`
	ShootDate           string `json:"shootDate"` // YYYY-MM-DD, must not be in the past
	SpecialRequirements string `json:"specialRequirements,omitempty"`
}

// BookingItem is the cart line snapshot sent with a booking request.
type BookingItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// BookingRequest is constructed client-side and immutable once
// submitted. TotalAmount is the pre-tax rental total.
type BookingRequest struct {
	Customer       CustomerDetails `json:"customer"`
	ProjectDetails ProjectDetails  `json:"projectDetails"`
	EquipmentItems []BookingItem   `json:"equipmentItems"`
	TotalAmount    float64         `json:"totalAmount"`
	RentalDays     int             `json:"rentalDays"`
}

// Booking is the canonical record returned by the gateway. This
// service never mutates one, only displays it.
type Booking struct {
	BookingID      string          `json:"bookingId"`
	Customer       CustomerDetails `json:"customer"`
	ProjectDetails ProjectDetails  `json:"projectDetails"`
	EquipmentItems []BookingItem   `json:"equipmentItems"`
	TotalAmount    float64         `json:"totalAmount"`
	RentalDays     int             `json:"rentalDays"`
	Status         BookingStatus   `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
}
