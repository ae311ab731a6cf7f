package pricing

import "github.com/Sudarshan-939/vimala-2/models"

const (
	// RentalDays is the fixed minimum rental period applied to every
	// booking. Prices are per day.
	RentalDays = 3

	// TaxRate is 18% GST, applied once at receipt time on the
	// rental-scaled subtotal, never per line.
	TaxRate = 0.18
)

// LineTotal is the per-day cost of one cart line.
func LineTotal(line models.CartLine) float64 {
	return line.Price * float64(line.Quantity)
}

// CartSubtotal is the per-day cost of the whole cart.
func CartSubtotal(lines []models.CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += LineTotal(line)
	}
	return total
}

// RentalTotal scales the subtotal by the rental period. This is the
// pre-tax amount sent with a booking request.
func RentalTotal(lines []models.CartLine) float64 {
	return CartSubtotal(lines) * RentalDays
}

// GrandTotal applies GST to an already rental-scaled amount.
func GrandTotal(amount float64) float64 {
	return amount * (1 + TaxRate)
}

// CanIncrement reports whether the line can grow by one unit without
// exceeding the stock of the catalog item it refers to.
func CanIncrement(line models.CartLine, item models.EquipmentItem) bool {
	return line.Quantity < item.Stock
}

// ReceiptLine is one equipment row on a rendered receipt.
type ReceiptLine struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"` // per day
	Total    float64 `json:"total"` // price * quantity * rental days
}

// Receipt is the read-only breakdown of a confirmed booking.
type Receipt struct {
	BookingID  string                 `json:"bookingId"`
	Status     models.BookingStatus   `json:"status"`
	CreatedAt  string                 `json:"createdAt"`
	Customer   models.CustomerDetails `json:"customer"`
	Project    models.ProjectDetails  `json:"projectDetails"`
	Lines      []ReceiptLine          `json:"lines"`
	RentalDays int                    `json:"rentalDays"`
	Subtotal   float64                `json:"subtotal"`
	Tax        float64                `json:"tax"`
	GrandTotal float64                `json:"grandTotal"`
}

// ReceiptFor renders a gateway booking as a receipt. Tax is computed
// here and nowhere else; the booking's TotalAmount stays pre-tax.
func ReceiptFor(b models.Booking) Receipt {
	lines := make([]ReceiptLine, 0, len(b.EquipmentItems))
	for _, item := range b.EquipmentItems {
		lines = append(lines, ReceiptLine{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Total:    item.Price * float64(item.Quantity) * float64(b.RentalDays),
		})
	}

	return Receipt{
		BookingID:  b.BookingID,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt.Format("2006-01-02 15:04:05"),
		Customer:   b.Customer,
		Project:    b.ProjectDetails,
		Lines:      lines,
		RentalDays: b.RentalDays,
		Subtotal:   b.TotalAmount,
		Tax:        b.TotalAmount * TaxRate,
		GrandTotal: GrandTotal(b.TotalAmount),
	}
}
