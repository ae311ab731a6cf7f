package models

// ContactInfo is the footer contact block, owned by the gateway.
type ContactInfo struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Hours   string `json:"hours"`
}

// Gallery is the ordered list of image URLs on the landing page.
type Gallery []string
