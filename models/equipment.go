package models

import "time"

type EquipmentType string

const (
	EquipmentTypeCamera EquipmentType = "camera"
	EquipmentTypeLight  EquipmentType = "light"
	EquipmentTypeLens   EquipmentType = "lens"
	EquipmentTypeAudio  EquipmentType = "audio"
	EquipmentTypeGrip   EquipmentType = "grip"
)

// EquipmentItem is owned by the booking gateway; this service only
// holds read-only copies from the last catalog fetch.
type EquipmentItem struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Type        EquipmentType `json:"type"`
	Price       float64       `json:"price"` // per day
	Stock       int           `json:"stock"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type EquipmentInput struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Price       float64 `json:"price" binding:"required,min=0"`
	Stock       int     `json:"stock" binding:"min=0"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}
