package models

import "time"

// Chamber is a product catalog entry for a hyperbaric chamber.
type Chamber struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Brand         string    `bson:"brand" json:"brand"`
	ChamberType   string    `bson:"chamberType" json:"chamberType"` // "soft-shell" or "hard-shell"
	PressureATA   float64   `bson:"pressureAta" json:"pressureAta"`
	Capacity      string    `bson:"capacity" json:"capacity"` // e.g. "single", "multiplace"
	Price         float64   `bson:"price" json:"price"`
	Currency      string    `bson:"currency" json:"currency"`
	Images        []string  `bson:"images" json:"images"`
	Description   string    `bson:"description" json:"description"`
	Features      []string  `bson:"features" json:"features"`
	StripePriceID string    `bson:"stripePriceId" json:"stripePriceId,omitempty"`
	InStock       bool      `bson:"inStock" json:"inStock"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}
