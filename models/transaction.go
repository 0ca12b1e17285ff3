package models

import (
	"time"
)

// ProductTransaction is one product-sale record as delivered by the seed feed.
// JSON field names match the upstream document so the same struct is used for
// decoding the feed and for API responses.
type ProductTransaction struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	DateOfSale  time.Time `json:"dateOfSale" gorm:"index"`
	Sold        bool      `json:"sold"`
}
