package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a single catalog entry.
//
// Price is an exact decimal and marshals as a JSON string ("19.99"),
// never as a binary float. ImageURL is null when the product has no
// image.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    *string         `json:"image_url"`
	CreatedAt   time.Time       `json:"createdAt"`
}
