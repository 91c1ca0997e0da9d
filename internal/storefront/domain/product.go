package domain

import "time"

// Product is a catalog entry owned by the admin who created it.
type Product struct {
	ID          string
	AdminID     string
	Title       string
	Description string
	PriceCents  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
