package models

import "time"

// Category is a fixed event classification (Siyasi, Ekonomik, Spor, ...).
// Categories are created by the seed migration and read-only at runtime.
type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
