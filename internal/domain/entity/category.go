package entity

import (
	"time"

	"github.com/google/uuid"
)

// UncategorizedName labels products whose category no longer resolves.
const UncategorizedName = "Non catégorisé"

// Category groups products. Names are unique case-insensitively.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	Image       string
	Order       int // ascending sort key
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
