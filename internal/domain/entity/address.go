// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAddressLabel is used when a client does not name an address.
const DefaultAddressLabel = "Domicile"

// Address is a client delivery address.
type Address struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Label       string // e.g. "Domicile", "Bureau"
	FullAddress string
	City        string
	Quarter     string
	Details     string
	IsDefault   bool
	CreatedAt   time.Time
}
