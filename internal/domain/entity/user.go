// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"crypto/subtle"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MinPasswordLength is the shortest accepted plain-text password.
const MinPasswordLength = 6

var (
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// User is the shared base record of every account. Role specific data lives
// in exactly one of the profile variants, selected by Role.
type User struct {
	ID           uuid.UUID
	Phone        string
	PasswordHash string // never serialized to clients
	Name         string
	Email        string // optional, unique when set
	Role         Role
	Avatar       string
	IsActive     bool
	FCMToken     string
	OTP          *OTP

	Merchant  *MerchantProfile // non-nil iff Role == RoleMerchant
	Delivery  *DeliveryProfile // non-nil iff Role == RoleDelivery
	Addresses []Address        // client delivery addresses, ordered by creation

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MerchantProfile holds data specific to the "merchant" role.
type MerchantProfile struct {
	UserID          uuid.UUID
	ShopName        string
	ShopDescription string
	ShopAddress     string
	ShopPhone       string
	IsApproved      bool
	UpdatedAt       time.Time
}

// DeliveryProfile holds data specific to the "delivery" role.
type DeliveryProfile struct {
	UserID        uuid.UUID
	VehicleType   VehicleType
	VehicleNumber string
	IsApproved    bool
	UpdatedAt     time.Time
}

// VehicleType is the kind of vehicle a delivery user drives.
type VehicleType string

const (
	VehicleMoto    VehicleType = "moto"
	VehicleVelo    VehicleType = "velo"
	VehicleVoiture VehicleType = "voiture"
)

// IsValid checks if the VehicleType is a valid value.
func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleMoto, VehicleVelo, VehicleVoiture:
		return true
	default:
		return false
	}
}

// OTP is a one-time password reset code.
type OTP struct {
	Code      string
	ExpiresAt time.Time
}

// Valid reports whether code matches and has not expired at now.
func (o *OTP) Valid(code string, now time.Time) bool {
	if o == nil || o.Code == "" || code == "" {
		return false
	}
	if !now.Before(o.ExpiresAt) {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(o.Code), []byte(code)) == 1
}

// IsApproved reports the approval flag of the active role profile.
// Admins are always approved, clients never need approval.
func (u *User) IsApproved() bool {
	switch u.Role {
	case RoleAdmin:
		return true
	case RoleMerchant:
		return u.Merchant != nil && u.Merchant.IsApproved
	case RoleDelivery:
		return u.Delivery != nil && u.Delivery.IsApproved
	default:
		return false
	}
}

// SetApproved updates the approval flag of the active role profile.
// It is a no-op for roles without an approval step.
func (u *User) SetApproved(approved bool) {
	switch u.Role {
	case RoleMerchant:
		u.ensureProfiles()
		u.Merchant.IsApproved = approved
	case RoleDelivery:
		u.ensureProfiles()
		u.Delivery.IsApproved = approved
	}
}

// ChangeRole switches the user to role and reshapes the profile variants:
// the profile of the new role is created if missing, the others are dropped.
func (u *User) ChangeRole(role Role) {
	u.Role = role
	u.ensureProfiles()
}

func (u *User) ensureProfiles() {
	if u.Role == RoleMerchant {
		if u.Merchant == nil {
			u.Merchant = &MerchantProfile{UserID: u.ID}
		}
	} else {
		u.Merchant = nil
	}

	if u.Role == RoleDelivery {
		if u.Delivery == nil {
			u.Delivery = &DeliveryProfile{UserID: u.ID}
		}
	} else {
		u.Delivery = nil
	}
}

// ShopName returns the merchant shop name, or "" for other roles.
func (u *User) ShopName() string {
	if u.Merchant == nil {
		return ""
	}

	return u.Merchant.ShopName
}

// AddAddress appends addr and keeps exactly one default address: the first
// address is always the default, and a new default unsets every other one.
func (u *User) AddAddress(addr Address) {
	if len(u.Addresses) == 0 {
		addr.IsDefault = true
	}
	if addr.IsDefault {
		for i := range u.Addresses {
			u.Addresses[i].IsDefault = false
		}
	}
	u.Addresses = append(u.Addresses, addr)
}

// DefaultAddress returns the default address, or nil when there is none.
func (u *User) DefaultAddress() *Address {
	for i := range u.Addresses {
		if u.Addresses[i].IsDefault {
			return &u.Addresses[i]
		}
	}

	return nil
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidPhone checks the E.164-like phone format.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// IsValidEmail performs a loose address shape check.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
