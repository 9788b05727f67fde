// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the phone or email is already taken.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserFilter narrows user listings and counts. Nil fields do not filter.
type UserFilter struct {
	Role     *entity.Role
	Approved *bool // only meaningful together with a merchant or delivery role
	IsActive *bool
}

// UserRepository defines the standard operations for user persistence.
// Users are returned with their role profile and addresses loaded.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDs retrieves the users with the given IDs. Missing IDs are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)

	// FindByPhone retrieves a single user by phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)

	// FindByEmail retrieves a single user by (normalized) email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns the users matching filter, newest first.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, error)

	// Count returns the number of users matching filter.
	Count(ctx context.Context, filter UserFilter) (int64, error)

	// Create persists a new user together with its role profile.
	// Returns ErrUserAlreadyExists on a phone or email collision.
	Create(ctx context.Context, user *entity.User) error

	// Update saves the base record and reconciles the role profiles with user.Role.
	// Returns ErrUserAlreadyExists on a phone or email collision.
	Update(ctx context.Context, user *entity.User) error

	// UpdateFCMToken stores the push notification token of a user.
	UpdateFCMToken(ctx context.Context, id uuid.UUID, token string) error

	// Delete removes a user permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
