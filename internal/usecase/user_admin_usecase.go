package usecase

import (
	"context"

	"market/internal/domain/entity"

	"github.com/google/uuid"
)

// UserInput carries the admin-editable user fields. Nil fields are left
// unchanged on update; Name, Phone and Password are required on create.
type UserInput struct {
	Name       *string
	Phone      *string
	Email      *string
	Password   *string
	Role       *string
	Avatar     *string
	IsActive   *bool
	IsApproved *bool

	ShopName        *string
	ShopDescription *string
	ShopAddress     *string
	ShopPhone       *string

	VehicleType   *string
	VehicleNumber *string
}

// UserAdminUsecase defines the admin back-office user operations.
type UserAdminUsecase interface {
	// ListUsers returns every user newest first. An empty role or "all" disables the filter.
	ListUsers(ctx context.Context, role string) ([]*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	CreateUser(ctx context.Context, input UserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input UserInput) (*entity.User, error)
	ToggleUserStatus(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error

	ListMerchants(ctx context.Context, approved *bool) ([]*entity.User, error)
	ApproveMerchant(ctx context.Context, id uuid.UUID) (*entity.User, error)
	RejectMerchant(ctx context.Context, id uuid.UUID) (*entity.User, error)
	ListDeliveryUsers(ctx context.Context) ([]*entity.User, error)
}
