package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/errors"
	"market/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const roleFilterAll = "all"

// userAdminService implements the UserAdminUsecase interface.
type userAdminService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserAdminServiceParams holds dependencies for UserAdminService, injected by Fx.
type UserAdminServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserAdminService is the constructor for userAdminService.
func NewUserAdminService(params UserAdminServiceParams) usecase.UserAdminUsecase {
	return &userAdminService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (srv *userAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userAdminService) ListUsers(ctx context.Context, role string) ([]*entity.User, error) {
	filter := repository.UserFilter{}
	role = strings.TrimSpace(role)
	if role != "" && role != roleFilterAll {
		r := entity.Role(role)
		filter.Role = &r
	}

	users, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userAdminService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return srv.findUser(ctx, id)
}

// CreateUser creates an account on behalf of an admin. Unlike self
// registration any role may be assigned, admin included.
func (srv *userAdminService) CreateUser(ctx context.Context, input usecase.UserInput) (*entity.User, error) {
	if isBlank(input.Name) || isBlank(input.Phone) || input.Password == nil || *input.Password == "" {
		return nil, domainerrors.NewValidationError("Champs requis manquants")
	}

	user := &entity.User{
		ID:       uuid.New(),
		Role:     entity.RoleClient,
		IsActive: true,
	}
	if err := srv.applyUserInput(ctx, user, input); err != nil {
		return nil, err
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created by admin", slog.String("userID", user.ID.String()), slog.String("role", user.Role.String()))

	return user, nil
}

// UpdateUser loads the user, applies every supplied field through the same
// validation as CreateUser, and saves the result.
func (srv *userAdminService) UpdateUser(ctx context.Context, id uuid.UUID, input usecase.UserInput) (*entity.User, error) {
	user, err := srv.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.applyUserInput(ctx, user, input); err != nil {
		return nil, err
	}

	if err := srv.save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (srv *userAdminService) ToggleUserStatus(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsActive = !user.IsActive
	if err := srv.save(ctx, user); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User status toggled", slog.String("userID", user.ID.String()), slog.Bool("isActive", user.IsActive))

	return user, nil
}

// DeleteUser hard deletes the account. Products of a deleted merchant are kept.
func (srv *userAdminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("userID", id.String()))

	return nil
}

func (srv *userAdminService) ListMerchants(ctx context.Context, approved *bool) ([]*entity.User, error) {
	role := entity.RoleMerchant
	users, err := srv.userRepo.List(ctx, repository.UserFilter{Role: &role, Approved: approved})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchants")
	}

	return users, nil
}

func (srv *userAdminService) ApproveMerchant(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return srv.setMerchantApproval(ctx, id, true)
}

func (srv *userAdminService) RejectMerchant(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return srv.setMerchantApproval(ctx, id, false)
}

func (srv *userAdminService) ListDeliveryUsers(ctx context.Context) ([]*entity.User, error) {
	role := entity.RoleDelivery
	users, err := srv.userRepo.List(ctx, repository.UserFilter{Role: &role})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list delivery users")
	}

	return users, nil
}

func (srv *userAdminService) setMerchantApproval(ctx context.Context, id uuid.UUID, approved bool) (*entity.User, error) {
	user, err := srv.findUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role != entity.RoleMerchant {
		return nil, domainerrors.ErrNotAMerchant
	}

	user.SetApproved(approved)
	if err := srv.save(ctx, user); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Merchant approval changed", slog.String("userID", user.ID.String()), slog.Bool("approved", approved))

	return user, nil
}

// applyUserInput copies every supplied field onto user. Role is applied
// before the profile fields so a role switch reshapes the profiles first.
func (srv *userAdminService) applyUserInput(ctx context.Context, user *entity.User, input usecase.UserInput) error {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return domainerrors.NewValidationError("Le nom est requis")
		}
		user.Name = name
	}

	if input.Phone != nil {
		phone := strings.TrimSpace(*input.Phone)
		if !entity.IsValidPhone(phone) {
			return domainerrors.NewValidationError("Numéro de téléphone invalide")
		}
		if phone != user.Phone {
			if err := srv.ensureAvailable(ctx, user.ID, func() (*entity.User, error) {
				return srv.userRepo.FindByPhone(ctx, phone)
			}); err != nil {
				return err
			}
		}
		user.Phone = phone
	}

	if input.Email != nil {
		email := entity.NormalizeEmail(*input.Email)
		if email != "" && !entity.IsValidEmail(email) {
			return domainerrors.NewValidationError("Email invalide")
		}
		if email != "" && email != user.Email {
			if err := srv.ensureAvailable(ctx, user.ID, func() (*entity.User, error) {
				return srv.userRepo.FindByEmail(ctx, email)
			}); err != nil {
				return err
			}
		}
		user.Email = email
	}

	if input.Role != nil {
		role := entity.Role(strings.TrimSpace(*input.Role))
		if !role.IsValid() {
			return domainerrors.NewValidationError("Rôle invalide")
		}
		user.ChangeRole(role)
	}

	if input.Avatar != nil {
		user.Avatar = strings.TrimSpace(*input.Avatar)
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if user.Merchant != nil {
		applyString(&user.Merchant.ShopName, input.ShopName)
		applyString(&user.Merchant.ShopDescription, input.ShopDescription)
		applyString(&user.Merchant.ShopAddress, input.ShopAddress)
		applyString(&user.Merchant.ShopPhone, input.ShopPhone)
	}
	if user.Delivery != nil {
		if err := applyVehicle(user.Delivery, input.VehicleType, input.VehicleNumber); err != nil {
			return err
		}
	}
	if input.IsApproved != nil {
		user.SetApproved(*input.IsApproved)
	}

	if input.Password != nil && *input.Password != "" {
		if err := validatePassword(*input.Password); err != nil {
			return err
		}
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}
		user.PasswordHash = hash
	}

	return nil
}

func (srv *userAdminService) ensureAvailable(ctx context.Context, owner uuid.UUID, lookup func() (*entity.User, error)) error {
	existing, err := lookup()
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check user uniqueness")
	}
	if existing.ID != owner {
		srv.log(ctx).Debug("User uniqueness conflict", slog.String("ownerID", existing.ID.String()))

		return domainerrors.ErrUserAlreadyExists
	}

	return nil
}

func (srv *userAdminService) findUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *userAdminService) save(ctx context.Context, user *entity.User) error {
	if err := srv.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return domainerrors.ErrUserNotFound
		case errors.Is(err, repository.ErrUserAlreadyExists):
			return domainerrors.ErrUserAlreadyExists
		}

		return errors.Wrap(err, "failed to update user")
	}

	return nil
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
