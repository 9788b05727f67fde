// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"market/config"
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

const defaultOTPTTL = 10 * time.Minute

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	otpGenerator service.OTPGenerator
	otpTTL       time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	OTPGenerator service.OTPGenerator
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	otpTTL := defaultOTPTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.OTPTTL > 0 {
		otpTTL = params.Config.Auth.OTPTTL
	}

	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		otpGenerator: params.OTPGenerator,
		otpTTL:       otpTTL,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register opens a new account and signs a token for it.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	phone := strings.TrimSpace(input.Phone)
	name := strings.TrimSpace(input.Name)
	email := entity.NormalizeEmail(input.Email)
	if phone == "" || input.Password == "" || name == "" || email == "" {
		return nil, domainerrors.NewValidationError("Veuillez fournir le téléphone, le mot de passe, le nom et l'email")
	}
	if err := validateCredentials(phone, email, input.Password); err != nil {
		return nil, err
	}

	// Admin accounts are never self-assigned.
	role := entity.Role(strings.TrimSpace(input.Role))
	if !role.SelfAssignable() {
		role = entity.RoleClient
	}

	if err := srv.ensurePhoneAvailable(ctx, phone, uuid.Nil); err != nil {
		return nil, err
	}
	if err := srv.ensureEmailAvailable(ctx, email, uuid.Nil); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		ID:           uuid.New(),
		Phone:        phone,
		PasswordHash: hash,
		Name:         name,
		Email:        email,
		IsActive:     true,
	}
	user.ChangeRole(role)

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("concurrent registration")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Role.String(), user.Phone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID.String()), slog.String("role", user.Role.String()))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Login verifies the phone/password pair. Unknown phones and wrong passwords
// share one error so accounts cannot be enumerated.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	phone := strings.TrimSpace(input.Phone)
	if phone == "" || input.Password == "" {
		return nil, domainerrors.NewValidationError("Veuillez fournir le téléphone et le mot de passe")
	}

	user, err := srv.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by phone")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected: wrong password", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domainerrors.ErrAccountDisabled
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Role.String(), user.Phone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// ForgotPassword stores a fresh OTP on the account and returns it.
func (srv *authService) ForgotPassword(ctx context.Context, phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", domainerrors.NewValidationError("Veuillez fournir le numéro de téléphone")
	}

	user, err := srv.findAccountByPhone(ctx, phone)
	if err != nil {
		return "", err
	}

	code, err := srv.otpGenerator.Generate()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate otp")
	}

	user.OTP = &entity.OTP{Code: code, ExpiresAt: srv.now().Add(srv.otpTTL)}
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return "", errors.Wrap(err, "failed to store otp")
	}

	srv.log(ctx).Info("Password reset OTP issued", slog.String("userID", user.ID.String()))

	return code, nil
}

// ResetPassword consumes the OTP and returns a new access token.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) (string, error) {
	phone := strings.TrimSpace(input.Phone)
	code := strings.TrimSpace(input.OTP)
	if phone == "" || code == "" || input.NewPassword == "" {
		return "", domainerrors.NewValidationError("Veuillez fournir le téléphone, le code OTP et le nouveau mot de passe")
	}

	user, err := srv.findAccountByPhone(ctx, phone)
	if err != nil {
		return "", err
	}

	if !user.OTP.Valid(code, srv.now()) {
		return "", domainerrors.ErrInvalidOTP
	}
	if err := validatePassword(input.NewPassword); err != nil {
		return "", err
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}
	user.PasswordHash = hash
	user.OTP = nil

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return "", errors.Wrap(err, "failed to reset password")
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Role.String(), user.Phone)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate token")
	}

	return token, nil
}

// GetMe returns the full profile of the current user.
func (srv *authService) GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.findUser(ctx, userID)
}

// UpdateProfile applies the self-editable fields. Shop fields are ignored for
// non-merchants and vehicle fields for non-delivery users.
func (srv *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.NewValidationError("Le nom est requis")
		}
		user.Name = name
	}
	if input.Email != nil {
		email := entity.NormalizeEmail(*input.Email)
		if email != "" && !entity.IsValidEmail(email) {
			return nil, domainerrors.NewValidationError("Email invalide")
		}
		if email != "" && email != user.Email {
			if err := srv.ensureEmailAvailable(ctx, email, user.ID); err != nil {
				return nil, err
			}
		}
		user.Email = email
	}
	if input.Avatar != nil {
		user.Avatar = strings.TrimSpace(*input.Avatar)
	}

	if user.Merchant != nil {
		applyString(&user.Merchant.ShopName, input.ShopName)
		applyString(&user.Merchant.ShopDescription, input.ShopDescription)
		applyString(&user.Merchant.ShopAddress, input.ShopAddress)
		applyString(&user.Merchant.ShopPhone, input.ShopPhone)
	}
	if user.Delivery != nil {
		if err := applyVehicle(user.Delivery, input.VehicleType, input.VehicleNumber); err != nil {
			return nil, err
		}
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, domainerrors.ErrEmailAlreadyRegistered
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return user, nil
}

// UpdatePassword returns a new access token once the password changed.
func (srv *authService) UpdatePassword(ctx context.Context, userID uuid.UUID, input usecase.UpdatePasswordInput) (string, error) {
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return "", domainerrors.NewValidationError("Veuillez fournir le mot de passe actuel et le nouveau")
	}

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return "", err
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return "", domainerrors.ErrWrongCurrentPassword
	}
	if err := validatePassword(input.NewPassword); err != nil {
		return "", err
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}
	user.PasswordHash = hash

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return "", errors.Wrap(err, "failed to update password")
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Role.String(), user.Phone)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate token")
	}

	return token, nil
}

// AddAddress stores a delivery address for a client and returns the full list.
func (srv *authService) AddAddress(ctx context.Context, userID uuid.UUID, input usecase.AddressInput) ([]entity.Address, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != entity.RoleClient {
		return nil, domainerrors.ErrClientOnly
	}

	address, err := buildAddress(user.ID, input)
	if err != nil {
		return nil, err
	}

	// AddAddress decides whether the new entry becomes the default.
	user.AddAddress(address)
	added := user.Addresses[len(user.Addresses)-1]

	var addresses []entity.Address
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		if added.IsDefault {
			if err := addressRepo.ClearDefault(ctx, user.ID); err != nil {
				return errors.Wrap(err, "failed to clear default address")
			}
		}
		if err := addressRepo.CreateAddress(ctx, &added); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		list, err := addressRepo.ListByUser(ctx, user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list addresses")
		}
		addresses = list

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add address", slog.String("userID", user.ID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute add address transaction")
	}

	return addresses, nil
}

// UpdateFCMToken stores the device push token of the user.
func (srv *authService) UpdateFCMToken(ctx context.Context, userID uuid.UUID, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainerrors.NewValidationError("Token FCM requis")
	}

	if err := srv.userRepo.UpdateFCMToken(ctx, userID, token); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update fcm token")
	}

	return nil
}

// Authenticate resolves a bearer token to an active user.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrTokenUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load token user")
	}
	if !user.IsActive {
		return nil, domainerrors.ErrAccountInactive
	}

	return user, nil
}

func (srv *authService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *authService) findAccountByPhone(ctx context.Context, phone string) (*entity.User, error) {
	user, err := srv.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by phone")
	}

	return user, nil
}

func (srv *authService) ensurePhoneAvailable(ctx context.Context, phone string, owner uuid.UUID) error {
	existing, err := srv.userRepo.FindByPhone(ctx, phone)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check phone")
	}
	if existing.ID != owner {
		return domainerrors.ErrPhoneAlreadyRegistered
	}

	return nil
}

func (srv *authService) ensureEmailAvailable(ctx context.Context, email string, owner uuid.UUID) error {
	existing, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check email")
	}
	if existing.ID != owner {
		return domainerrors.ErrEmailAlreadyRegistered
	}

	return nil
}
