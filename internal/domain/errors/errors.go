package errors

import (
	"fmt"
	"net/http"

	"market/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy of the error carrying a different user-facing message.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Validation errors (400)
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"Données invalides",
		"",
	)

	ErrPhoneAlreadyRegistered = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_RESOURCE",
		"Ce numéro de téléphone est déjà enregistré",
		"",
	)

	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_RESOURCE",
		"Cet email est déjà utilisé",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_RESOURCE",
		"Utilisateur déjà existant",
		"",
	)

	ErrCategoryAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_RESOURCE",
		"Cette catégorie existe déjà",
		"",
	)

	ErrDuplicateResource = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_RESOURCE",
		"Ressource déjà existante",
		"",
	)

	ErrInvalidOTP = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OTP",
		"OTP invalide ou expiré",
		"",
	)

	ErrInvalidCategory = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CATEGORY",
		"Catégorie invalide",
		"",
	)

	ErrInvalidMerchant = NewBaseError(
		http.StatusBadRequest,
		"INVALID_MERCHANT",
		"Marchand invalide",
		"",
	)

	ErrInvalidProduct = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRODUCT",
		"Produit invalide",
		"",
	)

	ErrNotAMerchant = NewBaseError(
		http.StatusBadRequest,
		"NOT_A_MERCHANT",
		"L'utilisateur n'est pas un marchand",
		"",
	)

	ErrNotADeliveryUser = NewBaseError(
		http.StatusBadRequest,
		"NOT_A_DELIVERY_USER",
		"L'utilisateur n'est pas un livreur",
		"",
	)

	// Not found errors (404)
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Utilisateur introuvable",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Utilisateur non trouvé",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Produit introuvable",
		"",
	)

	ErrProductNotOwned = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Produit introuvable ou non autorisé",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Catégorie introuvable",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Commande introuvable",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Ressource non trouvée",
		"",
	)

	// Authentication errors (401)
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Non autorisé, token manquant",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Token invalide",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token expiré",
		"",
	)

	ErrTokenUserNotFound = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Utilisateur introuvable",
		"",
	)

	ErrAccountInactive = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_DISABLED",
		"Compte désactivé",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Identifiants invalides",
		"",
	)

	ErrAccountDisabled = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_DISABLED",
		"Votre compte a été désactivé",
		"",
	)

	ErrWrongCurrentPassword = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Mot de passe actuel incorrect",
		"",
	)

	// Authorization errors (403)
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Accès refusé",
		"",
	)

	ErrMerchantNotApproved = NewBaseError(
		http.StatusForbidden,
		"MERCHANT_NOT_APPROVED",
		"Votre compte marchand doit être approuvé pour ajouter des produits",
		"",
	)

	ErrClientOnly = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Seuls les clients peuvent ajouter des adresses",
		"",
	)

	// Server errors (500)
	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Erreur lors du traitement du mot de passe",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Échec de la transaction",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erreur serveur",
		"",
	)
)

// NewValidationError returns a VALIDATION_ERROR carrying the given message.
func NewValidationError(message string) *BaseError {
	return ErrValidation.WithMessage(message)
}

// NewCategoryInUseError reports that count products still reference a category.
func NewCategoryInUseError(count int64) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"CATEGORY_IN_USE",
		fmt.Sprintf("Impossible de supprimer: %d produit(s) utilisent cette catégorie", count),
		"",
	)
}

// NewInvalidTransitionError reports a refused order status change.
func NewInvalidTransitionError(from, to string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"INVALID_TRANSITION",
		fmt.Sprintf("Transition de statut invalide: %s → %s", from, to),
		"",
	)
}

// NewInsufficientStockError reports that a product cannot cover an order line.
func NewInsufficientStockError(productName string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_STOCK",
		"Stock insuffisant pour "+productName,
		"",
	)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying database error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing message
func (e *DatabaseExecuteError) Message() string {
	return "Erreur serveur"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
