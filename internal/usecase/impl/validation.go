package impl

import (
	"strings"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/usecase"

	"github.com/google/uuid"
)

func validatePassword(password string) error {
	if len(password) < entity.MinPasswordLength {
		return domainerrors.NewValidationError("Le mot de passe doit contenir au moins 6 caractères")
	}

	return nil
}

// validateCredentials checks the shape of phone, email and password.
// An empty email is accepted since it is optional on most paths.
func validateCredentials(phone, email, password string) error {
	if !entity.IsValidPhone(phone) {
		return domainerrors.NewValidationError("Numéro de téléphone invalide")
	}
	if email != "" && !entity.IsValidEmail(email) {
		return domainerrors.NewValidationError("Email invalide")
	}

	return validatePassword(password)
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func applyVehicle(profile *entity.DeliveryProfile, vehicleType, vehicleNumber *string) error {
	if vehicleType != nil {
		vt := entity.VehicleType(strings.TrimSpace(*vehicleType))
		if vt != "" && !vt.IsValid() {
			return domainerrors.NewValidationError("Type de véhicule invalide")
		}
		profile.VehicleType = vt
	}
	applyString(&profile.VehicleNumber, vehicleNumber)

	return nil
}

func buildAddress(userID uuid.UUID, input usecase.AddressInput) (entity.Address, error) {
	fullAddress := strings.TrimSpace(input.FullAddress)
	city := strings.TrimSpace(input.City)
	if fullAddress == "" || city == "" {
		return entity.Address{}, domainerrors.NewValidationError("L'adresse complète et la ville sont requises")
	}

	label := strings.TrimSpace(input.Label)
	if label == "" {
		label = entity.DefaultAddressLabel
	}

	return entity.Address{
		ID:          uuid.New(),
		UserID:      userID,
		Label:       label,
		FullAddress: fullAddress,
		City:        city,
		Quarter:     strings.TrimSpace(input.Quarter),
		Details:     strings.TrimSpace(input.Details),
		IsDefault:   input.IsDefault,
	}, nil
}
