package auth

import (
	"crypto/rand"
	"math/big"
	"strconv"

	"market/internal/domain/service"
	"market/internal/errors"
)

const (
	otpMin   = 100000
	otpRange = 900000
)

type randomOTPGenerator struct{}

// NewOTPGenerator returns a generator backed by crypto/rand.
func NewOTPGenerator() service.OTPGenerator {
	return &randomOTPGenerator{}
}

// Generate returns a uniformly distributed 6-digit code.
func (g *randomOTPGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpRange))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate otp")
	}

	return strconv.FormatInt(n.Int64()+otpMin, 10), nil
}
