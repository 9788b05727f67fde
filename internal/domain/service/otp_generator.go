package service

// OTPGenerator produces one-time numeric codes for password resets.
type OTPGenerator interface {
	// Generate returns a 6-digit code in [100000, 999999].
	Generate() (string, error)
}
