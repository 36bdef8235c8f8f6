package otp

import "errors"

var (
	// ErrInvalidLength is returned when the digit count is outside 6-9.
	ErrInvalidLength = errors.New("invalid number of digits")

	// ErrInvalidBase32 is returned for malformed Base32 secret text.
	ErrInvalidBase32 = errors.New("invalid base32 encoded string")

	// Provisioning URI validation errors.
	ErrMissingSecret      = errors.New("missing secret")
	ErrMissingAccountName = errors.New("missing account name")
	ErrMissingIssuer      = errors.New("missing issuer")

	// ErrQRCodeGeneration is returned when the provisioning QR image cannot
	// be rendered.
	ErrQRCodeGeneration = errors.New("failed to generate QR code")
)
