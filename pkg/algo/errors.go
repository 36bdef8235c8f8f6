package algo

import "errors"

var (
	// ErrUnsupportedAlgorithm is returned when an algorithm outside the
	// permitted set is used for a given operation, e.g. SHA-1 for password
	// derivation or a SHA-3 variant for OTP tokens.
	ErrUnsupportedAlgorithm = errors.New("algorithm is not supported for this operation")

	// ErrUnknownAlgorithm is returned when an algorithm tag cannot be parsed.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)
