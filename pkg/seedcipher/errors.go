package seedcipher

import "errors"

var (
	// ErrInvalidLength is returned for empty seeds and seeds longer than 64
	// bytes: neither fits any keystream length class.
	ErrInvalidLength = errors.New("seed length must be between 1 and 64 bytes")
)
