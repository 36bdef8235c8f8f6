package password

import "errors"

var (
	// ErrPasswordTooShort is returned for target lengths below 5 characters.
	ErrPasswordTooShort = errors.New("password length below minimum")

	// ErrPasswordTooLong is returned when the target length exceeds the
	// per-algorithm ceiling (35 for 256-bit digests, 52 for 384-bit, 70 for
	// 512-bit).
	ErrPasswordTooLong = errors.New("password length above algorithm maximum")

	// ErrNoCharsetSelected is returned when the settings enable no character
	// class at all.
	ErrNoCharsetSelected = errors.New("no charset selected")
)
