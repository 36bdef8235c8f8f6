package charset

import "errors"

var (
	// ErrUnsupportedCharset is returned when a serialized charset byte has
	// bits set outside the four meaningful ones.
	ErrUnsupportedCharset = errors.New("unsupported charset configuration")
)
