package charset

import (
	"fmt"
	"strings"
)

// Charset is a set of character-class flags encoded as a 4-bit bitmask. The
// byte encoding (1=lowercase, 2=uppercase, 4=number, 8=symbol) is the stable
// serialized form; changing the bit meanings breaks previously generated
// passwords.
type Charset uint8

const (
	Lowercase Charset = 1 << iota
	Uppercase
	Numbers
	Symbols
)

// All enables every character class.
const All = Lowercase | Uppercase | Numbers | Symbols

// Fixed, publicly known alphabets. Password derivation indexes into these, so
// their content and order are part of the output format.
const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// flagOrder is the fixed enumeration order. It determines the order in which
// mandatory characters are sampled and inserted during password assembly.
var flagOrder = [4]Charset{Lowercase, Uppercase, Numbers, Symbols}

// FromByte decodes the canonical bitmask encoding. Any value with bits outside
// the four meaningful ones fails.
func FromByte(b uint8) (Charset, error) {
	if b > uint8(All) {
		return 0, fmt.Errorf("%w: %#02x", ErrUnsupportedCharset, b)
	}
	return Charset(b), nil
}

// Byte returns the canonical bitmask encoding.
func (c Charset) Byte() uint8 { return uint8(c) }

// Has reports whether every flag in f is enabled.
func (c Charset) Has(f Charset) bool { return c&f == f }

// With returns a copy of c with the given flags enabled.
func (c Charset) With(f Charset) Charset { return c | f }

// Without returns a copy of c with the given flags disabled.
func (c Charset) Without(f Charset) Charset { return c &^ f }

// Alphabet returns the fixed alphabet of a single flag, or the empty string
// for anything that is not exactly one flag.
func (c Charset) Alphabet() string {
	switch c {
	case Lowercase:
		return lowercaseChars
	case Uppercase:
		return uppercaseChars
	case Numbers:
		return numberChars
	case Symbols:
		return symbolChars
	}
	return ""
}

// Flags returns the active flags in the fixed order lowercase, uppercase,
// numbers, symbols.
func (c Charset) Flags() []Charset {
	flags := make([]Charset, 0, 4)
	for _, f := range flagOrder {
		if c.Has(f) {
			flags = append(flags, f)
		}
	}
	return flags
}

// Pool returns the full candidate character pool: the concatenation of the
// active alphabets in the fixed flag order.
func (c Charset) Pool() string {
	var sb strings.Builder
	for _, f := range flagOrder {
		if c.Has(f) {
			sb.WriteString(f.Alphabet())
		}
	}
	return sb.String()
}

// Count returns the number of active flags (0-4).
func (c Charset) Count() int {
	n := 0
	for _, f := range flagOrder {
		if c.Has(f) {
			n++
		}
	}
	return n
}

// String returns a human-readable list of the active flags.
func (c Charset) String() string {
	if c == 0 {
		return "none"
	}
	names := make([]string, 0, 4)
	for _, f := range flagOrder {
		if !c.Has(f) {
			continue
		}
		switch f {
		case Lowercase:
			names = append(names, "lowercase")
		case Uppercase:
			names = append(names, "uppercase")
		case Numbers:
			names = append(names, "numbers")
		case Symbols:
			names = append(names, "symbols")
		}
	}
	return strings.Join(names, "+")
}
