package password

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrymomot/passkit/pkg/algo"
	"github.com/dmitrymomot/passkit/pkg/charset"
)

const (
	// DefaultIterations is the PBKDF2 iteration count used when none is set.
	DefaultIterations uint32 = 100_000

	// DefaultLength is the password length used by DefaultSettings.
	DefaultLength uint8 = 16

	// MinLength is the shortest password the assembler will produce.
	MinLength uint8 = 5
)

// Settings describes one password derivation request. The zero values of
// Iterations and Algorithm mean "use the default": DefaultIterations and the
// master's own algorithm respectively.
type Settings struct {
	Iterations uint32
	Length     uint8
	Charsets   charset.Charset
	Algorithm  algo.Algorithm
}

// DefaultSettings returns the stock configuration: 16 characters drawn from
// all four character classes, default iterations, master's algorithm.
func DefaultSettings() Settings {
	return Settings{
		Length:   DefaultLength,
		Charsets: charset.All,
	}
}

// EffectiveIterations resolves the iteration count, falling back to
// DefaultIterations.
func (s Settings) EffectiveIterations() uint32 {
	if s.Iterations == 0 {
		return DefaultIterations
	}
	return s.Iterations
}

// settingsWire is the stable serialized layout: a 4-tuple of optional
// iterations, length, optional algorithm tag and the charset bitmask.
// Changing field order or bit meanings breaks compatibility with previously
// generated passwords.
type settingsWire [4]json.RawMessage

// MarshalJSON encodes the settings as the canonical 4-tuple, e.g.
// [null,16,"sha256",15]. Unset iterations and algorithm serialize as null.
func (s Settings) MarshalJSON() ([]byte, error) {
	var iterations any
	if s.Iterations != 0 {
		iterations = s.Iterations
	}
	var algorithm any
	if s.Algorithm != 0 {
		if !s.Algorithm.Valid() {
			return nil, fmt.Errorf("%w: %d", algo.ErrUnknownAlgorithm, uint8(s.Algorithm))
		}
		algorithm = s.Algorithm.String()
	}
	return json.Marshal([4]any{iterations, s.Length, algorithm, s.Charsets.Byte()})
}

// UnmarshalJSON decodes the canonical 4-tuple, validating the algorithm tag
// and the charset bitmask.
func (s *Settings) UnmarshalJSON(data []byte) error {
	var wire settingsWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("invalid settings layout: %w", err)
	}

	var out Settings

	if string(wire[0]) != "null" {
		if err := json.Unmarshal(wire[0], &out.Iterations); err != nil {
			return fmt.Errorf("invalid iterations: %w", err)
		}
	}
	if err := json.Unmarshal(wire[1], &out.Length); err != nil {
		return fmt.Errorf("invalid length: %w", err)
	}
	if string(wire[2]) != "null" {
		var tag string
		if err := json.Unmarshal(wire[2], &tag); err != nil {
			return fmt.Errorf("invalid algorithm tag: %w", err)
		}
		alg, err := algo.Parse(tag)
		if err != nil {
			return err
		}
		out.Algorithm = alg
	}
	var mask uint8
	if err := json.Unmarshal(wire[3], &mask); err != nil {
		return fmt.Errorf("invalid charset mask: %w", err)
	}
	set, err := charset.FromByte(mask)
	if err != nil {
		return err
	}
	out.Charsets = set

	*s = out
	return nil
}
