package password

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/passkit/pkg/algo"
	"github.com/dmitrymomot/passkit/pkg/entropy"
	"github.com/dmitrymomot/passkit/pkg/masterkey"
)

// maxLength returns the per-algorithm password length ceiling. The ceiling
// exists because each consumed index shrinks the entropy pool; a digest-size
// pool supports only so many divisions before exhaustion.
func maxLength(alg algo.Algorithm) uint8 {
	switch alg.Size() {
	case 32:
		return 35
	case 48:
		return 52
	case 64:
		return 70
	}
	return 0
}

// Derive builds the deterministic password for one (site, login, counter)
// identity. The output is bit-for-bit reproducible: same inputs, same
// password, on every conforming implementation.
//
// Validation runs before any stretching work, in a fixed order: algorithm,
// minimum length, per-algorithm maximum length, charset selection.
func Derive(m *masterkey.Master, site, login string, counter uint32, s Settings) (string, error) {
	alg := s.Algorithm
	if alg == 0 {
		alg = m.Algorithm()
	}
	if !alg.Valid() || alg == algo.SHA1 {
		return "", fmt.Errorf("%w: %s cannot derive passwords", algo.ErrUnsupportedAlgorithm, alg)
	}
	if s.Length < MinLength {
		return "", fmt.Errorf("%w: minimum %d, requested %d", ErrPasswordTooShort, MinLength, s.Length)
	}
	if max := maxLength(alg); s.Length > max {
		return "", fmt.Errorf("%w: maximum %d for %s, requested %d", ErrPasswordTooLong, max, alg, s.Length)
	}
	count := s.Charsets.Count()
	if count == 0 {
		return "", ErrNoCharsetSelected
	}

	salt := entropy.Salt(site, login, counter)
	pool := entropy.New(alg.PBKDF2(m.Bytes(), salt, int(s.EffectiveIterations())))

	chars := s.Charsets.Pool()
	buf := make([]byte, 0, int(s.Length))

	// Bulk phase: all but one character per active flag come straight from
	// the concatenated pool.
	for i := 0; i < int(s.Length)-count; i++ {
		buf = append(buf, chars[pool.Consume(len(chars))])
	}

	// One mandatory character per active flag, sampled in the fixed flag
	// order so the consumption sequence stays reproducible.
	mandatory := make([]byte, 0, count)
	for _, f := range s.Charsets.Flags() {
		alphabet := f.Alphabet()
		mandatory = append(mandatory, alphabet[pool.Consume(len(alphabet))])
	}

	// Interleave the mandatory characters at entropy-chosen positions instead
	// of appending them, still fully deterministic. The divisor is the buffer
	// length before each insertion; this matches the reference scheme and
	// must not change.
	for _, ch := range mandatory {
		pos := pool.Consume(len(buf))
		buf = slices.Insert(buf, pos, ch)
	}

	return string(buf), nil
}

// DeriveAuto derives a password with the algorithm chosen from the target
// length: SHA-256 up to 35 characters, SHA-384 up to 52, SHA-512 beyond.
// A convenience policy on top of Derive, not a separate scheme.
func DeriveAuto(m *masterkey.Master, site, login string, counter uint32, s Settings) (string, error) {
	switch {
	case s.Length <= 35:
		s.Algorithm = algo.SHA256
	case s.Length <= 52:
		s.Algorithm = algo.SHA384
	default:
		s.Algorithm = algo.SHA512
	}
	return Derive(m, site, login, counter, s)
}
