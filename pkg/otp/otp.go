package otp

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/dmitrymomot/passkit/pkg/algo"
)

const (
	// DefaultDigits is the standard 6-digit code length.
	DefaultDigits = 6
	// DefaultPeriod is the RFC 6238 standard 30-second validity window.
	DefaultPeriod int64 = 30

	minDigits = 6
	maxDigits = 9
)

// Params configures a token generator. Zero values take the RFC defaults:
// SHA-1, 6 digits, 30-second period, epoch offset 0.
type Params struct {
	Secret      []byte         // shared secret, raw bytes (see DecodeBase32)
	Digits      int            // code length, 6-9
	Algorithm   algo.Algorithm // SHA1, SHA256 or SHA512 only
	Period      int64          // TOTP window in seconds, minimum 1
	EpochOffset int64          // TOTP epoch shift in seconds
}

// Generator computes HOTP (RFC 4226) and TOTP (RFC 6238) codes. It is
// stateless and safe for concurrent use; counter management is the caller's
// concern.
type Generator struct {
	secret    []byte
	algorithm algo.Algorithm
	digits    int
	period    int64
	epoch     int64
}

// New validates the parameters and builds a generator. Only SHA-1, SHA-256
// and SHA-512 are permitted for OTP; the digit count must be 6 to 9.
func New(p Params) (*Generator, error) {
	alg := p.Algorithm
	if alg == 0 {
		alg = algo.SHA1
	}
	switch alg {
	case algo.SHA1, algo.SHA256, algo.SHA512:
	default:
		return nil, fmt.Errorf("%w: %s cannot generate OTP tokens", algo.ErrUnsupportedAlgorithm, alg)
	}

	digits := p.Digits
	if digits == 0 {
		digits = DefaultDigits
	}
	if digits < minDigits || digits > maxDigits {
		return nil, fmt.Errorf("%w: digits must be %d-%d, got %d", ErrInvalidLength, minDigits, maxDigits, digits)
	}

	period := p.Period
	if period == 0 {
		period = DefaultPeriod
	}
	if period < 1 {
		period = 1
	}

	return &Generator{
		secret:    p.Secret,
		algorithm: alg,
		digits:    digits,
		period:    period,
		epoch:     p.EpochOffset,
	}, nil
}

// HOTP computes the RFC 4226 code for the given counter value: dynamic
// truncation of HMAC(secret, big-endian counter) reduced modulo 10^digits,
// left-padded with zeros.
func (g *Generator) HOTP(counter uint64) string {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)
	digest := g.algorithm.HMAC(g.secret, msg[:])

	offset := digest[len(digest)-1] & 0x0F
	code := uint64(digest[offset]&0x7F)<<24 |
		uint64(digest[offset+1])<<16 |
		uint64(digest[offset+2])<<8 |
		uint64(digest[offset+3])
	code %= uint64(math.Pow10(g.digits))

	return fmt.Sprintf("%0*d", g.digits, code)
}

// TOTPAt computes the RFC 6238 code for the window containing the given Unix
// timestamp: HOTP with counter = elapsed whole periods since the epoch offset.
func (g *Generator) TOTPAt(timestamp int64) string {
	return g.HOTP(uint64((timestamp - g.epoch) / g.period))
}

// TOTP computes the code for the current wall-clock window.
func (g *Generator) TOTP() string {
	return g.TOTPAt(time.Now().Unix())
}

// Digits returns the configured code length.
func (g *Generator) Digits() int { return g.digits }

// Period returns the configured TOTP window in seconds.
func (g *Generator) Period() int64 { return g.period }
