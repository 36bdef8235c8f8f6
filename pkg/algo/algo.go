package algo

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/sha3"
)

// Algorithm selects the keyed-hash function used for PBKDF2 stretching and HMAC.
// The zero value means "unset" so that callers can fall back to a default.
type Algorithm uint8

const (
	// SHA1 is kept for OTP compatibility only. Password and seed derivation
	// reject it.
	SHA1 Algorithm = iota + 1
	SHA256
	SHA384
	SHA512
	SHA3_256
	SHA3_384
	SHA3_512
)

// Size returns the digest size in bytes. PBKDF2 and HMAC outputs are always
// exactly this long.
func (a Algorithm) Size() int {
	switch a {
	case SHA1:
		return 20
	case SHA256, SHA3_256:
		return 32
	case SHA384, SHA3_384:
		return 48
	case SHA512, SHA3_512:
		return 64
	}
	return 0
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	return a >= SHA1 && a <= SHA3_512
}

// New returns the underlying hash constructor.
func (a Algorithm) New() func() hash.Hash {
	switch a {
	case SHA1:
		return sha1.New
	case SHA256:
		return sha256.New
	case SHA384:
		return sha512.New384
	case SHA512:
		return sha512.New
	case SHA3_256:
		return sha3.New256
	case SHA3_384:
		return sha3.New384
	case SHA3_512:
		return sha3.New512
	}
	return nil
}

// PBKDF2 stretches key with the given salt and iteration count, producing
// Size() bytes of output. It is a total function: any key and salt, including
// empty ones, are valid.
func (a Algorithm) PBKDF2(key, salt []byte, iterations int) []byte {
	return pbkdf2.Key(key, salt, iterations, a.Size(), a.New())
}

// HMAC computes a single-pass keyed hash of data, producing Size() bytes.
// Zero-length keys are valid per the HMAC key-padding rules.
func (a Algorithm) HMAC(key, data []byte) []byte {
	mac := hmac.New(a.New(), key)
	mac.Write(data)
	return mac.Sum(nil)
}

// String returns the canonical lowercase tag, e.g. "sha256" or "sha3-512".
func (a Algorithm) String() string {
	switch a {
	case SHA1:
		return "sha1"
	case SHA256:
		return "sha256"
	case SHA384:
		return "sha384"
	case SHA512:
		return "sha512"
	case SHA3_256:
		return "sha3-256"
	case SHA3_384:
		return "sha3-384"
	case SHA3_512:
		return "sha3-512"
	}
	return "unknown"
}

// Parse converts a canonical tag back into an Algorithm.
func Parse(tag string) (Algorithm, error) {
	switch tag {
	case "sha1":
		return SHA1, nil
	case "sha256":
		return SHA256, nil
	case "sha384":
		return SHA384, nil
	case "sha512":
		return SHA512, nil
	case "sha3-256":
		return SHA3_256, nil
	case "sha3-384":
		return SHA3_384, nil
	case "sha3-512":
		return SHA3_512, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, tag)
}

// MarshalText implements encoding.TextMarshaler using the canonical tag.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
