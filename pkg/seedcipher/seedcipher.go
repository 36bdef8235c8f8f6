package seedcipher

import (
	"github.com/dmitrymomot/passkit/pkg/algo"
	"github.com/dmitrymomot/passkit/pkg/entropy"
	"github.com/dmitrymomot/passkit/pkg/masterkey"
)

// iterations is fixed: the keystream must be reproducible from the master and
// the site identity alone, so it is not a tunable.
const iterations = 100_000

// ProtectHOTP encrypts a clear HOTP seed, or decrypts a previously protected
// one, bound to the given site and login. The transform is self-inverting:
// applying it twice with the same inputs returns the original seed.
//
// Whether the input is treated as plaintext or ciphertext is decided purely
// by its length: 32 or 64 bytes means "already protected". A seed whose
// plaintext is exactly 32 or 64 bytes therefore cannot be encrypted; this
// ambiguity is part of the stored format and is kept for compatibility.
func ProtectHOTP(m *masterkey.Master, site, login string, seed []byte) ([]byte, error) {
	return Transform(m, []byte("hotp"), []byte(site), []byte(login), seed)
}

// ProtectTOTP is ProtectHOTP under the TOTP context prefix. Seeds protected
// as TOTP cannot be recovered as HOTP and vice versa.
func ProtectTOTP(m *masterkey.Master, site, login string, seed []byte) ([]byte, error) {
	return Transform(m, []byte("totp"), []byte(site), []byte(login), seed)
}

// Transform applies the keyed XOR transform with an explicit context prefix.
//
// The keystream is PBKDF2(master, prefix ++ site ++ login) of 32 or 64 bytes,
// picked by the input length class: 1-31 bytes encrypt with the 32-byte
// stream, exactly 32 decrypt with it; 33-63 encrypt with the 64-byte stream,
// exactly 64 decrypt with it. Anything else is rejected.
//
// Layout of the protected form: with n = len(stream)-1, the last stream byte
// XORed with the plaintext length occupies index n, and plaintext byte i is
// XORed into index (start+i) mod n, where start = stream[n] & n.
func Transform(m *masterkey.Master, prefix, site, login, seed []byte) ([]byte, error) {
	var alg algo.Algorithm
	var encrypt bool
	switch l := len(seed); {
	case l >= 1 && l < 32:
		alg, encrypt = algo.SHA256, true
	case l == 32:
		alg = algo.SHA256
	case l > 32 && l < 64:
		alg, encrypt = algo.SHA512, true
	case l == 64:
		alg = algo.SHA512
	default:
		return nil, ErrInvalidLength
	}

	salt := entropy.SaltBytes(prefix, site, login)
	stream := alg.PBKDF2(m.Bytes(), salt, iterations)

	n := len(stream) - 1
	start := int(stream[n] & byte(n))

	if encrypt {
		stream[n] ^= byte(len(seed))
		for i, b := range seed {
			stream[(start+i)%n] ^= b
		}
		return stream, nil
	}

	seedLen := int(seed[n] ^ stream[n])
	plain := make([]byte, 0, seedLen)
	for i := 0; i < seedLen; i++ {
		pos := (start + i) % n
		plain = append(plain, stream[pos]^seed[pos])
	}
	return plain, nil
}
