package entropy

import (
	"math/big"
	"strconv"
)

// Salt builds the derivation salt for one (site, login, counter) identity:
// the concatenation of the site bytes, the login bytes and the counter in
// lowercase hexadecimal with no leading zeros ("5a" for 90, "1" for 1). The
// layout is part of the derivation format.
func Salt(site, login string, counter uint32) []byte {
	return SaltBytes([]byte(site), []byte(login), []byte(strconv.FormatUint(uint64(counter), 16)))
}

// SaltBytes concatenates raw salt components without any transformation.
func SaltBytes(site, login, counter []byte) []byte {
	salt := make([]byte, 0, len(site)+len(login)+len(counter))
	salt = append(salt, site...)
	salt = append(salt, login...)
	salt = append(salt, counter...)
	return salt
}

// Pool is a derived key reinterpreted as an unbounded-precision non-negative
// integer, consumed destructively to sample uniformly distributed indices.
// A Pool belongs to exactly one derivation; it must not be reused across
// independent derivations and is not safe for concurrent use.
type Pool struct {
	n big.Int
}

// New wraps seed, interpreted as a big-endian unsigned integer.
func New(seed []byte) *Pool {
	p := &Pool{}
	p.n.SetBytes(seed)
	return p
}

// Consume divides the remaining entropy by n: the remainder becomes the
// sampled index in [0, n) and the quotient replaces the pool's value for the
// next call. The entropy magnitude shrinks monotonically; the PBKDF2 output
// size keeps it large enough for every index a password derivation needs.
// n must be positive.
func (p *Pool) Consume(n int) int {
	var quot, rem big.Int
	quot.QuoRem(&p.n, big.NewInt(int64(n)), &rem)
	p.n.Set(&quot)
	return int(rem.Int64())
}

// String returns the remaining entropy as a lowercase hexadecimal string.
func (p *Pool) String() string {
	return p.n.Text(16)
}
