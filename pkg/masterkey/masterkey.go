package masterkey

import (
	"fmt"

	"github.com/dmitrymomot/passkit/pkg/algo"
)

// Master owns the raw master-password bytes and the default digest algorithm
// used when a derivation request does not override it. It is immutable after
// creation and safe for concurrent use.
//
// The engine does not scrub the secret when the value becomes unreachable;
// callers that want best-effort cleanup must call Zero themselves once the
// derivation session is over.
type Master struct {
	secret    []byte
	algorithm algo.Algorithm
}

// New wraps a master password. SHA-1 is rejected: it is the weakest supported
// digest and must never anchor a derivation session.
func New(password string, algorithm algo.Algorithm) (*Master, error) {
	if !algorithm.Valid() || algorithm == algo.SHA1 {
		return nil, fmt.Errorf("%w: %s cannot be used as the master algorithm", algo.ErrUnsupportedAlgorithm, algorithm)
	}
	return &Master{
		secret:    []byte(password),
		algorithm: algorithm,
	}, nil
}

// Bytes exposes the raw master-password bytes. The returned slice is the
// internal buffer, not a copy; callers must treat it as read-only.
func (m *Master) Bytes() []byte { return m.secret }

// Algorithm returns the default digest algorithm.
func (m *Master) Algorithm() algo.Algorithm { return m.algorithm }

// MAC computes HMAC(master, data) with the default algorithm. The output is
// the raw keyed digest the fingerprint rendering is built on.
func (m *Master) MAC(data []byte) []byte {
	return m.algorithm.HMAC(m.secret, data)
}

// Zero overwrites the master-password bytes. The Master is unusable
// afterwards. Best effort only: copies made by earlier derivations may still
// exist in memory.
func (m *Master) Zero() {
	for i := range m.secret {
		m.secret[i] = 0
	}
}
