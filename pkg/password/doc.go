// Package password assembles deterministic site passwords from a master
// secret and a per-site identity.
//
// Derivation is stateless and exactly reproducible: the master bytes are
// stretched with PBKDF2 over the salt site ++ login ++ hex(counter), the
// output is consumed as a big-integer entropy stream, and the password is
// built in three phases - bulk sampling over the concatenated character pool,
// one mandatory character per active character class, and entropy-chosen
// insertion of those mandatory characters. The result always has the exact
// requested length and contains at least one character from every active
// class, with no stochastic retry.
//
// # Usage
//
//	m, err := masterkey.New("master password", algo.SHA256)
//	if err != nil { ... }
//
//	pass, err := password.Derive(m, "example.com", "me@example.com", 1, password.DefaultSettings())
//
// DeriveAuto picks the algorithm from the target length for callers that want
// longer passwords without choosing a digest themselves.
//
// # Settings
//
// Settings serialize as a stable 4-tuple (iterations, length, algorithm tag,
// charset bitmask); see MarshalJSON. Process-wide defaults can come from the
// environment via LoadConfig (PASSKIT_ITERATIONS, PASSKIT_PASSWORD_LENGTH,
// PASSKIT_CHARSETS).
//
// # Error Handling
//
// All failures are synchronous validation rejections surfaced before any
// stretching work begins: ErrPasswordTooShort, ErrPasswordTooLong,
// ErrNoCharsetSelected and algo.ErrUnsupportedAlgorithm, matched with
// errors.Is.
package password
