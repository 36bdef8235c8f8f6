// Package algo selects one of seven keyed-hash algorithms and exposes the two
// primitives every other derivation package is built on: PBKDF2 stretching and
// single-pass HMAC.
//
// Supported algorithms are SHA-1, SHA-256, SHA-384, SHA-512 and the SHA-3
// variants of the last three. The output length of both primitives always
// equals the digest size (20/32/48/64 bytes), so callers can treat results as
// opaque byte strings without any algorithm-specific knowledge leaking out.
//
// Both primitives are total functions over byte slices of any length; keys of
// zero length are valid per the HMAC key-padding rules. Neither returns an
// error.
//
// # Usage
//
//	seed := algo.SHA256.PBKDF2(masterBytes, salt, 100_000)
//	mac := algo.SHA512.HMAC(secret, message)
//
// The canonical lowercase tags ("sha256", "sha3-512", ...) round-trip through
// String/Parse and the encoding.TextMarshaler interfaces, and are the stable
// serialized form used by derivation settings.
package algo
