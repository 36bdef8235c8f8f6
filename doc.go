// Package passkit derives site passwords, one-time-password material and
// visual fingerprints deterministically from a single master password.
//
// Nothing secret is ever stored: every output is recomputed on demand from
// the master password and the public site profile (site, login, counter,
// settings), following the LessPass derivation scheme bit for bit. Two
// conforming implementations given the same inputs produce the same outputs.
//
// Key features:
//
//   - Deterministic site passwords with per-site length, charset and digest
//     settings
//   - HOTP and TOTP token generation (RFC 4226 / RFC 6238), with otpauth://
//     provisioning URIs and QR codes
//   - Keyed, self-inverting protection for OTP seeds at rest
//   - A three-element (color, icon) fingerprint to visually confirm the
//     master password without revealing it
//
// Basic usage:
//
//	d, err := passkit.New("My5ecr3!", algo.SHA256)
//	if err != nil {
//		return err
//	}
//
//	pass, err := d.Password("example.com", "me@example.com", 1, password.DefaultSettings())
//
// The root package is a thin facade over the packages under pkg/, which can
// also be used directly:
//
//   - pkg/algo - digest algorithms, PBKDF2 and HMAC helpers
//   - pkg/charset - character-class flags and alphabets
//   - pkg/entropy - salt layout and the big-integer entropy pool
//   - pkg/masterkey - master password wrapper
//   - pkg/password - settings, serialization and the password assembler
//   - pkg/otp - HOTP/TOTP engine, Base32 codec, provisioning URIs
//   - pkg/seedcipher - OTP seed protection
//   - pkg/fingerprint - visual fingerprint rendering
//
// All derivation is synchronous and CPU-bound (PBKDF2 stretching dominates);
// there is no I/O, no shared mutable state, and every entry point is safe for
// concurrent use.
package passkit
