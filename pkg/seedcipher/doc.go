// Package seedcipher protects OTP seeds at rest without a separate storage
// key: the keystream is derived from the master password and the site
// identity, so the protected bytes can sit next to non-secret credential
// metadata and still be unrecoverable without all three of master, site and
// login.
//
// The transform is a deterministic, self-inverting XOR against a PBKDF2
// keystream. There is no authentication tag and no randomness: the same seed
// protected twice yields the same bytes, and tampering is not detected - a
// wrong master, site or login simply yields different garbage. The protected
// form is an opaque 32- or 64-byte buffer whose own last byte encodes the
// plaintext length.
//
// Plaintext and ciphertext are told apart purely by length, which makes
// 32- and 64-byte plaintext seeds impossible to encrypt (they are taken for
// ciphertext). This ambiguity is inherent to the stored format and preserved
// deliberately; changing it would break every previously protected seed.
package seedcipher
