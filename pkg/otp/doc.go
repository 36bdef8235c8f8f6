// Package otp computes HMAC-based and time-based one-time passwords.
//
// HOTP follows RFC 4226 (dynamic truncation of an HMAC over the big-endian
// counter) and TOTP follows RFC 6238 (HOTP with counter = elapsed whole
// periods since an epoch offset). Token computation is stateless; callers own
// counter persistence and clock reading. Only SHA-1 (the default), SHA-256
// and SHA-512 are valid OTP algorithms, with 6 to 9 digits.
//
// # Usage
//
//	secret, err := otp.DecodeBase32("JBSW Y3DP EB3W 64TM MQQQ")
//	if err != nil { ... }
//
//	g, err := otp.New(otp.Params{Secret: secret})
//	if err != nil { ... }
//
//	code := g.TOTP()         // current wall-clock window
//	code = g.TOTPAt(ts)      // specific timestamp
//	code = g.HOTP(counter)   // counter-based
//
// For enrollment, ProvisioningURI builds the otpauth:// URI understood by
// authenticator apps and ProvisioningQR renders it as a PNG QR code.
//
// # Error Handling
//
// Construction fails with ErrInvalidLength for digit counts outside 6-9 and
// algo.ErrUnsupportedAlgorithm for any digest other than SHA-1/SHA-256/
// SHA-512; DecodeBase32 fails with ErrInvalidBase32. Match with errors.Is.
//
// # See Also
//
//   - RFC 4226 - HMAC-Based One-Time Password (HOTP) Algorithm
//   - RFC 6238 - Time-Based One-Time Password (TOTP) Algorithm
package otp
