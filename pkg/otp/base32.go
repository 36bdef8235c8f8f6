package otp

import (
	"encoding/base32"
	"fmt"
	"strings"
)

// secretCleaner drops the separators authenticator vendors put into secrets
// for readability.
var secretCleaner = strings.NewReplacer("-", "", " ", "")

// DecodeBase32 decodes an RFC 4648 Base32 secret as issued by websites:
// trailing '=' padding is optional, '-' and space separators are ignored and
// lowercase input is accepted. Any other character fails.
func DecodeBase32(input string) ([]byte, error) {
	encoded := strings.TrimRight(input, "=")
	encoded = secretCleaner.Replace(encoded)
	encoded = strings.ToUpper(encoded)

	decoded, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase32, err)
	}
	return decoded, nil
}

// EncodeBase32 encodes raw secret bytes without padding, the form expected in
// provisioning URIs.
func EncodeBase32(secret []byte) string {
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(secret)
}
