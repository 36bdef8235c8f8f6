package otp

import (
	"fmt"
	"net/url"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// defaultQRSize is the image size in pixels used when none is specified.
const defaultQRSize = 256

// ProvisioningURI builds a Key-Uri-Format otpauth:// URI for enrolling the
// secret into an authenticator app:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
//
// Digits, algorithm and period come from p with the usual defaults applied;
// p.Secret is ignored in favor of the explicit secret argument.
func ProvisioningURI(secret []byte, accountName, issuer string, p Params) (string, error) {
	if len(secret) == 0 {
		return "", ErrMissingSecret
	}
	if accountName == "" {
		return "", ErrMissingAccountName
	}
	if issuer == "" {
		return "", ErrMissingIssuer
	}

	p.Secret = secret
	g, err := New(p)
	if err != nil {
		return "", err
	}

	label := fmt.Sprintf("%s:%s", url.PathEscape(issuer), url.PathEscape(accountName))

	query := url.Values{}
	query.Set("secret", EncodeBase32(secret))
	query.Set("issuer", issuer)
	query.Set("algorithm", strings.ToUpper(g.algorithm.String()))
	query.Set("digits", fmt.Sprintf("%d", g.digits))
	query.Set("period", fmt.Sprintf("%d", g.period))

	return fmt.Sprintf("otpauth://totp/%s?%s", label, query.Encode()), nil
}

// ProvisioningQR renders the otpauth URI as a PNG QR code. A size of 0 or
// less uses the default 256 pixels.
func ProvisioningQR(secret []byte, accountName, issuer string, p Params, size int) ([]byte, error) {
	uri, err := ProvisioningURI(secret, accountName, issuer, p)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = defaultQRSize
	}
	png, err := skipqrcode.Encode(uri, skipqrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQRCodeGeneration, err)
	}
	return png, nil
}
