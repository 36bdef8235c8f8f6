package fingerprint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/passkit/pkg/masterkey"
)

// ColorIcon is one visual element of a fingerprint: a hex color and a
// font-awesome icon name.
type ColorIcon struct {
	Color string
	Icon  string
}

// Fingerprint is the three (color, icon) pairs displayed to the user to
// confirm a master password without revealing it.
type Fingerprint [3]ColorIcon

// New renders the fingerprint of the master password under the given salt:
// HMAC(master, salt) as uppercase hex, split into three 6-character chunks,
// each reduced modulo the color and icon tables.
func New(m *masterkey.Master, salt []byte) Fingerprint {
	digest := m.MAC(salt)

	// Per-byte formatting without zero padding, so a byte below 0x10
	// contributes a single hex character. This shifts the chunk boundaries
	// relative to a standard hex dump and is part of the rendering format.
	var sb strings.Builder
	sb.Grow(len(digest) * 2)
	for _, b := range digest {
		fmt.Fprintf(&sb, "%X", b)
	}
	return FromHex(sb.String())
}

// FromHex renders a fingerprint from an already hex-encoded digest; case does
// not matter. Digests shorter than 18 characters cannot fill three chunks and
// yield the zero Fingerprint.
func FromHex(digest string) Fingerprint {
	if len(digest) < 18 {
		return Fingerprint{}
	}
	return Fingerprint{
		elementFor(digest[0:6]),
		elementFor(digest[6:12]),
		elementFor(digest[12:18]),
	}
}

func elementFor(chunk string) ColorIcon {
	// Six hex characters always parse and fit in 24 bits.
	v, _ := strconv.ParseUint(chunk, 16, 64)
	return ColorIcon{
		Color: colors[v%uint64(len(colors))],
		Icon:  icons[v%uint64(len(icons))],
	}
}
