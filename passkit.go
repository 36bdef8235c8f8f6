package passkit

import (
	"github.com/dmitrymomot/passkit/pkg/algo"
	"github.com/dmitrymomot/passkit/pkg/fingerprint"
	"github.com/dmitrymomot/passkit/pkg/masterkey"
	"github.com/dmitrymomot/passkit/pkg/password"
	"github.com/dmitrymomot/passkit/pkg/seedcipher"
)

// Deriver holds a master password and answers every derivation request bound
// to it: site passwords, OTP seed protection, and the visual fingerprint.
// A Deriver is immutable after construction and safe for concurrent use.
type Deriver struct {
	master *masterkey.Master
}

// New builds a Deriver from the master password. The algorithm is the default
// digest for password derivation when the per-site settings do not override
// it. SHA-1 is rejected.
func New(master string, algorithm algo.Algorithm) (*Deriver, error) {
	m, err := masterkey.New(master, algorithm)
	if err != nil {
		return nil, err
	}
	return &Deriver{master: m}, nil
}

// Password derives the deterministic password for a site profile. The same
// inputs always yield the same password, so nothing needs to be stored
// beyond the non-secret settings.
func (d *Deriver) Password(site, login string, counter uint32, s password.Settings) (string, error) {
	return password.Derive(d.master, site, login, counter, s)
}

// PasswordAuto is Password with the digest picked from the requested length
// instead of the settings, growing the digest as the target length grows.
func (d *Deriver) PasswordAuto(site, login string, counter uint32, s password.Settings) (string, error) {
	return password.DeriveAuto(d.master, site, login, counter, s)
}

// SecretHOTP encrypts a clear HOTP seed for storage, or decrypts a previously
// protected one. The transform is self-inverting; see pkg/seedcipher for the
// length-based classification rules.
func (d *Deriver) SecretHOTP(site, login string, seed []byte) ([]byte, error) {
	return seedcipher.ProtectHOTP(d.master, site, login, seed)
}

// SecretTOTP is SecretHOTP under the TOTP context: seeds protected by one
// cannot be recovered by the other.
func (d *Deriver) SecretTOTP(site, login string, seed []byte) ([]byte, error) {
	return seedcipher.ProtectTOTP(d.master, site, login, seed)
}

// Fingerprint renders the visual confirmation triple for the master password
// under the given salt. Safe to display publicly.
func (d *Deriver) Fingerprint(salt []byte) fingerprint.Fingerprint {
	return fingerprint.New(d.master, salt)
}

// Zero scrubs the master password bytes. The Deriver is unusable afterwards.
func (d *Deriver) Zero() {
	d.master.Zero()
}
