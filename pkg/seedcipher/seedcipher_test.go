package seedcipher_test

import (
	"testing"

	"github.com/dmitrymomot/passkit/pkg/algo"
	"github.com/dmitrymomot/passkit/pkg/masterkey"
	"github.com/dmitrymomot/passkit/pkg/seedcipher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMaster(t *testing.T, secret string) *masterkey.Master {
	t.Helper()
	m, err := masterkey.New(secret, algo.SHA256)
	require.NoError(t, err)
	return m
}

// Known-answer vectors from the reference scheme: the protected form is fully
// deterministic for a given (master, site, login, seed).
func TestProtectKnownAnswers(t *testing.T) {
	t.Parallel()

	t.Run("totp", func(t *testing.T) {
		t.Parallel()
		m := newMaster(t, "mY5ecr3!")
		got, err := seedcipher.ProtectTOTP(m, "github.com", "test@example.com", []byte("gfE%Tgd56^&!gd$"))
		require.NoError(t, err)
		assert.Equal(t, []byte{
			255, 37, 183, 103, 211, 97, 25, 139, 84, 212, 123,
			123, 188, 58, 183, 111, 25, 79, 163, 101, 255, 155,
			174, 184, 12, 99, 200, 15, 246, 37, 204, 108,
		}, got)
	})

	t.Run("hotp", func(t *testing.T) {
		t.Parallel()
		m := newMaster(t, "My5ecr3!")
		got, err := seedcipher.ProtectHOTP(m, "example.com", "test@example.com", []byte("Hello World!"))
		require.NoError(t, err)
		assert.Equal(t, []byte{
			101, 22, 162, 221, 2, 88, 94, 95, 176, 106, 204,
			94, 79, 92, 141, 190, 131, 49, 214, 61, 222, 201,
			120, 5, 188, 218, 35, 46, 210, 196, 21, 184,
		}, got)
	})

	t.Run("totp separate context", func(t *testing.T) {
		t.Parallel()
		m := newMaster(t, "My5ecr3!")
		got, err := seedcipher.ProtectTOTP(m, "example.com", "test@example.com", []byte("Hello World!"))
		require.NoError(t, err)
		assert.Equal(t, []byte{
			245, 248, 155, 215, 234, 198, 151, 5, 95, 75, 83,
			152, 159, 242, 191, 223, 59, 194, 6, 233, 107, 52,
			179, 27, 217, 250, 189, 86, 115, 118, 22, 138,
		}, got)
	})
}

func TestRoundTripShortSeed(t *testing.T) {
	t.Parallel()
	m := newMaster(t, "123")
	seed := []byte{
		0x30, 0x41, 0x71, 0x67, 0x2B, 0x59, 0x4F, 0x5A, 0x35, 0x31,
		0xA7, 0x53, 0x54, 0x4B, 0x74, 0x35, 0x4E, 0x6D, 0x36, 0x66,
	}

	protected, err := seedcipher.ProtectTOTP(m, "example.com", "test@example.com", seed)
	require.NoError(t, err)
	assert.Len(t, protected, 32)

	recovered, err := seedcipher.ProtectTOTP(m, "example.com", "test@example.com", protected)
	require.NoError(t, err)
	assert.Equal(t, seed, recovered)
}

func TestRoundTripLongSeed(t *testing.T) {
	t.Parallel()
	m := newMaster(t, "DEADBEEF")
	// Longer than 31 bytes, so the 64-byte keystream is used.
	seed := []byte("12345678901234567890123456789012345678901234567890")

	protected, err := seedcipher.ProtectHOTP(m, "example.com", "test@example.com", seed)
	require.NoError(t, err)
	assert.Len(t, protected, 64)

	recovered, err := seedcipher.ProtectHOTP(m, "example.com", "test@example.com", protected)
	require.NoError(t, err)
	assert.Equal(t, seed, recovered)
}

func TestRoundTripAllEncryptableLengths(t *testing.T) {
	t.Parallel()
	m := newMaster(t, "length sweep")
	for _, length := range []int{1, 2, 15, 31, 33, 47, 63} {
		seed := make([]byte, length)
		for i := range seed {
			seed[i] = byte(i * 7)
		}
		protected, err := seedcipher.ProtectHOTP(m, "site", "login", seed)
		require.NoError(t, err, "length %d", length)

		recovered, err := seedcipher.ProtectHOTP(m, "site", "login", protected)
		require.NoError(t, err, "length %d", length)
		assert.Equal(t, seed, recovered, "length %d", length)
	}
}

func TestWrongIdentityDoesNotRecover(t *testing.T) {
	t.Parallel()
	m := newMaster(t, "My5ecr3!")
	seed := []byte("gfE%Tgd56^&!gd$")

	protected, err := seedcipher.ProtectTOTP(m, "github.com", "test@example.com", seed)
	require.NoError(t, err)

	wrongSite, err := seedcipher.ProtectTOTP(m, "facebook.com", "test@example.com", protected)
	require.NoError(t, err)
	assert.NotEqual(t, seed, wrongSite)

	other := newMaster(t, "pass")
	wrongMaster, err := seedcipher.ProtectTOTP(other, "github.com", "test@example.com", protected)
	require.NoError(t, err)
	assert.NotEqual(t, seed, wrongMaster)

	wrongLogin, err := seedcipher.ProtectTOTP(m, "github.com", "other@example.com", protected)
	require.NoError(t, err)
	assert.NotEqual(t, seed, wrongLogin)

	wrongContext, err := seedcipher.ProtectHOTP(m, "github.com", "test@example.com", protected)
	require.NoError(t, err)
	assert.NotEqual(t, seed, wrongContext)
}

func TestInvalidSeedLength(t *testing.T) {
	t.Parallel()
	m := newMaster(t, "DEADBEEF")

	_, err := seedcipher.ProtectHOTP(m, "example.com", "test@example.com", nil)
	require.ErrorIs(t, err, seedcipher.ErrInvalidLength)

	tooLong := make([]byte, 65)
	_, err = seedcipher.ProtectHOTP(m, "example.com", "test@example.com", tooLong)
	require.ErrorIs(t, err, seedcipher.ErrInvalidLength)
}
