package algo_test

import (
	"encoding/hex"
	"testing"

	"github.com/dmitrymomot/passkit/pkg/algo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		alg  algo.Algorithm
		size int
	}{
		{algo.SHA1, 20},
		{algo.SHA256, 32},
		{algo.SHA384, 48},
		{algo.SHA512, 64},
		{algo.SHA3_256, 32},
		{algo.SHA3_384, 48},
		{algo.SHA3_512, 64},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.alg.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.size, tt.alg.Size())
		})
	}
}

// Vectors from RFC 2202 (SHA-1), RFC 4231 (SHA-2) and the NIST SHA-3 HMAC
// examples, all for key "Jefe" and message "what do ya want for nothing?".
func TestHMAC(t *testing.T) {
	t.Parallel()
	tests := []struct {
		alg algo.Algorithm
		hex string
	}{
		{algo.SHA1, "effcdf6ae5eb2fa2d27416d5f184df9c259a7c79"},
		{algo.SHA256, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843"},
		{algo.SHA384, "af45d2e376484031617f78d2b58a6b1b9c7ef464f5a01b47e42ec3736322445e8e2240ca5e69e2c78b3239ecfab21649"},
		{algo.SHA512, "164b7a7bfcf819e2e395fbe73b56e0a387bd64222e831fd610270cd7ea2505549758bf75c05a994a6d034f65f8f0e6fdcaeab1a34d4a6b4b636e070a38bce737"},
		{algo.SHA3_256, "c7d4072e788877ae3596bbb0da73b887c9171f93095b294ae857fbe2645e1ba5"},
		{algo.SHA3_384, "f1101f8cbf9766fd6764d2ed61903f21ca9b18f57cf3e1a23ca13508a93243ce48c045dc007f26a21b3f5e0e9df4c20a"},
		{algo.SHA3_512, "5a4bfeab6166427c7a3647b747292b8384537cdb89afb3bf5665e4c5e709350b287baec921fd7ca0ee7a0c31d022a95e1fc92ba9d77df883960275beb4e62024"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.alg.String(), func(t *testing.T) {
			t.Parallel()
			want, err := hex.DecodeString(tt.hex)
			require.NoError(t, err)
			got := tt.alg.HMAC([]byte("Jefe"), []byte("what do ya want for nothing?"))
			assert.Equal(t, want, got)
			assert.Len(t, got, tt.alg.Size())
		})
	}
}

func TestHMACEmptyKey(t *testing.T) {
	t.Parallel()
	// Empty keys are padded with zeros per the HMAC definition.
	got := algo.SHA256.HMAC(nil, nil)
	assert.Equal(t,
		"b613679a0814d9ec772f95d778c35fc5ff1697c493715653c6c712144292c5ad",
		hex.EncodeToString(got))
}

func TestPBKDF2(t *testing.T) {
	t.Parallel()
	tests := []struct {
		alg        algo.Algorithm
		iterations int
		hex        string
	}{
		{algo.SHA256, 1000, "e3b1976e995b7b196fd397cf72df07c2edf39b3e41c9d2e690d55b97e61740ef"},
		{algo.SHA3_512, 1000, "e9fc2c2e12dbf52bb0ddf86805e2aaf226a114f033a7618a1edeb330cea93889f76f99593a28d1ce99e3642fdeff2f9eacaf84ab656d98a791e8c9d802898b43"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.alg.String(), func(t *testing.T) {
			t.Parallel()
			want, err := hex.DecodeString(tt.hex)
			require.NoError(t, err)
			got := tt.alg.PBKDF2([]byte("myS3cre!K3y"), []byte("Some salt"), tt.iterations)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()
	for _, alg := range []algo.Algorithm{
		algo.SHA1, algo.SHA256, algo.SHA384, algo.SHA512,
		algo.SHA3_256, algo.SHA3_384, algo.SHA3_512,
	} {
		parsed, err := algo.Parse(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, parsed)
	}

	_, err := algo.Parse("md5")
	require.ErrorIs(t, err, algo.ErrUnknownAlgorithm)
}

func TestTextMarshaling(t *testing.T) {
	t.Parallel()
	text, err := algo.SHA3_384.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "sha3-384", string(text))

	var alg algo.Algorithm
	require.NoError(t, alg.UnmarshalText([]byte("sha512")))
	assert.Equal(t, algo.SHA512, alg)

	var unset algo.Algorithm
	_, err = unset.MarshalText()
	require.ErrorIs(t, err, algo.ErrUnknownAlgorithm)
}
