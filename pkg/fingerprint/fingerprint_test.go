package fingerprint_test

import (
	"testing"

	"github.com/dmitrymomot/passkit/pkg/algo"
	"github.com/dmitrymomot/passkit/pkg/fingerprint"
	"github.com/dmitrymomot/passkit/pkg/masterkey"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		master string
		want   fingerprint.Fingerprint
	}{
		{
			name:   "reference master",
			master: "My5ecr3!",
			want: fingerprint.Fingerprint{
				{Color: "#FF6CB6", Icon: "fa-beer"},
				{Color: "#006CDB", Icon: "fa-hashtag"},
				{Color: "#FFB5DA", Icon: "fa-cutlery"},
			},
		},
		{
			name:   "case change flips every element",
			master: "mY5ecr3!",
			want: fingerprint.Fingerprint{
				{Color: "#24FE23", Icon: "fa-car"},
				{Color: "#DB6D00", Icon: "fa-certificate"},
				{Color: "#B66DFF", Icon: "fa-gbp"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := masterkey.New(tt.master, algo.SHA256)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fingerprint.New(m, nil))
		})
	}
}

func TestNewDeterministic(t *testing.T) {
	t.Parallel()
	m, err := masterkey.New("determinism", algo.SHA256)
	require.NoError(t, err)

	salt := []byte("some salt")
	assert.Equal(t, fingerprint.New(m, salt), fingerprint.New(m, salt))
	assert.NotEqual(t, fingerprint.New(m, salt), fingerprint.New(m, []byte("other salt")))
}

func TestFromHex(t *testing.T) {
	t.Parallel()

	got := fingerprint.FromHex("e56a207acd1e6714735487c199c6f095844b7cc8e5971d86c003a7b6f36ef51e")
	assert.Equal(t, fingerprint.Fingerprint{
		{Color: "#FFB5DA", Icon: "fa-flask"},
		{Color: "#009191", Icon: "fa-archive"},
		{Color: "#B5DAFE", Icon: "fa-beer"},
	}, got)
}

func TestFromHexShortDigest(t *testing.T) {
	t.Parallel()

	for _, digest := range []string{"", "e56a20", "e56a207acd1e6714b"} {
		assert.Equal(t, fingerprint.Fingerprint{}, fingerprint.FromHex(digest))
	}
}

func TestFromHexCaseInsensitive(t *testing.T) {
	t.Parallel()

	lower := fingerprint.FromHex("e56a207acd1e6714735487c199c6f095844b7cc8e5971d86c003a7b6f36ef51e")
	upper := fingerprint.FromHex("E56A207ACD1E6714735487C199C6F095844B7CC8E5971D86C003A7B6F36EF51E")
	assert.Equal(t, lower, upper)
}
