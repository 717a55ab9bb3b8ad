package hexkeypad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	hk "github.com/sultanrosh/hexkeypad"
)

func TestKeyRowCol(t *testing.T) {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			k := hk.KeyAt(row, col)
			assert.Equal(t, hk.Key(row*4+col), k)
			assert.Equal(t, row, k.Row())
			assert.Equal(t, col, k.Col())
		}
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "0", hk.Key0.String())
	assert.Equal(t, "9", hk.Key9.String())
	assert.Equal(t, "A", hk.KeyA.String())
	assert.Equal(t, "F", hk.KeyF.String())
	assert.Equal(t, "?", hk.Key(16).String())
}

func TestParseKey(t *testing.T) {
	for k := hk.Key0; k <= hk.KeyF; k++ {
		got, err := hk.ParseKey(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := hk.ParseKey("b")
	require.NoError(t, err)
	assert.Equal(t, hk.KeyB, got)

	for _, s := range []string{"", "10", "G", "g", " 5"} {
		_, err := hk.ParseKey(s)
		assert.Error(t, err, "legend %q", s)
	}
}
