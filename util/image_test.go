package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

func TestEncodeImage_SizeCeiling(t *testing.T) {
	oversized := make([]byte, MaxImageBytes+1)
	_, err := EncodeImage(oversized)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncoding)

	atLimit := make([]byte, MaxImageBytes)
	_, err = EncodeImage(atLimit)
	assert.NoError(t, err)
}

func TestEncodeImage_EmptyInput(t *testing.T) {
	_, err := EncodeImage(nil)
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestEncodeImage_SniffsMime(t *testing.T) {
	encoded, err := EncodeImage(pngHeader)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "data:image/png;base64,"))
}

func TestDecodeImage_DefaultsToJpeg(t *testing.T) {
	url := DecodeImage([]byte("definitely not an image"))
	assert.True(t, strings.HasPrefix(url, "data:image/jpeg;base64,"))
}

func TestDecodeImage_Empty(t *testing.T) {
	assert.Equal(t, "", DecodeImage(nil))
}

func TestPickFallback_Deterministic(t *testing.T) {
	pool := []string{"a.jpg", "b.jpg", "c.jpg"}

	first := PickFallback("Cardiology", pool)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, PickFallback("Cardiology", pool))
	}
}

func TestPickFallback_IndexesByByteSum(t *testing.T) {
	pool := []string{"a.jpg", "b.jpg", "c.jpg"}

	// "ab" sums to 195, 195 % 3 == 0
	assert.Equal(t, "a.jpg", PickFallback("ab", pool))
	// "ac" sums to 196, 196 % 3 == 1
	assert.Equal(t, "b.jpg", PickFallback("ac", pool))
}

func TestPickFallback_EmptyPool(t *testing.T) {
	assert.Equal(t, "", PickFallback("anything", nil))
}
