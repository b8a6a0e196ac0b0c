package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/minimessage/pkg/errors"
)

var rgbHexPairs = []struct {
	rgb RGB
	hex string
}{
	{RGB{0x55, 0xAA, 0x33}, "#55AA33"},
	{RGB{0x01, 0x02, 0x03}, "#010203"},
	{RGB{0x00, 0x00, 0x00}, "#000000"},
	{RGB{0xFF, 0xFF, 0xFF}, "#FFFFFF"},
}

func TestHexToRGB(t *testing.T) {
	for _, tt := range rgbHexPairs {
		t.Run(tt.hex, func(t *testing.T) {
			got, err := HexToRGB(tt.hex)
			require.NoError(t, err)
			assert.Equal(t, tt.rgb, got)
		})
	}

	t.Run("without_hash_and_lower_case", func(t *testing.T) {
		got, err := HexToRGB("55aa33")
		require.NoError(t, err)
		assert.Equal(t, RGB{0x55, 0xAA, 0x33}, got)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, in := range []string{"", "#12345", "#1234567", "#GGGGGG", "red"} {
			_, err := HexToRGB(in)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidColor), in)
		}
	})
}

func TestRGBToHex(t *testing.T) {
	for _, tt := range rgbHexPairs {
		assert.Equal(t, tt.hex, RGBToHex(tt.rgb))
	}
}

func TestInterpolateRGB(t *testing.T) {
	a := RGB{0xAA, 0xBB, 0xCC}
	b := RGB{0xDD, 0xEE, 0xFF}

	assert.Equal(t, "#AABBCC", InterpolateRGB(a, b, 0))
	assert.Equal(t, "#DDEEFF", InterpolateRGB(a, b, 1))
	assert.Equal(t, "#C4D5E6", InterpolateRGB(a, b, 0.5))
}

func TestInterpolateRGBEndpoints(t *testing.T) {
	samples := []RGB{
		{0, 0, 0}, {255, 255, 255}, {1, 2, 3}, {0xAA, 0, 0}, {0, 0, 0xAA}, {17, 128, 254},
	}
	for _, a := range samples {
		for _, b := range samples {
			assert.Equal(t, a.Hex(), InterpolateRGB(a, b, 0))
			assert.Equal(t, b.Hex(), InterpolateRGB(a, b, 1))
		}
	}
}

func TestOctetHexRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		hex := OctetToHex(uint8(i))
		got, ok := HexToOctet(hex, 0)
		require.True(t, ok)
		assert.Equal(t, uint8(i), got)
	}
	_, ok := HexToOctet("F", 0)
	assert.False(t, ok)
}

func TestIsHex(t *testing.T) {
	assert.True(t, IsHex("#a1B2c3"))
	assert.False(t, IsHex("a1B2c3"))
	assert.False(t, IsHex("#a1B2c"))
	assert.False(t, IsHex("#a1B2cg"))
}

func TestMap(t *testing.T) {
	assert.Equal(t, "#aa0000", Map("dark_red"))
	assert.Equal(t, "#aaaaaa", Map("grey"))
	assert.Equal(t, "#555555", Map("DARK_GREY"))
	assert.Equal(t, "#123456", Map("#123456"))
	assert.Equal(t, "#ffffff", Map("no_such_color"))
	assert.True(t, IsNamed("gold"))
	assert.False(t, IsNamed("#ffaa00"))
	assert.Contains(t, Names(), "light_purple")
}

func TestHue(t *testing.T) {
	assert.Equal(t, "#FF0000", Hue(0).Hex())
	assert.Equal(t, "#00FF00", Hue(1.0/3).Hex())
	assert.Equal(t, "#0000FF", Hue(2.0/3).Hex())
	assert.Equal(t, "#FF0000", Hue(1).Hex())
	assert.Equal(t, "#FF8000", Hue(1.0/12).Hex())
}
