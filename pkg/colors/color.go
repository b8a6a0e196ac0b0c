// Package colors holds the color arithmetic used by the color tags:
// hex encoding, linear RGB interpolation, the named palette and the
// HSV wheel sampled by rainbows.
package colors

import (
	"math"

	"github.com/arthur-debert/minimessage/pkg/errors"
)

// RGB is a color with one octet per channel.
type RGB [3]uint8

// Black and White are the fallback stops used when a gradient names
// fewer than two colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// HexToRGB parses "#RRGGBB" (the leading '#' is optional).
func HexToRGB(hex string) (RGB, error) {
	head := 0
	if len(hex) > 0 && hex[0] == '#' {
		head = 1
	}
	if len(hex)-head != 6 {
		return RGB{}, errors.Newf(errors.ErrInvalidColor, "%q is not a #RRGGBB color", hex)
	}
	var out RGB
	for i := range out {
		v, ok := HexToOctet(hex, head+i*2)
		if !ok {
			return RGB{}, errors.Newf(errors.ErrInvalidColor, "%q is not a #RRGGBB color", hex)
		}
		out[i] = v
	}
	return out, nil
}

// Hex encodes c as "#RRGGBB" with upper case digits.
func (c RGB) Hex() string {
	return "#" + OctetToHex(c[0]) + OctetToHex(c[1]) + OctetToHex(c[2])
}

// RGBToHex is Hex as a function.
func RGBToHex(c RGB) string {
	return c.Hex()
}

// InterpolateRGB mixes a and b by d (0 yields a, 1 yields b) and encodes the result.
func InterpolateRGB(a, b RGB, d float64) string {
	v := 1 - d
	var out RGB
	for i := range out {
		out[i] = clampOctet(roundHalfUp(float64(a[i])*v + float64(b[i])*d))
	}
	return out.Hex()
}

// roundHalfUp rounds .5 towards positive infinity, unlike math.Round.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func clampOctet(x float64) uint8 {
	if x <= 0 {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(x)
}
