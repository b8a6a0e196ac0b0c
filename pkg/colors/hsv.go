package colors

import "math"

// Hue samples the fully saturated, full value HSV wheel at delta in [0,1).
func Hue(delta float64) RGB {
	i := int(math.Floor(delta * 6))
	f := delta*6 - float64(i)
	q := 1 - f

	var r, g, b float64
	switch ((i % 6) + 6) % 6 {
	case 0:
		r, g, b = 1, f, 0
	case 1:
		r, g, b = q, 1, 0
	case 2:
		r, g, b = 0, 1, f
	case 3:
		r, g, b = 0, q, 1
	case 4:
		r, g, b = f, 0, 1
	case 5:
		r, g, b = 1, 0, q
	}
	return RGB{
		clampOctet(roundHalfUp(r * 255)),
		clampOctet(roundHalfUp(g * 255)),
		clampOctet(roundHalfUp(b * 255)),
	}
}
