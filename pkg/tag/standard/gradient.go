package standard

import (
	"math"

	"github.com/arthur-debert/minimessage/pkg/colors"
	"github.com/arthur-debert/minimessage/pkg/component"
	"github.com/arthur-debert/minimessage/pkg/markup"
	"github.com/arthur-debert/minimessage/pkg/tag"
)

// gradientResolver handles <gradient[:color...][:phase]>.
type gradientResolver struct{}

func (gradientResolver) Has(name string) bool { return name == "gradient" }

func (gradientResolver) Resolve(_ string, args *markup.ArgumentQueue, _ tag.Context) tag.Tag {
	stops, phase, ok := colorStops(args)
	if !ok {
		return nil
	}
	return tag.Style(func(c *component.Component) {
		c.SetColorByPlacement(gradient(stops, phase))
	})
}

// gradient samples the piecewise linear path through stops. A
// fractional phase shifts every sample and wraps it back into [0, 1].
func gradient(stops []colors.RGB, phase float64) component.PlacementFunc {
	segments := float64(len(stops) - 1)
	return func(delta float64) string {
		if math.Trunc(phase) != phase {
			delta += phase
			if phase >= 0 {
				if delta > 1 {
					delta = math.Mod(delta, 1)
				}
			} else if delta < 0 {
				delta++
			}
		}
		index := delta * segments
		lo := math.Floor(index)
		hi := math.Ceil(index)
		return colors.InterpolateRGB(stops[clampIndex(lo, len(stops))], stops[clampIndex(hi, len(stops))], index-lo)
	}
}

func clampIndex(i float64, n int) int {
	switch {
	case i < 0:
		return 0
	case int(i) >= n:
		return n - 1
	}
	return int(i)
}
