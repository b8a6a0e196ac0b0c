package standard

import (
	"math"

	"github.com/arthur-debert/minimessage/pkg/colors"
	"github.com/arthur-debert/minimessage/pkg/component"
	"github.com/arthur-debert/minimessage/pkg/markup"
	"github.com/arthur-debert/minimessage/pkg/tag"
)

// transitionResolver handles <transition[:color...][:phase]>: a single
// color picked at phase along the path through the stops.
type transitionResolver struct{}

func (transitionResolver) Has(name string) bool { return name == "transition" }

func (transitionResolver) Resolve(_ string, args *markup.ArgumentQueue, _ tag.Context) tag.Tag {
	stops, phase, ok := colorStops(args)
	if !ok {
		return nil
	}
	if phase < 0 {
		phase++
	}

	var color string
	if math.Abs(phase) == 1 {
		color = stops[len(stops)-1].Hex()
	} else {
		value := phase * float64(len(stops)-1)
		index := math.Floor(value)
		i := clampIndex(index, len(stops)-1)
		color = colors.InterpolateRGB(stops[i], stops[i+1], value-index)
	}
	return tag.Style(func(c *component.Component) { c.SetColor(color) })
}
