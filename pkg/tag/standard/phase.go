package standard

import (
	"math"

	"github.com/arthur-debert/minimessage/pkg/colors"
	"github.com/arthur-debert/minimessage/pkg/markup"
)

// colorStops parses the arguments shared by gradient and transition:
// a list of colors optionally followed by a numeric phase. The last
// argument is taken as the phase only when at least three arguments are
// given and it parses as a number. Fewer than two colors are padded
// with white and then black. The phase is folded into [-1, 1].
func colorStops(args *markup.ArgumentQueue) (stops []colors.RGB, phase float64, ok bool) {
	values := make([]string, 0, 4)
	for _, arg := range args.Rest() {
		values = append(values, arg.Value())
	}

	n := len(values)
	if n > 2 {
		if p, isNumber := markup.NewArgument(values[n-1]).Float(); isNumber {
			if p < 0 {
				p++
			}
			if p < 0 || p > 1 {
				p = math.Abs(math.Mod(p+1, 2)) - 1
			}
			phase = p
			n--
		}
	}

	stops = make([]colors.RGB, 0, n+2)
	for _, value := range values[:n] {
		if value == "" {
			return nil, 0, false
		}
		rgb, err := colors.HexToRGB(colors.Map(value))
		if err != nil {
			return nil, 0, false
		}
		stops = append(stops, rgb)
	}
	if len(stops) < 1 {
		stops = append(stops, colors.White)
	}
	if len(stops) < 2 {
		stops = append(stops, colors.Black)
	}
	return stops, phase, true
}
