package standard

import (
	"math"
	"strings"

	"github.com/arthur-debert/minimessage/pkg/colors"
	"github.com/arthur-debert/minimessage/pkg/component"
	"github.com/arthur-debert/minimessage/pkg/markup"
	"github.com/arthur-debert/minimessage/pkg/tag"
)

// rainbowResolver handles <rainbow[:[!]phase]>. The phase is a digit
// shifting the wheel by tenths, "!" reverses it.
type rainbowResolver struct{}

func (rainbowResolver) Has(name string) bool { return name == "rainbow" }

func (rainbowResolver) Resolve(_ string, args *markup.ArgumentQueue, _ tag.Context) tag.Tag {
	reverse, phase := rainbowPhase(args)
	return tag.Style(func(c *component.Component) {
		c.SetColorByPlacement(func(delta float64) string {
			delta = math.Mod(delta+phase, 1)
			if reverse {
				delta = 1 - delta
			}
			return colors.Hue(delta).Hex()
		})
	})
}

func rainbowPhase(args *markup.ArgumentQueue) (reverse bool, phase float64) {
	arg, ok := args.Peek()
	if !ok || arg.Value() == "" {
		return false, 0
	}
	value := arg.Value()
	if strings.HasPrefix(value, "!") {
		reverse = true
		value = value[1:]
	}
	n, isInt := markup.NewArgument(value).Int()
	if !isInt {
		return reverse, 0
	}
	if n < 0 {
		n = -n
	}
	return reverse, float64(n%10) / 10
}
