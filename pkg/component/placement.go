package component

import "unicode/utf8"

// PlacementFunc maps a fractional position in [0,1] to a color.
type PlacementFunc func(delta float64) string

// SetColorByPlacement colors the component one character at a time.
// Every pure text run below c is split into single character leaves
// colored by their position in the whole of c, so that the colors stay
// continuous across nested children. Children that already carry a
// color keep it and are not split. A component shorter than two
// characters simply receives fn(0).
func (c *Component) SetColorByPlacement(fn PlacementFunc) {
	total := c.ContentLength(false)
	if total < 2 {
		c.SetColor(fn(0))
		return
	}
	c.placeColors(fn, 0, total)
}

type piece struct {
	text string
	sub  *Component
	size int
}

func (c *Component) placeColors(fn PlacementFunc, offset, total int) {
	pieces := make([]piece, 0, len(c.Extra)+1)
	if text := c.TextValue(); text != "" {
		pieces = append(pieces, piece{text: text, size: utf8.RuneCountInString(text)})
	}
	c.Text = nil
	for _, child := range c.Extra {
		p := piece{size: child.ContentLength()}
		if sub := child.Component(); sub != nil && !sub.IsOnlyText() {
			p.sub = sub
		} else if sub != nil {
			p.text = sub.TextValue()
		} else {
			p.text = child.Text()
		}
		pieces = append(pieces, p)
	}

	split := make([]Child, 0, len(pieces))
	head := 0
	for _, p := range pieces {
		if p.size == 0 {
			continue
		}
		if p.sub == nil {
			i := 0
			for _, r := range p.text {
				leaf := NewText(string(r))
				leaf.SetColor(fn(float64(offset+head+i) / float64(total-1)))
				split = append(split, ComponentChild(leaf))
				i++
			}
		} else {
			if p.sub.Color == nil {
				p.sub.SetColor(fn(float64(offset+head) / float64(total)))
				p.sub.placeColors(fn, offset+head, total)
			}
			split = append(split, ComponentChild(p.sub))
		}
		head += p.size
	}
	c.Extra = split
}
