package component

// CollapseUnnecessaryEnclosures replaces a component whose only
// property is a single entry Extra with that entry. A string entry
// becomes Text; a component entry is collapsed in turn and then
// takes the place of c.
func (c *Component) CollapseUnnecessaryEnclosures() {
	if !c.isOnlyExtra() || len(c.Extra) != 1 {
		return
	}
	only := c.Extra[0]
	if only.IsText() {
		c.Extra = nil
		c.Text = String(only.Text())
		return
	}
	sub := only.Component()
	sub.CollapseUnnecessaryEnclosures()
	*c = *sub
}
