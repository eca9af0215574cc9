package cellui

// LabelConfig configures Label. Zero value: style foreground, transparent
// background, layer 0.
type LabelConfig struct {
	Fg    uint32 // 0 = style Fg
	Bg    uint32 // 0 = keep stored background
	Layer uint32
	Style *Style
}

// Label writes a line of text at (x, y) relative to the current bounding box.
func (ui *UI) Label(x, y int, text string, cfg *LabelConfig) {
	var c LabelConfig
	if cfg != nil {
		c = *cfg
	}
	st := ui.resolveStyle(c.Style)
	fg := c.Fg
	if fg == 0 {
		fg = st.Fg
	}
	ui.PutString(x, y, text, fg, c.Bg, c.Layer)
}

// ButtonConfig configures Button.
type ButtonConfig struct {
	Disabled bool
	Layer    uint32
	Style    *Style
}

// Button draws a clickable button covering r and reports whether it was
// activated this pass (pointer click or Enter while focused).
func (ui *UI) Button(id string, r Rect, label string, cfg *ButtonConfig) bool {
	var c ButtonConfig
	if cfg != nil {
		c = *cfg
	}
	st := ui.resolveStyle(c.Style)
	cs := ui.Control(id, r, &ControlConfig{Disabled: c.Disabled})

	fg, bg := st.ButtonFg, st.ButtonBg
	switch {
	case c.Disabled:
		fg = st.DisabledFg
	case cs.Active:
		bg = st.ButtonActiveBg
	case cs.Hovered:
		bg = st.ButtonHoverBg
	}

	ui.FillRect(r, fg, bg, c.Layer)
	text := TruncateString(label, maxInt(0, r.W-2))
	tx := r.X + (r.W-StringCells(text))/2
	ty := r.Y + r.H/2
	ui.PutString(tx, ty, text, fg, bg, c.Layer)
	if cs.Focused {
		ui.Put(r.X, ty, '▸', st.FocusFg, bg, c.Layer)
	}

	if cs.Clicked {
		ui.StopEventPropagation()
		ui.Invalidate()
		return true
	}
	return false
}

// ToggleConfig configures Toggle.
type ToggleConfig struct {
	Disabled bool
	Layer    uint32
	Style    *Style
}

// Toggle draws a checkbox-style control bound to *value and reports whether
// the value changed this pass. Space flips it as well as the usual
// activation paths.
func (ui *UI) Toggle(id string, r Rect, label string, value *bool, cfg *ToggleConfig) bool {
	var c ToggleConfig
	if cfg != nil {
		c = *cfg
	}
	st := ui.resolveStyle(c.Style)
	cs := ui.Control(id, r, &ControlConfig{Disabled: c.Disabled})

	toggled := cs.Clicked
	if !toggled && cs.Focused && !c.Disabled {
		if ev := ui.Event(); ev != nil && ev.Kind == EventKeyDown && ev.Key == KeySpace {
			toggled = true
		}
	}
	if toggled {
		*value = !*value
	}

	fg, bg := st.Fg, uint32(0)
	switch {
	case c.Disabled:
		fg = st.DisabledFg
	case cs.Hovered:
		bg = st.ButtonHoverBg
	}
	mark := '□'
	if *value {
		mark = '■'
	}
	ui.Put(r.X, r.Y, mark, fg, bg, c.Layer)
	ui.PutString(r.X+2, r.Y, TruncateString(label, maxInt(0, r.W-2)), fg, bg, c.Layer)
	if cs.Focused {
		ui.Put(r.X+1, r.Y, '▸', st.FocusFg, bg, c.Layer)
	}

	if toggled {
		ui.StopEventPropagation()
		ui.Invalidate()
		return true
	}
	return false
}

// maxInt returns the larger of two ints.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
