package cellui

// ListConfig configures List.
type ListConfig struct {
	Disabled bool
	Layer    uint32
	Style    *Style
}

// List draws a selectable list of rows covering r (one row per cell row,
// rows beyond r.H rely on an enclosing ScrollView's clip) and reports
// whether *selected changed this pass. Clicking a row selects it; Up/Down
// move the selection while the list has focus.
func (ui *UI) List(id string, r Rect, items []string, selected *int, cfg *ListConfig) bool {
	var c ListConfig
	if cfg != nil {
		c = *cfg
	}
	st := ui.resolveStyle(c.Style)
	cs := ui.Control(id, r, &ControlConfig{Disabled: c.Disabled})

	changed := false
	if !c.Disabled && !ui.modalActive {
		if ev := ui.Event(); ev != nil {
			switch {
			case ev.Kind == EventPointerDown && ev.Button == MouseButtonLeft && cs.Hovered:
				top := ui.currentBox()
				row := ui.pointer.Y - (r.Y + top.Y)
				if row >= 0 && row < len(items) && row != *selected {
					*selected = row
					changed = true
				}
				ui.StopEventPropagation()
				ui.Invalidate()
			case ev.Kind == EventKeyDown && cs.Focused && ev.Key == KeyUp:
				if *selected > 0 {
					*selected--
					changed = true
				}
				ui.StopEventPropagation()
				ui.Invalidate()
			case ev.Kind == EventKeyDown && cs.Focused && ev.Key == KeyDown:
				if *selected < len(items)-1 {
					*selected++
					changed = true
				}
				ui.StopEventPropagation()
				ui.Invalidate()
			}
		}
	}

	for i, item := range items {
		fg, bg := st.Fg, uint32(0)
		switch {
		case c.Disabled:
			fg = st.DisabledFg
		case i == *selected:
			fg, bg = st.SelectionFg, st.SelectionBg
		}
		y := r.Y + i
		if bg != 0 {
			ui.FillRect(Rect{X: r.X, Y: y, W: r.W, H: 1}, fg, bg, c.Layer)
		}
		ui.PutString(r.X+1, y, TruncateString(item, maxInt(0, r.W-2)), fg, bg, c.Layer)
	}
	if cs.Focused && *selected >= 0 && *selected < len(items) {
		ui.Put(r.X, r.Y+*selected, '▸', st.FocusFg, st.SelectionBg, c.Layer)
	}

	return changed
}
