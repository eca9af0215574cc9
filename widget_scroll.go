package cellui

// scrollWheelStep is how many rows one wheel notch scrolls.
const scrollWheelStep = 3

// ScrollViewConfig configures ScrollView.
type ScrollViewConfig struct {
	HideScrollbar bool
	Layer         uint32
	Style         *Style
}

// ScrollView establishes a scrollable viewport covering r whose content is
// contentH rows tall. body renders inside a bounding box that is offset by
// the scroll position and clipped to the viewport, so content simply draws
// at its natural coordinates. The scroll offset persists in the local store;
// the wheel scrolls while the pointer is over the viewport, and the
// scrollbar thumb drags.
func (ui *UI) ScrollView(id string, r Rect, contentH int, cfg *ScrollViewConfig, body func(ui *UI)) {
	var c ScrollViewConfig
	if cfg != nil {
		c = *cfg
	}

	ui.PushID(id)
	defer ui.PopID()

	maxOff := maxInt(0, contentH-r.H)
	offset := clampi(LocalState(ui, "offset", 0), 0, maxOff)

	if !ui.modalActive && maxOff > 0 {
		if ev := ui.Event(); ev != nil && ev.Kind == EventWheel && ev.WheelY != 0 && ui.IsMouseOver(r) {
			offset = clampi(offset-int(ev.WheelY)*scrollWheelStep, 0, maxOff)
			SetLocalState(ui, "offset", offset)
			ui.StopEventPropagation()
			ui.StopEventDefault()
			ui.Invalidate()
		}
	}

	showBar := !c.HideScrollbar && contentH > r.H
	viewW := r.W
	if showBar {
		viewW--
	}

	ui.PushBoundingBox(Rect{X: r.X, Y: r.Y, W: viewW, H: r.H})
	ui.PushClipRect(Rect{X: 0, Y: 0, W: viewW, H: r.H})
	ui.PushBoundingBox(Rect{X: 0, Y: -offset, W: viewW, H: contentH})
	body(ui)
	ui.PopBoundingBox()
	ui.PopClipRect()
	ui.PopBoundingBox()

	if showBar {
		if ui.Scrollbar("bar", Rect{X: r.X + r.W - 1, Y: r.Y, W: 1, H: r.H}, contentH, &offset, c.Layer, c.Style) {
			SetLocalState(ui, "offset", offset)
		}
	}
}

// Scrollbar draws a vertical scrollbar in r (W is typically 1) for content
// contentH rows tall and lets the thumb be dragged. Reports whether *offset
// changed this pass.
func (ui *UI) Scrollbar(id string, r Rect, contentH int, offset *int, layer uint32, style *Style) bool {
	st := ui.resolveStyle(style)
	maxOff := maxInt(0, contentH-r.H)
	if maxOff == 0 || r.H < 1 {
		return false
	}

	cs := ui.Control(id, r, nil)

	thumbH := maxInt(1, r.H*r.H/contentH)
	span := r.H - thumbH

	changed := false
	if cs.Active && span > 0 {
		// While the thumb is held, every pointer move re-derives the offset
		// from the pointer row.
		top := ui.currentBox()
		row := ui.pointer.Y - (r.Y + top.Y) - thumbH/2
		want := clampi(row*maxOff/span, 0, maxOff)
		if want != *offset {
			*offset = want
			changed = true
			ui.Invalidate()
		}
	}

	thumbY := r.Y
	if maxOff > 0 {
		thumbY += *offset * span / maxOff
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		ch, fg := '│', st.ScrollbarBg
		if y >= thumbY && y < thumbY+thumbH {
			ch, fg = '█', st.ScrollbarThumb
		}
		ui.Put(r.X, y, ch, fg, 0, layer)
	}
	return changed
}
