package cellui

// TextInputConfig configures TextInput.
type TextInputConfig struct {
	Disabled    bool
	Placeholder string
	Layer       uint32
	Style       *Style
}

// TextInput draws a single-line text field bound to *text and reports
// whether Enter committed the value this pass. While focused it consumes
// typed characters, cursor movement, backspace/delete, and Ctrl+C / Ctrl+V
// clipboard shortcuts; Tab is left alone so focus cycling still works.
// Cursor position and horizontal scroll persist in the local store.
func (ui *UI) TextInput(id string, r Rect, text *string, cfg *TextInputConfig) bool {
	var c TextInputConfig
	if cfg != nil {
		c = *cfg
	}
	st := ui.resolveStyle(c.Style)
	cs := ui.Control(id, r, &ControlConfig{Disabled: c.Disabled})

	ui.PushID(id)
	defer ui.PopID()

	runes := []rune(*text)
	cursor := clampi(LocalState(ui, "cursor", len(runes)), 0, len(runes))

	committed := false
	if cs.Focused && !c.Disabled {
		if ev := ui.Event(); ev != nil && ev.Kind == EventKeyDown {
			handled := true
			switch {
			case ev.Key == KeyEnter:
				committed = true
			case ev.Key == KeyBackspace:
				if cursor > 0 {
					runes = append(runes[:cursor-1], runes[cursor:]...)
					cursor--
				}
			case ev.Key == KeyDelete:
				if cursor < len(runes) {
					runes = append(runes[:cursor], runes[cursor+1:]...)
				}
			case ev.Key == KeyLeft:
				cursor = clampi(cursor-1, 0, len(runes))
			case ev.Key == KeyRight:
				cursor = clampi(cursor+1, 0, len(runes))
			case ev.Key == KeyHome:
				cursor = 0
			case ev.Key == KeyEnd:
				cursor = len(runes)
			case ev.Ctrl && ev.Key == KeyV:
				pasted := []rune(ClipboardGetText())
				runes = append(runes[:cursor], append(pasted, runes[cursor:]...)...)
				cursor += len(pasted)
			case ev.Ctrl && ev.Key == KeyC:
				ClipboardSetText(string(runes))
			case ev.Rune >= ' ' && !ev.Ctrl:
				runes = append(runes[:cursor], append([]rune{ev.Rune}, runes[cursor:]...)...)
				cursor++
			default:
				handled = false
			}
			if handled {
				*text = string(runes)
				SetLocalState(ui, "cursor", cursor)
				ui.StopEventPropagation()
				ui.StopEventDefault()
				ui.Invalidate()
			}
		}
	}

	// Keep the cursor column inside the visible window.
	scroll := LocalState(ui, "scroll", 0)
	if cursor < scroll {
		scroll = cursor
	}
	if cursor >= scroll+r.W {
		scroll = cursor - r.W + 1
	}
	scroll = clampi(scroll, 0, maxInt(0, len(runes)))
	SetLocalState(ui, "scroll", scroll)

	fg := st.InputFg
	if c.Disabled {
		fg = st.DisabledFg
	}
	ui.FillRect(r, fg, st.InputBg, c.Layer)

	if len(runes) == 0 && c.Placeholder != "" && !cs.Focused {
		ui.PutString(r.X, r.Y, TruncateString(c.Placeholder, r.W), st.DisabledFg, st.InputBg, c.Layer)
	} else {
		visible := runes[scroll:]
		x := r.X
		for i, ch := range visible {
			if x >= r.X+r.W {
				break
			}
			cellFg, cellBg := fg, st.InputBg
			if cs.Focused && scroll+i == cursor {
				cellFg, cellBg = st.InputCursorFg, st.InputCursorBg
			}
			ui.Put(x, r.Y, ch, cellFg, cellBg, c.Layer)
			x++
		}
		// Cursor past the last rune.
		if cs.Focused && cursor == len(runes) && x < r.X+r.W {
			ui.Put(x, r.Y, ' ', st.InputCursorFg, st.InputCursorBg, c.Layer)
		}
	}

	if committed {
		return true
	}
	return false
}
