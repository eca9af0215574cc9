package cellui

// ControlConfig holds the optional fields of a Control call. The zero value
// is a regular enabled control.
type ControlConfig struct {
	// Disabled controls draw but never register as focusable and never
	// resolve hover/active/focus transitions.
	Disabled bool
}

// ControlState is the resolved interaction state for one control this pass.
type ControlState struct {
	Hovered bool
	Active  bool
	Focused bool
	// Clicked is true on the pass where the control completed an
	// activation: pointer released while active and still hovered, or the
	// activation key released while active and focused.
	Clicked bool
}

// Control resolves hover/active/focus transitions for a control identified
// by id covering rect (relative to the current bounding box). Call it once
// per control per pass; registration order defines the focus-cycling order.
//
// Hover is re-derived authoritatively each pass: the id claims hover when
// the pointer cell lies inside the rectangle and isn't excluded by the
// active clip; otherwise it releases hover only if it was the holder, so the
// last control checked in a pass wins ties. A press while hovered claims
// both active and focus; release (or the activation key's key-up) clears
// active; the activation key's key-down while focused claims active without
// a prior hover, which is what makes keyboard activation work.
//
// An empty id is rejected immediately: the qualified id is the sole key for
// focus, hover, active, and local state.
func (ui *UI) Control(id string, rect Rect, cfg *ControlConfig) ControlState {
	if id == "" {
		panic("cellui: Control requires a non-empty id")
	}
	if cfg != nil && cfg.Disabled {
		return ControlState{}
	}
	// A modal screen higher in the stack suppresses interaction for the
	// rest of the pass; visuals are the widget's business and unaffected.
	if ui.modalActive {
		return ControlState{}
	}

	qid := ui.qualifyID(id)
	ui.AddFocusableControl(qid)

	top := ui.currentBox()
	abs := rect.Offset(top.X, top.Y)
	over := ui.hasPointer && abs.Contains(ui.pointer) && ui.clipAllows(ui.pointer)
	if over {
		ui.hoverID = qid
	} else if ui.hoverID == qid {
		ui.hoverID = ""
	}

	clicked := false
	if ev := ui.current; ev != nil {
		switch ev.Kind {
		case EventPointerDown:
			if ev.Button == MouseButtonLeft && ui.hoverID == qid {
				ui.activeID = qid
				ui.focusID = qid
			}
		case EventPointerUp:
			if ev.Button == MouseButtonLeft && ui.activeID == qid {
				clicked = ui.hoverID == qid
				ui.activeID = ""
			}
		case EventKeyDown:
			if ev.Key == KeyActivate && ui.focusID == qid {
				ui.activeID = qid
			}
		case EventKeyUp:
			if ev.Key == KeyActivate && ui.activeID == qid {
				clicked = ui.focusID == qid
				ui.activeID = ""
			}
		case EventPointerMove, EventWheel, EventNone:
		}
	}

	return ControlState{
		Hovered: ui.hoverID == qid,
		Active:  ui.activeID == qid,
		Focused: ui.focusID == qid,
		Clicked: clicked,
	}
}
