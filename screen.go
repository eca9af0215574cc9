package cellui

// Screen is one unit of the UI screen stack. Render runs every pass while
// the screen is on the stack; Enter fires when it is pushed and Exit when it
// is popped. An opaque screen stops the pass from descending to the screens
// below it; a modal screen excludes lower screens' controls from interaction
// for the rest of the pass while leaving their visuals alone.
type Screen interface {
	Render(ui *UI)
	Enter(ui *UI)
	Exit(ui *UI)
	Modal() bool
	Opaque() bool
}

// ScreenBase is an embeddable no-op Screen: empty hooks, both flags false.
// Concrete screens embed it and override what they need.
type ScreenBase struct{}

func (ScreenBase) Render(*UI)  {}
func (ScreenBase) Enter(*UI)   {}
func (ScreenBase) Exit(*UI)    {}
func (ScreenBase) Modal() bool { return false }

func (ScreenBase) Opaque() bool { return false }

// PushScreen binds a screen on top of the stack and fires its Enter hook.
func (ui *UI) PushScreen(s Screen) {
	ui.screens = append(ui.screens, s)
	s.Enter(ui)
	ui.invalidated = true
}

// PopScreen unbinds the top screen, fires its Exit hook, and returns it.
// Returns nil if the stack is empty.
func (ui *UI) PopScreen() Screen {
	n := len(ui.screens)
	if n == 0 {
		return nil
	}
	s := ui.screens[n-1]
	ui.screens = ui.screens[:n-1]
	s.Exit(ui)
	ui.invalidated = true
	return s
}

// TopScreen returns the most recently pushed screen, or nil.
func (ui *UI) TopScreen() Screen {
	if len(ui.screens) == 0 {
		return nil
	}
	return ui.screens[len(ui.screens)-1]
}

// ScreenCount returns the screen stack depth.
func (ui *UI) ScreenCount() int { return len(ui.screens) }
