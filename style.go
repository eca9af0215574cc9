package cellui

// Style is the color table widgets resolve against. Widget configs may carry
// a *Style override; nil falls back to the UI's table.
type Style struct {
	// Base text
	Fg uint32
	Bg uint32

	// Buttons
	ButtonFg       uint32
	ButtonBg       uint32
	ButtonHoverBg  uint32
	ButtonActiveBg uint32
	DisabledFg     uint32

	// Text input
	InputFg       uint32
	InputBg       uint32
	InputCursorFg uint32
	InputCursorBg uint32

	// Selection (lists, input selection)
	SelectionFg uint32
	SelectionBg uint32

	// Frames and separators
	FrameFg uint32

	// Scrollbars
	ScrollbarBg    uint32
	ScrollbarThumb uint32

	// Focus marker
	FocusFg uint32
}

// DefaultStyle returns the built-in dark color table.
func DefaultStyle() Style {
	return Style{
		Fg: RGBA(220, 220, 220, 255),
		Bg: RGBA(24, 24, 28, 255),

		ButtonFg:       RGBA(230, 230, 230, 255),
		ButtonBg:       RGBA(60, 60, 70, 255),
		ButtonHoverBg:  RGBA(80, 80, 95, 255),
		ButtonActiveBg: RGBA(105, 105, 125, 255),
		DisabledFg:     RGBA(120, 120, 120, 255),

		InputFg:       RGBA(235, 235, 235, 255),
		InputBg:       RGBA(38, 38, 46, 255),
		InputCursorFg: RGBA(24, 24, 28, 255),
		InputCursorBg: RGBA(220, 220, 220, 255),

		SelectionFg: RGBA(250, 250, 250, 255),
		SelectionBg: RGBA(50, 90, 150, 255),

		FrameFg: RGBA(140, 140, 155, 255),

		ScrollbarBg:    RGBA(40, 40, 48, 255),
		ScrollbarThumb: RGBA(110, 110, 125, 255),

		FocusFg: RGBA(255, 210, 90, 255),
	}
}

// resolveStyle picks a widget-level override or the UI table.
func (ui *UI) resolveStyle(override *Style) Style {
	if override != nil {
		return *override
	}
	return ui.style
}
