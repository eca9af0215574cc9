package cellui

// Box-drawing runes for frames.
const (
	frameTopLeft     = '┌'
	frameTopRight    = '┐'
	frameBottomLeft  = '└'
	frameBottomRight = '┘'
	frameHorizontal  = '─'
	frameVertical    = '│'
)

// FrameConfig configures Frame.
type FrameConfig struct {
	Fg    uint32 // 0 = style FrameFg
	Bg    uint32 // 0 = keep stored background
	Layer uint32
	Style *Style
}

// Frame draws a box-drawing border around r with an optional title in the
// top edge. The interior is untouched; pair with FillRect or a bounding box
// for content.
func (ui *UI) Frame(r Rect, title string, cfg *FrameConfig) {
	var c FrameConfig
	if cfg != nil {
		c = *cfg
	}
	st := ui.resolveStyle(c.Style)
	fg := c.Fg
	if fg == 0 {
		fg = st.FrameFg
	}
	if r.W < 2 || r.H < 2 {
		return
	}

	x1, y1 := r.X, r.Y
	x2, y2 := r.X+r.W-1, r.Y+r.H-1

	ui.Put(x1, y1, frameTopLeft, fg, c.Bg, c.Layer)
	ui.Put(x2, y1, frameTopRight, fg, c.Bg, c.Layer)
	ui.Put(x1, y2, frameBottomLeft, fg, c.Bg, c.Layer)
	ui.Put(x2, y2, frameBottomRight, fg, c.Bg, c.Layer)
	for x := x1 + 1; x < x2; x++ {
		ui.Put(x, y1, frameHorizontal, fg, c.Bg, c.Layer)
		ui.Put(x, y2, frameHorizontal, fg, c.Bg, c.Layer)
	}
	for y := y1 + 1; y < y2; y++ {
		ui.Put(x1, y, frameVertical, fg, c.Bg, c.Layer)
		ui.Put(x2, y, frameVertical, fg, c.Bg, c.Layer)
	}

	if title != "" && r.W > 4 {
		t := TruncateString(title, r.W-4)
		ui.Put(x1+1, y1, ' ', fg, c.Bg, c.Layer)
		w := ui.PutString(x1+2, y1, t, st.Fg, c.Bg, c.Layer)
		ui.Put(x1+2+w, y1, ' ', fg, c.Bg, c.Layer)
	}
}
