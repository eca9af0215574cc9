package cellui

import "github.com/mattn/go-runewidth"

// PutString writes a string left-to-right starting at (x, y), relative to
// the current bounding box. Wide runes occupy two cells (the glyph in the
// first, a styled filler in the second); zero-width runes are skipped. No
// wrapping: the clip stack decides what stays visible. Returns the number of
// cells advanced.
func (ui *UI) PutString(x, y int, s string, fg, bg uint32, layer uint32) int {
	cx := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		ui.Put(cx, y, r, fg, bg, layer)
		if w == 2 {
			ui.Put(cx+1, y, ' ', fg, bg, layer)
		}
		cx += w
	}
	return cx - x
}

// StringCells returns the number of cells a string occupies.
func StringCells(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateString cuts a string to fit within w cells, appending "…" when it
// had to cut.
func TruncateString(s string, w int) string {
	return runewidth.Truncate(s, w, "…")
}

// FillRect paints a rectangle of cells (relative to the current bounding
// box) with a space glyph, so only the background reads through.
func (ui *UI) FillRect(r Rect, fg, bg uint32, layer uint32) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			ui.Put(x, y, ' ', fg, bg, layer)
		}
	}
}
