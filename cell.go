package cellui

// Cell is one character position in the grid. Char is the glyph's code point
// (an index into the font atlas), Fg and Bg are packed RGBA colors, and Layer
// is the paint priority that resolves competing writes within a frame.
type Cell struct {
	Char  uint32
	Fg    uint32
	Bg    uint32
	Layer uint32
}

// zeroCell is the cleared state of every cell: no glyph, no colors, layer 0.
var zeroCell Cell

// GridBuffer is a width x height structure-of-arrays of cells. Two instances
// exist per renderer: the front buffer (last flushed) and the back buffer
// (accumulating the current frame).
type GridBuffer struct {
	width, height int

	chars  []uint32
	fg     []uint32
	bg     []uint32
	layers []uint32
}

// NewGridBuffer creates a cleared buffer with the given dimensions.
func NewGridBuffer(width, height int) *GridBuffer {
	n := width * height
	return &GridBuffer{
		width:  width,
		height: height,
		chars:  make([]uint32, n),
		fg:     make([]uint32, n),
		bg:     make([]uint32, n),
		layers: make([]uint32, n),
	}
}

// Width returns the buffer width in cells.
func (b *GridBuffer) Width() int { return b.width }

// Height returns the buffer height in cells.
func (b *GridBuffer) Height() int { return b.height }

// InBounds reports whether (x, y) addresses a cell in the buffer.
func (b *GridBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// index converts x,y coordinates to a slice index.
func (b *GridBuffer) index(x, y int) int {
	return y*b.width + x
}

// At returns the cell at (x, y), or the zero cell when out of bounds.
func (b *GridBuffer) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return zeroCell
	}
	i := b.index(x, y)
	return Cell{Char: b.chars[i], Fg: b.fg[i], Bg: b.bg[i], Layer: b.layers[i]}
}

// Put writes a cell at (x, y). Out-of-bounds coordinates are silently
// ignored. The write only lands if layer >= the cell's stored layer, so the
// highest layer wins and among equal layers the latest writer wins. A zero
// background is a sentinel for "keep the stored background".
func (b *GridBuffer) Put(x, y int, char, fg, bg, layer uint32) {
	if !b.InBounds(x, y) {
		return
	}
	i := b.index(x, y)
	if layer < b.layers[i] {
		return
	}
	b.chars[i] = char
	b.fg[i] = fg
	if bg != 0 {
		b.bg[i] = bg
	}
	b.layers[i] = layer
}

// Clear resets every cell to the zero cell.
func (b *GridBuffer) Clear() {
	clear(b.chars)
	clear(b.fg)
	clear(b.bg)
	clear(b.layers)
}
