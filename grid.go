package cellui

import "math"

// GridRenderer keeps two equally-shaped cell buffers and turns the difference
// between them into a draw batch. Writes accumulate in the back buffer; Flush
// diffs it against the front buffer (the last presented frame), swaps them,
// and clears the new back buffer.
type GridRenderer struct {
	front *GridBuffer
	back  *GridBuffer

	cellW, cellH float32 // Cell size in pixels, per axis
	scale        float32 // Uniform scale factor applied on top of cell size
	atlasColumns int     // Glyph columns in the font atlas
}

// GridOption configures a GridRenderer.
type GridOption func(*GridRenderer)

// WithScale sets the uniform pixel scale factor (default 1).
func WithScale(scale float32) GridOption {
	return func(r *GridRenderer) { r.scale = scale }
}

// WithAtlasColumns sets the number of glyph columns in the font atlas
// (default 16). Flush uses it to address each glyph's atlas slot.
func WithAtlasColumns(columns int) GridOption {
	return func(r *GridRenderer) { r.atlasColumns = columns }
}

// NewGridRenderer creates a renderer for a width x height cell grid whose
// cells are cellW x cellH pixels.
func NewGridRenderer(width, height int, cellW, cellH float32, opts ...GridOption) *GridRenderer {
	r := &GridRenderer{
		front:        NewGridBuffer(width, height),
		back:         NewGridBuffer(width, height),
		cellW:        cellW,
		cellH:        cellH,
		scale:        1,
		atlasColumns: 16,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Size returns the grid dimensions in cells.
func (r *GridRenderer) Size() (width, height int) {
	return r.back.width, r.back.height
}

// CellSize returns the unscaled per-axis cell size in pixels.
func (r *GridRenderer) CellSize() (w, h float32) {
	return r.cellW, r.cellH
}

// Scale returns the uniform scale factor.
func (r *GridRenderer) Scale() float32 { return r.scale }

// AtlasColumns returns the glyph columns used for atlas addressing.
func (r *GridRenderer) AtlasColumns() int { return r.atlasColumns }

// Put writes one cell into the back buffer under the layer rule.
// Out-of-bounds writes are silently ignored.
func (r *GridRenderer) Put(x, y int, char, fg, bg, layer uint32) {
	r.back.Put(x, y, char, fg, bg, layer)
}

// Blit copies a w x h region of src starting at its origin into the back
// buffer at (x, y). Each cell goes through the same put rule, with its layer
// increased by layerOffset, so layer semantics apply uniformly.
func (r *GridRenderer) Blit(src *GridBuffer, x, y, w, h int, layerOffset uint32) {
	for sy := 0; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			if !src.InBounds(sx, sy) {
				continue
			}
			i := src.index(sx, sy)
			r.back.Put(x+sx, y+sy, src.chars[i], src.fg[i], src.bg[i], src.layers[i]+layerOffset)
		}
	}
}

// Back returns the accumulating back buffer. Exposed for blit sources and
// for inspection in tests; the renderer still owns it.
func (r *GridRenderer) Back() *GridBuffer { return r.back }

// Front returns the last flushed buffer.
func (r *GridRenderer) Front() *GridBuffer { return r.front }

// ClearBack discards all pending writes.
func (r *GridRenderer) ClearBack() { r.back.Clear() }

// Flush diffs the back buffer against the front buffer and returns a batch
// covering only the changed cells. A cell counts as changed when its
// (char, fg, bg) triple differs; layer is write-time metadata and is not
// compared. After building the batch the buffers swap and the new back buffer
// is cleared, so the returned batch always describes the transition from the
// previously presented frame.
func (r *GridRenderer) Flush() *Batch {
	batch := &Batch{}
	back, front := r.back, r.front
	for y := 0; y < back.height; y++ {
		rowBase := y * back.width
		for x := 0; x < back.width; x++ {
			i := rowBase + x
			if back.chars[i] == front.chars[i] &&
				back.fg[i] == front.fg[i] &&
				back.bg[i] == front.bg[i] {
				continue
			}
			batch.addCell(x, y, back.chars[i], back.fg[i], back.bg[i], r.atlasColumns)
		}
	}

	r.front, r.back = r.back, r.front
	r.back.Clear()
	return batch
}

// PixelToCell converts a pixel position to fractional cell coordinates.
// The result stays continuous; callers floor it explicitly when they need a
// discrete cell (pointer mapping does, layout math does not).
func (r *GridRenderer) PixelToCell(px, py float32) (cx, cy float32) {
	return px / (r.cellW * r.scale), py / (r.cellH * r.scale)
}

// CellToPixel converts fractional cell coordinates to pixels.
func (r *GridRenderer) CellToPixel(cx, cy float32) (px, py float32) {
	return cx * r.cellW * r.scale, cy * r.cellH * r.scale
}

// FloorCell floors fractional cell coordinates to a discrete cell.
func FloorCell(cx, cy float32) Point {
	return Point{X: int(math.Floor(float64(cx))), Y: int(math.Floor(float64(cy)))}
}
