package cellui

// CellUpdate records one changed cell in a diff batch, for backends that
// address cells directly (e.g. a terminal) instead of consuming geometry.
type CellUpdate struct {
	X, Y int
	Char uint32
	Fg   uint32
	Bg   uint32
}

// Batch is the payload describing only the cells changed since the previous
// frame. GPU backends consume the vertex arrays: two triangles (6 vertices)
// per cell, positions in cell space, texture coordinates in atlas-cell space
// (the backend scales both by its cell size and atlas geometry). Cell-
// addressed backends consume Cells instead; the two views cover the same
// diff.
type Batch struct {
	Pos   []Vec2   // Vertex positions, 6 per changed cell, cell-space
	Tex   []Vec2   // Texture coordinates, atlas-cell-space
	Fg    []uint32 // Per-vertex packed foreground
	Bg    []uint32 // Per-vertex packed background
	Cells []CellUpdate
}

// addCell appends the two triangles for one changed cell. The glyph's atlas
// slot is (char mod columns, char div columns).
func (b *Batch) addCell(x, y int, char, fg, bg uint32, atlasColumns int) {
	fx, fy := float32(x), float32(y)
	col := float32(char % uint32(atlasColumns))
	row := float32(char / uint32(atlasColumns))

	b.Pos = append(b.Pos,
		Vec2{fx, fy}, Vec2{fx + 1, fy}, Vec2{fx + 1, fy + 1},
		Vec2{fx, fy}, Vec2{fx + 1, fy + 1}, Vec2{fx, fy + 1},
	)
	b.Tex = append(b.Tex,
		Vec2{col, row}, Vec2{col + 1, row}, Vec2{col + 1, row + 1},
		Vec2{col, row}, Vec2{col + 1, row + 1}, Vec2{col, row + 1},
	)
	for i := 0; i < 6; i++ {
		b.Fg = append(b.Fg, fg)
		b.Bg = append(b.Bg, bg)
	}
	b.Cells = append(b.Cells, CellUpdate{X: x, Y: y, Char: char, Fg: fg, Bg: bg})
}

// VertexCount returns the number of vertices in the batch (6 per cell).
func (b *Batch) VertexCount() int { return len(b.Pos) }

// Empty reports whether the batch carries no changed cells.
func (b *Batch) Empty() bool { return len(b.Cells) == 0 }
