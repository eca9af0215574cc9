package cellui

import (
	"fmt"
	"image"
	_ "image/png" // atlas decoding
	"os"

	xdraw "golang.org/x/image/draw"
)

// Atlas is a fixed-grid glyph atlas: a single image holding columns x rows
// glyph slots of equal size. Glyph code points address slots row-major
// (column = code mod columns, row = code div columns), matching the texture
// coordinates Flush emits.
type Atlas struct {
	Pixels  *image.RGBA
	Columns int
	Rows    int
	CellW   int // Slot width in pixels
	CellH   int // Slot height in pixels
}

// LoadAtlas decodes a glyph atlas image and slices it into a columns x rows
// grid. The image dimensions must divide evenly by the grid.
func LoadAtlas(path string, columns, rows int) (*Atlas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("atlas: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("atlas %s: %w", path, err)
	}
	return NewAtlas(img, columns, rows)
}

// NewAtlas wraps an already-decoded image as an atlas, converting it to RGBA
// if needed.
func NewAtlas(img image.Image, columns, rows int) (*Atlas, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("atlas: grid %dx%d is not positive", columns, rows)
	}
	b := img.Bounds()
	if b.Dx()%columns != 0 || b.Dy()%rows != 0 {
		return nil, fmt.Errorf("atlas: image %dx%d does not divide into %dx%d grid",
			b.Dx(), b.Dy(), columns, rows)
	}

	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	}

	return &Atlas{
		Pixels:  rgba,
		Columns: columns,
		Rows:    rows,
		CellW:   b.Dx() / columns,
		CellH:   b.Dy() / rows,
	}, nil
}

// Slot returns the pixel bounds of a glyph's atlas slot. Code points beyond
// the atlas wrap into the question-mark slot if one exists, else slot 0.
func (a *Atlas) Slot(code uint32) image.Rectangle {
	max := uint32(a.Columns * a.Rows)
	if code >= max {
		if uint32('?') < max {
			code = '?'
		} else {
			code = 0
		}
	}
	col := int(code) % a.Columns
	row := int(code) / a.Columns
	return image.Rect(col*a.CellW, row*a.CellH, (col+1)*a.CellW, (row+1)*a.CellH)
}
