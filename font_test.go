package cellui_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/cellui"
)

func TestNewAtlas(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 128, 256))
	atlas, err := cellui.NewAtlas(img, 16, 16)
	require.NoError(t, err)
	assert.Equal(t, 8, atlas.CellW)
	assert.Equal(t, 16, atlas.CellH)

	// 'A' is 65: column 1, row 4.
	slot := atlas.Slot('A')
	assert.Equal(t, image.Rect(8, 64, 16, 80), slot)
}

func TestNewAtlasConvertsToRGBA(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 32, 32))
	atlas, err := cellui.NewAtlas(img, 16, 16)
	require.NoError(t, err)
	assert.NotNil(t, atlas.Pixels)
	assert.Equal(t, 32, atlas.Pixels.Bounds().Dx())
}

func TestNewAtlasRejectsBadGrid(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	_, err := cellui.NewAtlas(img, 16, 16)
	assert.Error(t, err, "100 does not divide by 16")

	_, err = cellui.NewAtlas(img, 0, 16)
	assert.Error(t, err)
}

func TestAtlasSlotFallback(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 128, 128))
	atlas, err := cellui.NewAtlas(img, 16, 16)
	require.NoError(t, err)

	// Beyond the atlas: falls back to the question-mark slot.
	assert.Equal(t, atlas.Slot('?'), atlas.Slot(0x4E00))
}

func TestLoadAtlasMissingFile(t *testing.T) {
	_, err := cellui.LoadAtlas("does-not-exist.png", 16, 16)
	assert.Error(t, err)
}
