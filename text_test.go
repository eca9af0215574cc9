package cellui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/cellui"
)

func TestPutStringWideRunes(t *testing.T) {
	ui, backend := newTestUI()
	advanced := 0
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		advanced = ui.PutString(0, 0, "a漢b", cellui.ColorWhite, cellui.ColorBlack, 0)
	}})

	require.NoError(t, ui.Render())
	assert.Equal(t, 4, advanced, "wide rune advances two cells")

	byX := make(map[int]uint32)
	for _, c := range backend.lastBatch.Cells {
		byX[c.X] = c.Char
	}
	assert.Equal(t, uint32('a'), byX[0])
	assert.Equal(t, uint32('漢'), byX[1])
	assert.Equal(t, uint32(' '), byX[2], "filler cell after a wide rune")
	assert.Equal(t, uint32('b'), byX[3])
}

func TestStringCells(t *testing.T) {
	assert.Equal(t, 5, cellui.StringCells("hello"))
	assert.Equal(t, 4, cellui.StringCells("漢字"))
	assert.Zero(t, cellui.StringCells(""))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "hello", cellui.TruncateString("hello", 5))
	assert.Equal(t, "hel…", cellui.TruncateString("hello!", 4))
}

func TestFillRect(t *testing.T) {
	ui, backend := newTestUI()
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		ui.FillRect(cellui.Rect{X: 1, Y: 1, W: 3, H: 2}, cellui.ColorWhite, cellui.ColorRed, 0)
	}})

	require.NoError(t, ui.Render())
	assert.Len(t, backend.lastBatch.Cells, 6)
	for _, c := range backend.lastBatch.Cells {
		assert.Equal(t, uint32(' '), c.Char)
		assert.Equal(t, cellui.ColorRed, c.Bg)
	}
}
