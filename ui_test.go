package cellui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/cellui"
)

// recordBackend counts draws and keeps the last batch it was handed.
type recordBackend struct {
	draws     int
	lastBatch *cellui.Batch
}

func (b *recordBackend) Draw(batch *cellui.Batch) error {
	b.draws++
	b.lastBatch = batch
	return nil
}

// funcScreen adapts a closure into a Screen for tests.
type funcScreen struct {
	cellui.ScreenBase
	render func(ui *cellui.UI)
	modal  bool
	opaque bool
}

func (s *funcScreen) Render(ui *cellui.UI) {
	if s.render != nil {
		s.render(ui)
	}
}

func (s *funcScreen) Modal() bool  { return s.modal }
func (s *funcScreen) Opaque() bool { return s.opaque }

func newTestUI(opts ...cellui.Option) (*cellui.UI, *recordBackend) {
	backend := &recordBackend{}
	renderer := cellui.NewGridRenderer(40, 20, 8, 16)
	opts = append([]cellui.Option{cellui.WithBackend(backend)}, opts...)
	return cellui.New(renderer, opts...), backend
}

func pointerMove(x, y float32) *cellui.Event {
	return &cellui.Event{Kind: cellui.EventPointerMove, CellX: x, CellY: y}
}

func pointerDown(x, y float32) *cellui.Event {
	return &cellui.Event{Kind: cellui.EventPointerDown, CellX: x, CellY: y, Button: cellui.MouseButtonLeft}
}

func pointerUp(x, y float32) *cellui.Event {
	return &cellui.Event{Kind: cellui.EventPointerUp, CellX: x, CellY: y, Button: cellui.MouseButtonLeft}
}

func keyDown(k cellui.Key) *cellui.Event {
	return &cellui.Event{Kind: cellui.EventKeyDown, Key: k}
}

func keyUp(k cellui.Key) *cellui.Event {
	return &cellui.Event{Kind: cellui.EventKeyUp, Key: k}
}

func typeRune(r rune) *cellui.Event {
	return &cellui.Event{Kind: cellui.EventKeyDown, Rune: r}
}

// click dispatches a full press-release pair at a cell.
func click(ui *cellui.UI, x, y float32) {
	_ = ui.Dispatch(pointerDown(x, y))
	_ = ui.Dispatch(pointerUp(x, y))
}

func TestRenderFlushesOncePerCall(t *testing.T) {
	ui, backend := newTestUI()
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		ui.Put(0, 0, 'A', cellui.ColorWhite, cellui.ColorBlack, 0)
	}})

	require.NoError(t, ui.Render())
	assert.Equal(t, 1, backend.draws)
	require.Len(t, backend.lastBatch.Cells, 1)

	// Stable content: still exactly one flush, now empty.
	require.NoError(t, ui.Render())
	assert.Equal(t, 2, backend.draws)
	assert.True(t, backend.lastBatch.Empty())
}

func TestRenderLoopStopsAtBound(t *testing.T) {
	passes := 0
	ui, backend := newTestUI(cellui.WithMaxRenderPasses(4))
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		passes++
		ui.Invalidate()
	}})

	require.NoError(t, ui.Render())
	assert.Equal(t, 4, passes, "an always-invalidating screen runs exactly the bound")
	assert.Equal(t, 1, backend.draws, "the last computed frame still flushes")
}

func TestRenderLoopSettles(t *testing.T) {
	passes := 0
	ui, _ := newTestUI()
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		passes++
		if passes < 3 {
			ui.Invalidate()
		}
	}})

	require.NoError(t, ui.Render())
	assert.Equal(t, 3, passes)
}

func TestAfterRenderCallbackCanInvalidate(t *testing.T) {
	passes := 0
	ui, _ := newTestUI()
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		passes++
		if passes == 1 {
			ui.AddAfterRenderCallback(func() { ui.Invalidate() })
		}
	}})

	require.NoError(t, ui.Render())
	assert.Equal(t, 2, passes, "a callback invalidation triggers one more pass")
}

func TestPutTransformAndClip(t *testing.T) {
	ui, backend := newTestUI()
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		ui.PushBoundingBox(cellui.Rect{X: 5, Y: 5, W: 10, H: 10})
		ui.PushBoundingBox(cellui.Rect{X: 2, Y: 1, W: 5, H: 5})
		ui.Put(1, 1, 'A', cellui.ColorWhite, cellui.ColorBlack, 0) // absolute (8, 7)

		ui.PushClipRect(cellui.Rect{X: 0, Y: 0, W: 2, H: 2}) // absolute [7..8, 6..7]
		ui.Put(1, 1, 'B', cellui.ColorWhite, cellui.ColorBlack, 1)
		ui.Put(3, 3, 'C', cellui.ColorWhite, cellui.ColorBlack, 1) // clipped out
		ui.PopClipRect()

		ui.PopBoundingBox()
		ui.PopBoundingBox()
	}})

	require.NoError(t, ui.Render())
	require.Len(t, backend.lastBatch.Cells, 1)
	cell := backend.lastBatch.Cells[0]
	assert.Equal(t, 8, cell.X)
	assert.Equal(t, 7, cell.Y)
	assert.Equal(t, uint32('B'), cell.Char)
}

func TestPopBoundingBoxPastRootPanics(t *testing.T) {
	ui, _ := newTestUI()
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		ui.PopBoundingBox()
	}})
	assert.Panics(t, func() { _ = ui.Render() })
}

func TestPopClipRectOnEmptyStackPanics(t *testing.T) {
	ui, _ := newTestUI()
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		ui.PopClipRect()
	}})
	assert.Panics(t, func() { _ = ui.Render() })
}

func TestUnbalancedPushIsReportedNotFatal(t *testing.T) {
	ui, backend := newTestUI()
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		ui.PushBoundingBox(cellui.Rect{X: 1, Y: 1, W: 5, H: 5})
		ui.Put(0, 0, 'A', cellui.ColorWhite, cellui.ColorBlack, 0)
		// Missing pop: reported, but the frame still flushes.
	}})

	require.NoError(t, ui.Render())
	assert.Equal(t, 1, backend.draws)
	require.Len(t, backend.lastBatch.Cells, 1)
}

func TestIsMouseOverInclusiveBounds(t *testing.T) {
	var inside4, inside5 bool
	ui, _ := newTestUI()
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		ui.PushBoundingBox(cellui.Rect{X: 0, Y: 0, W: 5, H: 1})
		inside4 = ui.IsMouseOver()
		ui.PopBoundingBox()
		inside5 = ui.IsMouseOver(cellui.Rect{X: 5, Y: 0, W: 5, H: 1})
	}})

	require.NoError(t, ui.Dispatch(pointerMove(4, 0)))
	assert.True(t, inside4, "cell x+W-1 is inside a width-W box")
	assert.False(t, inside5)

	require.NoError(t, ui.Dispatch(pointerMove(5, 0)))
	assert.False(t, inside4, "cell x+W is outside")
	assert.True(t, inside5)
}

func TestPointerMoveSameCellSuppressed(t *testing.T) {
	renders := 0
	ui, _ := newTestUI()
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) { renders++ }})

	require.NoError(t, ui.Dispatch(pointerMove(3.2, 4.1)))
	assert.Equal(t, 1, renders)

	// Same cell: no state can have changed, no render.
	require.NoError(t, ui.Dispatch(pointerMove(3.8, 4.9)))
	assert.Equal(t, 1, renders)

	require.NoError(t, ui.Dispatch(pointerMove(4.1, 4.9)))
	assert.Equal(t, 2, renders)
}

func TestLocalStoreNamespacing(t *testing.T) {
	ui, _ := newTestUI()
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		ui.PushID("left")
		cellui.SetLocalState(ui, "count", cellui.LocalState(ui, "count", 0)+1)
		ui.PopID()

		ui.PushID("right")
		assert.Equal(t, 0, cellui.LocalState(ui, "count", 0),
			"same key under a different id path is distinct state")
		ui.PopID()
	}})

	require.NoError(t, ui.Render())
	require.NoError(t, ui.Render())

	var count int
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		ui.PushID("left")
		count = cellui.LocalState(ui, "count", 0)
		ui.PopID()
	}, opaque: true})
	require.NoError(t, ui.Render())
	assert.Equal(t, 2, count, "local state persists across frames")
}

func TestIDPathComposition(t *testing.T) {
	var path, qualified string
	ui, _ := newTestUI()
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		ui.PushID("settings")
		ui.PushID("audio")
		path = ui.IDPath()
		ui.SetFocus("volume")
		qualified = ui.FocusedID()
		ui.PopID()
		ui.PopID()
	}})

	require.NoError(t, ui.Render())
	assert.Equal(t, "settings/audio", path)
	assert.Equal(t, "settings/audio/volume", qualified)
}

func TestPopIDOnEmptyStackPanics(t *testing.T) {
	ui, _ := newTestUI()
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		ui.PopID()
	}})
	assert.Panics(t, func() { _ = ui.Render() })
}

func TestGlobalStore(t *testing.T) {
	ui, _ := newTestUI()

	ui.SetValue("volume", 0.7)
	v, ok := ui.GetValue("volume")
	require.True(t, ok)
	assert.Equal(t, 0.7, v)

	_, ok = ui.GetValue("missing")
	assert.False(t, ok)
}

func TestStopEventPropagation(t *testing.T) {
	order := make([]string, 0, 4)
	ui, _ := newTestUI()
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		if ui.Event() != nil {
			order = append(order, "lower saw event")
		}
	}})
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		if ui.Event() != nil {
			order = append(order, "upper consumed")
			ui.StopEventPropagation()
		}
	}})

	require.NoError(t, ui.Dispatch(keyDown(cellui.KeyEscape)))
	assert.Equal(t, []string{"upper consumed"}, order)
}

func TestStopEventDefault(t *testing.T) {
	ui, _ := newTestUI()
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		if ui.Event() != nil {
			ui.StopEventPropagation()
			ui.StopEventDefault()
		}
	}})

	ev := keyDown(cellui.KeyTab)
	require.NoError(t, ui.Dispatch(ev))
	assert.True(t, ev.DefaultSuppressed(),
		"default suppression reaches the host even after propagation stopped")
}

func TestKeyAndMouseState(t *testing.T) {
	var keyHeld, mouseHeld bool
	ui, _ := newTestUI()
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		keyHeld = ui.IsKeyDown(cellui.KeySpace)
		mouseHeld = ui.IsMouseDown(cellui.MouseButtonLeft)
	}})

	require.NoError(t, ui.Dispatch(keyDown(cellui.KeySpace)))
	assert.True(t, keyHeld)
	require.NoError(t, ui.Dispatch(pointerDown(1, 1)))
	assert.True(t, mouseHeld)

	require.NoError(t, ui.Dispatch(keyUp(cellui.KeySpace)))
	assert.False(t, keyHeld)
	require.NoError(t, ui.Dispatch(pointerUp(1, 1)))
	assert.False(t, mouseHeld)
}
