package cellui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/cellui"
)

// controlScreen renders one control and records its last resolved state.
type controlScreen struct {
	cellui.ScreenBase
	id   string
	rect cellui.Rect
	cfg  cellui.ControlConfig

	state   cellui.ControlState
	clicked int
}

func (s *controlScreen) Render(ui *cellui.UI) {
	s.state = ui.Control(s.id, s.rect, &s.cfg)
	if s.state.Clicked {
		s.clicked++
	}
}

func TestControlPressClaimsActiveAndFocus(t *testing.T) {
	ui, _ := newTestUI()
	sc := &controlScreen{id: "btn", rect: cellui.Rect{X: 1, Y: 1, W: 5, H: 1}}
	ui.PushScreen(sc)

	require.NoError(t, ui.Dispatch(pointerMove(2, 1)))
	assert.True(t, sc.state.Hovered)
	assert.False(t, sc.state.Active)

	require.NoError(t, ui.Dispatch(pointerDown(2, 1)))
	assert.True(t, sc.state.Active)
	assert.True(t, sc.state.Focused)
	assert.False(t, sc.state.Clicked)

	require.NoError(t, ui.Dispatch(pointerUp(2, 1)))
	assert.False(t, sc.state.Active, "release clears active")
	assert.True(t, sc.state.Focused, "focus survives the release")
	assert.Equal(t, 1, sc.clicked)
}

func TestControlReleaseOutsideIsNotAClick(t *testing.T) {
	ui, _ := newTestUI()
	sc := &controlScreen{id: "btn", rect: cellui.Rect{X: 1, Y: 1, W: 5, H: 1}}
	ui.PushScreen(sc)

	require.NoError(t, ui.Dispatch(pointerDown(2, 1)))
	require.NoError(t, ui.Dispatch(pointerMove(10, 10)))
	require.NoError(t, ui.Dispatch(pointerUp(10, 10)))

	assert.Zero(t, sc.clicked, "drag off and release does not activate")
	assert.False(t, sc.state.Active)
}

func TestControlKeyboardActivation(t *testing.T) {
	ui, _ := newTestUI()
	sc := &controlScreen{id: "btn", rect: cellui.Rect{X: 1, Y: 1, W: 5, H: 1}}
	ui.PushScreen(sc)

	ui.SetFocus("btn")

	require.NoError(t, ui.Dispatch(keyDown(cellui.KeyEnter)))
	assert.True(t, sc.state.Active, "Enter down while focused claims active")

	require.NoError(t, ui.Dispatch(keyUp(cellui.KeyEnter)))
	assert.False(t, sc.state.Active)
	assert.Equal(t, 1, sc.clicked)
}

func TestControlDisabled(t *testing.T) {
	ui, _ := newTestUI()
	sc := &controlScreen{
		id:   "btn",
		rect: cellui.Rect{X: 1, Y: 1, W: 5, H: 1},
		cfg:  cellui.ControlConfig{Disabled: true},
	}
	ui.PushScreen(sc)

	require.NoError(t, ui.Dispatch(pointerMove(2, 1)))
	click(ui, 2, 1)
	assert.Zero(t, sc.clicked)
	assert.Equal(t, cellui.ControlState{}, sc.state)

	// Disabled controls are skipped by focus cycling too.
	require.NoError(t, ui.Dispatch(keyDown(cellui.KeyTab)))
	assert.Empty(t, ui.FocusedID())
}

func TestControlEmptyIDPanics(t *testing.T) {
	ui, _ := newTestUI()
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		ui.Control("", cellui.Rect{W: 1, H: 1}, nil)
	}})
	assert.Panics(t, func() { _ = ui.Render() })
}

func TestHoverLastRegistrationWins(t *testing.T) {
	var second cellui.ControlState
	ui, _ := newTestUI()
	r := cellui.Rect{X: 1, Y: 1, W: 5, H: 1}
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		ui.Control("under", r, nil)
		second = ui.Control("over", r, nil)
	}})

	require.NoError(t, ui.Dispatch(pointerMove(2, 1)))
	assert.True(t, second.Hovered)
	assert.True(t, ui.IsHovered("over"), "the later registration holds hover")
	assert.False(t, ui.IsHovered("under"))

	// A press therefore lands on the later control.
	click(ui, 2, 1)
	assert.Equal(t, "over", ui.FocusedID())
}

func TestTabCyclesFocusInRenderOrder(t *testing.T) {
	ui, _ := newTestUI()
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		ui.Control("a", cellui.Rect{X: 0, Y: 0, W: 2, H: 1}, nil)
		ui.Control("b", cellui.Rect{X: 0, Y: 1, W: 2, H: 1}, nil)
		ui.Control("c", cellui.Rect{X: 0, Y: 2, W: 2, H: 1}, nil)
	}})

	tab := func() { require.NoError(t, ui.Dispatch(keyDown(cellui.KeyTab))) }
	backtab := func() {
		require.NoError(t, ui.Dispatch(&cellui.Event{
			Kind: cellui.EventKeyDown, Key: cellui.KeyTab, Shift: true,
		}))
	}

	tab()
	assert.Equal(t, "a", ui.FocusedID(), "first Tab focuses the first control")
	tab()
	assert.Equal(t, "b", ui.FocusedID())
	tab()
	assert.Equal(t, "c", ui.FocusedID())
	tab()
	assert.Equal(t, "a", ui.FocusedID(), "Tab wraps forward")

	backtab()
	assert.Equal(t, "c", ui.FocusedID(), "Shift+Tab wraps backward")
}

func TestShiftTabWithNoFocusPicksLast(t *testing.T) {
	ui, _ := newTestUI()
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		ui.Control("a", cellui.Rect{X: 0, Y: 0, W: 2, H: 1}, nil)
		ui.Control("b", cellui.Rect{X: 0, Y: 1, W: 2, H: 1}, nil)
	}})

	require.NoError(t, ui.Dispatch(&cellui.Event{
		Kind: cellui.EventKeyDown, Key: cellui.KeyTab, Shift: true,
	}))
	assert.Equal(t, "b", ui.FocusedID())
}

func TestConsumedTabDoesNotAdvanceFocus(t *testing.T) {
	ui, _ := newTestUI()
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) {
		ui.Control("a", cellui.Rect{X: 0, Y: 0, W: 2, H: 1}, nil)
		if ev := ui.Event(); ev != nil && ev.Key == cellui.KeyTab {
			ui.StopEventPropagation()
		}
	}})

	require.NoError(t, ui.Dispatch(keyDown(cellui.KeyTab)))
	assert.Empty(t, ui.FocusedID())
}

func TestModalScreenSuppressesLowerControls(t *testing.T) {
	ui, _ := newTestUI()
	r := cellui.Rect{X: 1, Y: 1, W: 5, H: 1}
	lower := &controlScreen{id: "lower", rect: r}
	modal := &controlScreen{id: "dialog", rect: r}
	ui.PushScreen(lower)
	ui.PushScreen(&modalWrap{controlScreen: modal})

	require.NoError(t, ui.Dispatch(pointerMove(2, 1)))
	click(ui, 2, 1)

	assert.Equal(t, 1, modal.clicked, "the modal screen's own controls work")
	assert.Zero(t, lower.clicked, "controls below the modal are suppressed")
	assert.Equal(t, cellui.ControlState{}, lower.state)
}

// modalWrap marks a controlScreen as modal.
type modalWrap struct {
	*controlScreen
}

func (modalWrap) Modal() bool { return true }

func TestOpaqueScreenStopsDescent(t *testing.T) {
	lowerRenders := 0
	ui, _ := newTestUI()
	ui.PushScreen(&funcScreen{render: func(ui *cellui.UI) { lowerRenders++ }})
	ui.PushScreen(&funcScreen{opaque: true})

	require.NoError(t, ui.Render())
	assert.Zero(t, lowerRenders)
}
