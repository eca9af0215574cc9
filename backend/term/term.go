// Package term provides a terminal graphics backend for cellui built on
// tcell. It consumes the cell list of each diff batch instead of the vertex
// arrays, and translates terminal input into cellui events.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/cellui"
)

// Backend renders cellui diff batches to a terminal screen.
type Backend struct {
	screen tcell.Screen

	// lastButtons is the previous mouse button mask. Press and release
	// edges are derived from tcell's absolute button state.
	lastButtons tcell.ButtonMask
}

// New initializes a terminal screen. Call Fini when done.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term backend: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term backend: init: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	return &Backend{screen: screen}, nil
}

// NewWithScreen wraps an existing screen. Used by tests with a simulation
// screen.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

// Fini restores the terminal.
func (b *Backend) Fini() {
	b.screen.Fini()
}

// Size returns the terminal size in cells.
func (b *Backend) Size() (int, int) {
	return b.screen.Size()
}

// Draw applies one diff batch to the terminal. Only the changed cells are
// touched; tcell keeps the rest of the screen as is.
func (b *Backend) Draw(batch *cellui.Batch) error {
	if batch == nil || batch.Empty() {
		return nil
	}
	for _, c := range batch.Cells {
		style := tcell.StyleDefault.
			Foreground(toTcellColor(c.Fg)).
			Background(toTcellColor(c.Bg))
		b.screen.SetContent(c.X, c.Y, rune(c.Char), nil, style)
	}
	b.screen.Show()
	return nil
}

func toTcellColor(packed uint32) tcell.Color {
	r, g, b, _ := cellui.UnpackRGBA(packed)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Run polls terminal events and dispatches them into ui until the quit
// function returns true or the screen is finalized. The quit check runs after
// every dispatched event.
func (b *Backend) Run(ui *cellui.UI, quit func() bool) {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		b.dispatch(ui, ev)
		if quit != nil && quit() {
			return
		}
	}
}

// dispatch translates one tcell event and feeds it to ui.
func (b *Backend) dispatch(ui *cellui.UI, ev tcell.Event) {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		b.screen.Sync()
		ui.Invalidate()
		ui.Render()
	case *tcell.EventMouse:
		b.dispatchMouse(ui, tev)
	case *tcell.EventKey:
		b.dispatchKey(ui, tev)
	}
}

func (b *Backend) dispatchMouse(ui *cellui.UI, ev *tcell.EventMouse) {
	x, y := ev.Position()
	cx, cy := float32(x), float32(y)

	if ev.Buttons()&tcell.WheelUp != 0 {
		ui.Dispatch(&cellui.Event{Kind: cellui.EventWheel, CellX: cx, CellY: cy, WheelY: 1})
		return
	}
	if ev.Buttons()&tcell.WheelDown != 0 {
		ui.Dispatch(&cellui.Event{Kind: cellui.EventWheel, CellX: cx, CellY: cy, WheelY: -1})
		return
	}

	buttons := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	changed := buttons ^ b.lastButtons
	b.lastButtons = buttons

	if changed == 0 {
		ui.Dispatch(&cellui.Event{Kind: cellui.EventPointerMove, CellX: cx, CellY: cy})
		return
	}
	for mask, btn := range map[tcell.ButtonMask]cellui.MouseButton{
		tcell.Button1: cellui.MouseButtonLeft,
		tcell.Button2: cellui.MouseButtonRight,
		tcell.Button3: cellui.MouseButtonMiddle,
	} {
		if changed&mask == 0 {
			continue
		}
		kind := cellui.EventPointerDown
		if buttons&mask == 0 {
			kind = cellui.EventPointerUp
		}
		ui.Dispatch(&cellui.Event{Kind: kind, CellX: cx, CellY: cy, Button: btn})
	}
}

func (b *Backend) dispatchKey(ui *cellui.UI, ev *tcell.EventKey) {
	out := &cellui.Event{Kind: cellui.EventKeyDown}
	out.Shift = ev.Modifiers()&tcell.ModShift != 0
	out.Ctrl = ev.Modifiers()&tcell.ModCtrl != 0
	out.Alt = ev.Modifiers()&tcell.ModAlt != 0

	switch ev.Key() {
	case tcell.KeyRune:
		out.Rune = ev.Rune()
		if out.Rune == ' ' {
			out.Key = cellui.KeySpace
		}
	case tcell.KeyTab:
		out.Key = cellui.KeyTab
	case tcell.KeyBacktab:
		out.Key = cellui.KeyTab
		out.Shift = true
	case tcell.KeyEnter:
		out.Key = cellui.KeyEnter
	case tcell.KeyEscape:
		out.Key = cellui.KeyEscape
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		out.Key = cellui.KeyBackspace
	case tcell.KeyDelete:
		out.Key = cellui.KeyDelete
	case tcell.KeyLeft:
		out.Key = cellui.KeyLeft
	case tcell.KeyRight:
		out.Key = cellui.KeyRight
	case tcell.KeyUp:
		out.Key = cellui.KeyUp
	case tcell.KeyDown:
		out.Key = cellui.KeyDown
	case tcell.KeyHome:
		out.Key = cellui.KeyHome
	case tcell.KeyEnd:
		out.Key = cellui.KeyEnd
	case tcell.KeyCtrlC:
		out.Key = cellui.KeyC
		out.Ctrl = true
	case tcell.KeyCtrlV:
		out.Key = cellui.KeyV
		out.Ctrl = true
	case tcell.KeyCtrlX:
		out.Key = cellui.KeyX
		out.Ctrl = true
	case tcell.KeyCtrlA:
		out.Key = cellui.KeyA
		out.Ctrl = true
	case tcell.KeyF1:
		out.Key = cellui.KeyF1
	case tcell.KeyF2:
		out.Key = cellui.KeyF2
	case tcell.KeyF3:
		out.Key = cellui.KeyF3
	case tcell.KeyF4:
		out.Key = cellui.KeyF4
	case tcell.KeyF5:
		out.Key = cellui.KeyF5
	case tcell.KeyF6:
		out.Key = cellui.KeyF6
	case tcell.KeyF7:
		out.Key = cellui.KeyF7
	case tcell.KeyF8:
		out.Key = cellui.KeyF8
	case tcell.KeyF9:
		out.Key = cellui.KeyF9
	case tcell.KeyF10:
		out.Key = cellui.KeyF10
	case tcell.KeyF11:
		out.Key = cellui.KeyF11
	case tcell.KeyF12:
		out.Key = cellui.KeyF12
	default:
		return
	}

	ui.Dispatch(out)
	// Terminals report no key releases. Synthesize one so press-release
	// control logic works unchanged.
	up := *out
	up.Kind = cellui.EventKeyUp
	ui.Dispatch(&up)
}
