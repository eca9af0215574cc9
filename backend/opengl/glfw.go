package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/cellui"
)

// Surface connects a GLFW window to a cellui.UI: it installs input callbacks
// that translate GLFW events into cellui events and dispatches them, and it
// converts between pixel and cell coordinates for the window's cell metrics.
type Surface struct {
	window       *glfw.Window
	ui           *cellui.UI
	cellW, cellH float32
	scale        float32
}

// NewSurface wires window input into ui. The cell metrics must match the
// backend the ui draws through.
func NewSurface(window *glfw.Window, ui *cellui.UI, cellW, cellH, scale float32) *Surface {
	s := &Surface{
		window: window,
		ui:     ui,
		cellW:  cellW,
		cellH:  cellH,
		scale:  scale,
	}
	s.installCallbacks()
	return s
}

// PixelToCell converts window pixel coordinates to continuous cell
// coordinates.
func (s *Surface) PixelToCell(px, py float64) (float32, float32) {
	return float32(px) / (s.cellW * s.scale), float32(py) / (s.cellH * s.scale)
}

// CellToPixel converts cell coordinates to the pixel position of the cell's
// top-left corner.
func (s *Surface) CellToPixel(cx, cy int) (float64, float64) {
	return float64(cx) * float64(s.cellW*s.scale), float64(cy) * float64(s.cellH*s.scale)
}

func (s *Surface) installCallbacks() {
	s.window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		cx, cy := s.PixelToCell(xpos, ypos)
		s.ui.Dispatch(&cellui.Event{
			Kind:  cellui.EventPointerMove,
			CellX: cx,
			CellY: cy,
		})
	})

	s.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		kind := cellui.EventPointerDown
		if action == glfw.Release {
			kind = cellui.EventPointerUp
		}
		xpos, ypos := w.GetCursorPos()
		cx, cy := s.PixelToCell(xpos, ypos)
		ev := &cellui.Event{
			Kind:   kind,
			CellX:  cx,
			CellY:  cy,
			Button: glfwButtonToButton(button),
		}
		applyMods(ev, mods)
		s.ui.Dispatch(ev)
	})

	s.window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		xpos, ypos := w.GetCursorPos()
		cx, cy := s.PixelToCell(xpos, ypos)
		s.ui.Dispatch(&cellui.Event{
			Kind:   cellui.EventWheel,
			CellX:  cx,
			CellY:  cy,
			WheelX: float32(xoff),
			WheelY: float32(yoff),
		})
	})

	s.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		k := glfwKeyToKey(key)
		if k == cellui.KeyNone {
			return
		}
		var kind cellui.EventKind
		switch action {
		case glfw.Press, glfw.Repeat:
			kind = cellui.EventKeyDown
		case glfw.Release:
			kind = cellui.EventKeyUp
		default:
			return
		}
		ev := &cellui.Event{Kind: kind, Key: k}
		applyMods(ev, mods)
		s.ui.Dispatch(ev)
	})

	s.window.SetCharCallback(func(_ *glfw.Window, char rune) {
		s.ui.Dispatch(&cellui.Event{
			Kind: cellui.EventKeyDown,
			Rune: char,
		})
	})
}

func applyMods(ev *cellui.Event, mods glfw.ModifierKey) {
	ev.Shift = mods&glfw.ModShift != 0
	ev.Ctrl = mods&glfw.ModControl != 0
	ev.Alt = mods&glfw.ModAlt != 0
}

func glfwButtonToButton(button glfw.MouseButton) cellui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return cellui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return cellui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return cellui.MouseButtonMiddle
	}
	return cellui.MouseButtonLeft
}

func glfwKeyToKey(key glfw.Key) cellui.Key {
	switch key {
	case glfw.KeyTab:
		return cellui.KeyTab
	case glfw.KeyLeft:
		return cellui.KeyLeft
	case glfw.KeyRight:
		return cellui.KeyRight
	case glfw.KeyUp:
		return cellui.KeyUp
	case glfw.KeyDown:
		return cellui.KeyDown
	case glfw.KeyHome:
		return cellui.KeyHome
	case glfw.KeyEnd:
		return cellui.KeyEnd
	case glfw.KeyBackspace:
		return cellui.KeyBackspace
	case glfw.KeyDelete:
		return cellui.KeyDelete
	case glfw.KeySpace:
		return cellui.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return cellui.KeyEnter
	case glfw.KeyEscape:
		return cellui.KeyEscape
	case glfw.KeyA:
		return cellui.KeyA
	case glfw.KeyC:
		return cellui.KeyC
	case glfw.KeyV:
		return cellui.KeyV
	case glfw.KeyX:
		return cellui.KeyX
	case glfw.KeyF1:
		return cellui.KeyF1
	case glfw.KeyF2:
		return cellui.KeyF2
	case glfw.KeyF3:
		return cellui.KeyF3
	case glfw.KeyF4:
		return cellui.KeyF4
	case glfw.KeyF5:
		return cellui.KeyF5
	case glfw.KeyF6:
		return cellui.KeyF6
	case glfw.KeyF7:
		return cellui.KeyF7
	case glfw.KeyF8:
		return cellui.KeyF8
	case glfw.KeyF9:
		return cellui.KeyF9
	case glfw.KeyF10:
		return cellui.KeyF10
	case glfw.KeyF11:
		return cellui.KeyF11
	case glfw.KeyF12:
		return cellui.KeyF12
	}
	return cellui.KeyNone
}
