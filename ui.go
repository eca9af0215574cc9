package cellui

// GraphicsBackend consumes a diff batch and draws it. Implementations own
// their API plumbing (shader setup, buffer upload, terminal I/O); the core
// hands them only changed geometry.
type GraphicsBackend interface {
	Draw(batch *Batch) error
}

// DefaultMaxRenderPasses bounds the self-stabilizing render loop. A pass
// that invalidates triggers another pass, up to this many per Render call.
const DefaultMaxRenderPasses = 10

// UI is the explicit context object holding all state for the immediate-mode
// runtime: the screen stack, the coordinate-space stacks, focus/hover/active
// resolution, the per-frame event, the persistent local store, and the
// bounded render loop that drives the grid renderer.
//
// A UI is single-threaded: the host delivers events serially and each
// Dispatch (including its internal render loop) runs to completion before
// the next event is considered.
type UI struct {
	renderer *GridRenderer
	backend  GraphicsBackend

	screens []Screen

	// Coordinate-space composition. Boxes and clips are stored absolute;
	// pushes compose against the current box top.
	boxStack  []Rect
	clipStack []Rect

	// Id namespace.
	idStack []string
	idPath  string

	// At most one id holds each of these at any instant.
	focusID  string
	hoverID  string
	activeID string

	// Rebuilt every pass, in registration order. Drives focus cycling.
	focusables []string

	// Per-dispatch event state. current is cleared by stop-propagation;
	// raw survives so late default-suppression still reaches the host.
	current *Event
	raw     *Event

	pointer    Point
	hasPointer bool
	mouseDown  [MouseButtonCount]bool
	keyDown    [KeyCount]bool

	store StateStore

	invalidated bool
	modalActive bool
	afterRender []func()

	maxPasses int
	style     Style
}

// Option configures a UI.
type Option func(*UI)

// WithMaxRenderPasses overrides the render loop iteration bound.
func WithMaxRenderPasses(n int) Option {
	return func(ui *UI) {
		if n > 0 {
			ui.maxPasses = n
		}
	}
}

// WithStyle sets the widget style table.
func WithStyle(style Style) Option {
	return func(ui *UI) { ui.style = style }
}

// WithStore sets a custom persistent state store.
func WithStore(store StateStore) Option {
	return func(ui *UI) { ui.store = store }
}

// WithBackend sets the graphics backend the settled frame is flushed to.
// A UI without a backend still renders and diffs (useful in tests).
func WithBackend(backend GraphicsBackend) Option {
	return func(ui *UI) { ui.backend = backend }
}

// New creates a UI driving the given renderer.
func New(renderer *GridRenderer, opts ...Option) *UI {
	ui := &UI{
		renderer:  renderer,
		boxStack:  make([]Rect, 0, 16),
		clipStack: make([]Rect, 0, 8),
		idStack:   make([]string, 0, 16),
		store:     make(MapStore),
		maxPasses: DefaultMaxRenderPasses,
		style:     DefaultStyle(),
	}
	for _, opt := range opts {
		opt(ui)
	}
	return ui
}

// Renderer returns the grid renderer the UI draws through.
func (ui *UI) Renderer() *GridRenderer { return ui.renderer }

// Style returns the current style table.
func (ui *UI) Style() Style { return ui.style }

// SetStyle replaces the style table.
func (ui *UI) SetStyle(style Style) { ui.style = style }

// Dispatch routes one host event through the state machine. Pointer moves
// that stay within the same cell are suppressed without a render; every other
// qualifying event triggers exactly one render. If the event survives the
// pass unconsumed and is a focus-advance key (Tab / Shift+Tab), the global
// fallback advances focus and forces exactly one more render.
func (ui *UI) Dispatch(ev *Event) error {
	if ev == nil {
		return nil
	}

	switch ev.Kind {
	case EventPointerMove:
		cell := FloorCell(ev.CellX, ev.CellY)
		if ui.hasPointer && cell == ui.pointer {
			return nil // same cell, nothing can have changed
		}
		ui.pointer = cell
		ui.hasPointer = true
	case EventPointerDown:
		ui.pointer = FloorCell(ev.CellX, ev.CellY)
		ui.hasPointer = true
		if ev.Button >= 0 && ev.Button < MouseButtonCount {
			ui.mouseDown[ev.Button] = true
		}
	case EventPointerUp:
		ui.pointer = FloorCell(ev.CellX, ev.CellY)
		ui.hasPointer = true
		if ev.Button >= 0 && ev.Button < MouseButtonCount {
			ui.mouseDown[ev.Button] = false
		}
	case EventKeyDown:
		if ev.Key > KeyNone && ev.Key < KeyCount {
			ui.keyDown[ev.Key] = true
		}
	case EventKeyUp:
		if ev.Key > KeyNone && ev.Key < KeyCount {
			ui.keyDown[ev.Key] = false
		}
	case EventWheel, EventNone:
	}

	ui.current = ev
	ui.raw = ev
	err := ui.Render()

	// Unconsumed Tab advances focus after the pass, then renders once more
	// so the new focus is visible. Clearing the event first keeps the focus
	// change from being handled a second time by widgets.
	if err == nil && ui.current != nil && ui.current.Kind == EventKeyDown && ui.current.Key == KeyTab {
		if ui.current.Shift {
			ui.advanceFocus(-1)
		} else {
			ui.advanceFocus(+1)
		}
		ui.current = nil
		err = ui.Render()
	}

	ui.current = nil
	ui.raw = nil
	return err
}

// Render runs the bounded render loop and flushes exactly one frame. Each
// pass renders the screen stack top-down; a pass that invalidates discards
// its writes and triggers another, up to the iteration bound. Exhausting the
// bound is a reported liveness failure and the last computed frame still
// flushes so the surface never freezes.
func (ui *UI) Render() error {
	w, h := ui.renderer.Size()

	settled := false
	for pass := 0; pass < ui.maxPasses; pass++ {
		ui.invalidated = false
		ui.modalActive = false
		ui.afterRender = ui.afterRender[:0]
		ui.focusables = ui.focusables[:0]
		ui.boxStack = append(ui.boxStack[:0], Rect{X: 0, Y: 0, W: w, H: h})
		ui.clipStack = ui.clipStack[:0]
		ui.idStack = ui.idStack[:0]
		ui.idPath = ""

		for i := len(ui.screens) - 1; i >= 0; i-- {
			// Render hooks may pop screens mid-pass; keep the index
			// inside the stack.
			if i >= len(ui.screens) {
				i = len(ui.screens) - 1
				if i < 0 {
					break
				}
			}
			s := ui.screens[i]
			s.Render(ui)
			// The modal flag is raised after the modal screen's own render,
			// so only the still-rendered screens below it are suppressed.
			if s.Modal() {
				ui.modalActive = true
			}
			if s.Opaque() {
				break
			}
		}

		if len(ui.boxStack) != 1 || len(ui.clipStack) != 0 {
			logger.Error("unbalanced stacks at end of render pass",
				"boxDepth", len(ui.boxStack)-1,
				"clipDepth", len(ui.clipStack))
		}
		ui.boxStack = ui.boxStack[:0]

		// Callbacks run after the pass and may invalidate it.
		for _, cb := range ui.afterRender {
			cb()
		}

		if !ui.invalidated {
			settled = true
			break
		}
		ui.renderer.ClearBack()
	}

	if !settled {
		logger.Warn("render loop did not stabilize", "passes", ui.maxPasses)
	}

	batch := ui.renderer.Flush()
	if ui.backend == nil {
		return nil
	}
	return ui.backend.Draw(batch)
}

// Invalidate requests another render pass. Idempotent; only meaningful while
// a render pass is active.
func (ui *UI) Invalidate() {
	ui.invalidated = true
}

// AddAfterRenderCallback queues fn to run once after the current pass.
// The queue is cleared at the start of every pass.
func (ui *UI) AddAfterRenderCallback(fn func()) {
	ui.afterRender = append(ui.afterRender, fn)
}

// --- coordinate-space stacks ---

// currentBox returns the top of the bounding-box stack.
func (ui *UI) currentBox() Rect {
	if len(ui.boxStack) == 0 {
		panic("cellui: no active bounding box (outside a render pass?)")
	}
	return ui.boxStack[len(ui.boxStack)-1]
}

// PushBoundingBox pushes a box placed relative to the current top: the
// child's origin is composed with the parent's. Every push must be matched
// by a pop within the same pass.
func (ui *UI) PushBoundingBox(r Rect) {
	top := ui.currentBox()
	ui.boxStack = append(ui.boxStack, r.Offset(top.X, top.Y))
}

// PopBoundingBox restores the previous box. Popping past the root is a
// widget defect and halts with a panic.
func (ui *UI) PopBoundingBox() {
	if len(ui.boxStack) <= 1 {
		panic("cellui: PopBoundingBox past root")
	}
	ui.boxStack = ui.boxStack[:len(ui.boxStack)-1]
}

// BoundingBox returns the current absolute bounding box.
func (ui *UI) BoundingBox() Rect { return ui.currentBox() }

// PushClipRect pushes a clip region given relative to the current bounding
// box. Writes are visible only inside the intersection of every active clip.
func (ui *UI) PushClipRect(r Rect) {
	top := ui.currentBox()
	ui.clipStack = append(ui.clipStack, r.Offset(top.X, top.Y))
}

// PopClipRect restores the previous clip region. Popping an empty clip
// stack is a widget defect and halts with a panic.
func (ui *UI) PopClipRect() {
	if len(ui.clipStack) == 0 {
		panic("cellui: PopClipRect on empty clip stack")
	}
	ui.clipStack = ui.clipStack[:len(ui.clipStack)-1]
}

// clipAllows reports whether an absolute cell is inside every active clip.
func (ui *UI) clipAllows(p Point) bool {
	for _, c := range ui.clipStack {
		if !c.Contains(p) {
			return false
		}
	}
	return true
}

// Put writes one cell relative to the current bounding box. Writes that fall
// outside any active clip rect are silently dropped.
func (ui *UI) Put(x, y int, ch rune, fg, bg uint32, layer uint32) {
	top := ui.currentBox()
	p := Point{X: x + top.X, Y: y + top.Y}
	if !ui.clipAllows(p) {
		return
	}
	ui.renderer.Put(p.X, p.Y, uint32(ch), fg, bg, layer)
}

// --- pointer / key queries ---

// Pointer returns the stored pointer cell and whether one has been seen.
func (ui *UI) Pointer() (Point, bool) { return ui.pointer, ui.hasPointer }

// IsMouseOver reports whether the pointer cell lies within rect (relative to
// the current bounding box), defaulting to the full box. Bounds are
// inclusive on both ends: a box of width W tests cells [x, x+W-1].
func (ui *UI) IsMouseOver(rect ...Rect) bool {
	if !ui.hasPointer {
		return false
	}
	top := ui.currentBox()
	r := top
	if len(rect) > 0 {
		r = rect[0].Offset(top.X, top.Y)
	}
	return r.Contains(ui.pointer)
}

// IsMouseDown reports whether a pointer button is currently held.
func (ui *UI) IsMouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return ui.mouseDown[button]
}

// IsKeyDown reports whether a key is currently held.
func (ui *UI) IsKeyDown(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return ui.keyDown[key]
}

// --- focus / hover / active ---

// IsFocused reports whether the control id (qualified against the current id
// stack) holds keyboard focus.
func (ui *UI) IsFocused(id string) bool { return ui.focusID == ui.qualifyID(id) }

// IsHovered reports whether the control id holds hover.
func (ui *UI) IsHovered(id string) bool { return ui.hoverID == ui.qualifyID(id) }

// IsActive reports whether the control id is being interacted with.
func (ui *UI) IsActive(id string) bool { return ui.activeID == ui.qualifyID(id) }

// SetFocus moves keyboard focus to the control id, qualified against the
// current id stack. Pass "" to clear focus.
func (ui *UI) SetFocus(id string) {
	if id == "" {
		ui.focusID = ""
		return
	}
	ui.focusID = ui.qualifyID(id)
}

// FocusedID returns the qualified id holding focus ("" when none).
func (ui *UI) FocusedID() string { return ui.focusID }

// AddFocusableControl registers a qualified id in this pass's focusable
// list. Registration order is render order and drives Tab cycling.
func (ui *UI) AddFocusableControl(qid string) {
	ui.focusables = append(ui.focusables, qid)
}

// advanceFocus moves focus through the last pass's focusable list, wrapping
// at both ends. With no current focus, +1 focuses the first id and -1 the
// last.
func (ui *UI) advanceFocus(dir int) {
	n := len(ui.focusables)
	if n == 0 {
		return
	}
	idx := -1
	for i, id := range ui.focusables {
		if id == ui.focusID {
			idx = i
			break
		}
	}
	if idx < 0 {
		if dir > 0 {
			ui.focusID = ui.focusables[0]
		} else {
			ui.focusID = ui.focusables[n-1]
		}
	} else {
		ui.focusID = ui.focusables[(idx+dir+n)%n]
	}
	if verbose() {
		logger.Debug("focus advanced", "dir", dir, "focus", ui.focusID)
	}
}

// --- event access ---

// Event returns the current pass's event, or nil once it has been consumed
// (or none is being dispatched).
func (ui *UI) Event() *Event { return ui.current }

// StopEventPropagation consumes the current event for the remainder of the
// pass. A consumed event is not seen by later widgets or by the post-pass
// focus-advance fallback.
func (ui *UI) StopEventPropagation() {
	ui.current = nil
}

// StopEventDefault asks the host to suppress its default handling of the
// dispatched event. Works even after propagation has been stopped.
func (ui *UI) StopEventDefault() {
	if ui.raw != nil {
		ui.raw.suppressDefault = true
	}
}
