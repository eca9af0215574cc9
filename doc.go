/*
Package cellui is a retained immediate-mode runtime for rendering a grid of
styled character cells to a graphical surface. The host application owns the
window, the event source, and the outer loop; cellui supplies the UI state
machine and a diffing cell renderer that emits only the geometry that changed
since the previous frame.

# Overview

All UI state lives in an explicit *UI value rather than package globals.
Widgets are methods on *UI that run inside a render pass and return
interaction results directly; there is no widget tree to manage and no
callbacks to register. Screens hold the retained application state; their
Render methods rebuild the cell grid from it on every pass.

Rendering is event-driven. The host calls Dispatch for each input event and
Render when it wants a frame; both run a bounded self-stabilizing loop in
which a pass that changes state requests another pass, so feedback between
widgets (focus moving, a list selection scrolling into view) settles before
anything is flushed. Exactly one diff is flushed to the backend per Render
call.

# Quick Start

	renderer := cellui.NewGridRenderer(80, 30, 10, 20)
	ui := cellui.New(renderer, cellui.WithBackend(backend))
	ui.PushScreen(&mainScreen{})

	// Host loop: translate input, then present.
	surface := opengl.NewSurface(window, ui, 10, 20, 1)
	for !window.ShouldClose() {
	    glfw.WaitEventsTimeout(0.1)
	    ui.Render()
	}

A screen draws with cell-space primitives and widgets:

	func (s *mainScreen) Render(ui *cellui.UI) {
	    ui.Frame(cellui.Rect{X: 0, Y: 0, W: 30, H: 10}, "menu", nil)
	    if ui.Button("start", cellui.Rect{X: 2, Y: 2, W: 10, H: 1}, "Start", nil) {
	        ui.PushScreen(&gameScreen{})
	    }
	}

# Screens

Screens form a stack rendered top-down. A Modal screen suppresses the
controls of every screen below it while leaving them visible; an Opaque
screen stops rendering entirely, so screens underneath it pay no cost.
Enter and Exit hooks fire on push and pop.

# Coordinates and Layers

Widgets position themselves relative to the current bounding box; PushBoundingBox
composes a child origin with the parent's, and PushClipRect bounds
where writes land. Both stacks must balance by the end of a pass.

Each cell write carries a layer. A write lands only when its layer is at
least the stored cell's layer; at equal layers the latest write wins. A
background of 0 keeps the stored background, which lets glyphs draw over an
already painted surface.

# Focus and Interaction

Control is the primitive behind every interactive widget. It registers the
control as focusable (registration order is the Tab order), re-derives hover
from the pointer cell, and resolves the press, release, and keyboard
activation transitions. Unconsumed Tab and Shift+Tab advance focus across
everything registered in the last pass, wrapping at both ends.

Control ids are qualified by the id stack: PushID("settings") turns "volume"
into "settings/volume", so the same widget code can repeat in different
containers without colliding. The qualified id also namespaces the local
store, where widgets keep per-instance state (cursor positions, scroll
offsets) between frames.

# Backends

A GraphicsBackend consumes the per-frame diff batch. The batch carries two
views of the same changes: vertex arrays for GPU backends (six vertices per
cell, positions in cell space, texture coordinates in atlas-cell space) and a
flat cell list for cell-addressed backends. backend/opengl renders through
go-gl with a glyph atlas; backend/term renders to a terminal through tcell.
*/
package cellui
