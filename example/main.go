// Example demonstrates a minimal cellui application: a GLFW window driving
// the OpenGL backend, with a screen containing the built-in widgets.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/ atlas.png
//
// The atlas argument is a PNG glyph sheet laid out as a 16x16 grid of cells
// in character-code order. Because the renderer emits only the cells that
// changed since the last frame, the window uses a single persistent buffer
// instead of a swap chain.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/cellui"
	"github.com/go-theft-auto/cellui/backend/opengl"
)

const (
	gridWidth  = 80
	gridHeight = 30
	cellWidth  = 10
	cellHeight = 20
	cellScale  float32 = 1.0

	windowTitle = "cellui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	atlasPath := "atlas.png"
	if len(os.Args) > 1 {
		atlasPath = os.Args[1]
	}
	atlas, err := cellui.LoadAtlas(atlasPath, 16, 16)
	if err != nil {
		return fmt.Errorf("load atlas: %w", err)
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.False)

	winW := int(gridWidth * cellWidth * cellScale)
	winH := int(gridHeight * cellHeight * cellScale)
	window, err := glfw.CreateWindow(winW, winH, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	backend, err := opengl.New(winW, winH, atlas, cellWidth, cellHeight, cellScale)
	if err != nil {
		return fmt.Errorf("backend: %w", err)
	}
	defer backend.Delete()

	renderer := cellui.NewGridRenderer(gridWidth, gridHeight, cellWidth, cellHeight,
		cellui.WithScale(cellScale))
	ui := cellui.New(renderer, cellui.WithBackend(backend))
	opengl.NewSurface(window, ui, cellWidth, cellHeight, cellScale)

	ui.PushScreen(&demoScreen{})

	// Clear once; later frames only repaint damaged cells.
	gl.Viewport(0, 0, int32(winW), int32(winH))
	gl.ClearColor(0.09, 0.09, 0.11, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	for !window.ShouldClose() {
		glfw.WaitEventsTimeout(0.1)
		if err := ui.Render(); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		gl.Flush()
	}

	return nil
}

// demoScreen shows one of each built-in widget.
type demoScreen struct {
	cellui.ScreenBase

	clicks int
	dark   bool
	name   string
	picked int
}

var fruits = []string{
	"apple", "banana", "cherry", "damson", "elderberry",
	"fig", "grape", "honeydew", "kiwi", "lime",
	"mango", "nectarine", "orange", "papaya", "quince",
}

func (s *demoScreen) Render(ui *cellui.UI) {
	ui.Frame(cellui.Rect{X: 1, Y: 1, W: 40, H: 26}, "cellui demo", nil)

	ui.PushBoundingBox(cellui.Rect{X: 3, Y: 3, W: 36, H: 22})
	defer ui.PopBoundingBox()

	ui.Label(0, 0, "Tab cycles focus, Enter activates.", nil)

	if ui.Button("clicker", cellui.Rect{X: 0, Y: 2, W: 20, H: 1},
		fmt.Sprintf("Clicked %d times", s.clicks), nil) {
		s.clicks++
	}

	ui.Toggle("dark", cellui.Rect{X: 0, Y: 4, W: 20, H: 1}, "Dark titles", &s.dark, nil)

	ui.Label(0, 6, "Name:", nil)
	if ui.TextInput("name", cellui.Rect{X: 6, Y: 6, W: 20, H: 1}, &s.name,
		&cellui.TextInputConfig{Placeholder: "type here"}) {
		s.clicks = 0
	}

	ui.Label(0, 8, "Pick a fruit:", nil)
	ui.ScrollView("fruitview", cellui.Rect{X: 0, Y: 9, W: 24, H: 8},
		len(fruits), nil, func(ui *cellui.UI) {
			ui.List("fruits", cellui.Rect{X: 0, Y: 0, W: 22, H: len(fruits)},
				fruits, &s.picked, nil)
		})

	ui.Label(0, 18, fmt.Sprintf("Selected: %s", fruits[s.picked]), nil)
}
