// Package opengl provides an OpenGL 4.1 graphics backend for cellui. It owns
// shader compilation, the font-atlas texture, and vertex upload; the core
// hands it only the changed-cell batch each frame.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/cellui"
)

// vertex is the interleaved GPU layout for one batch vertex.
type vertex struct {
	Pos [2]float32 // cell-space
	Tex [2]float32 // atlas-cell-space
	Fg  uint32     // packed RGBA, normalized in the attribute
	Bg  uint32
}

// Backend renders cellui diff batches with OpenGL.
type Backend struct {
	shader   uint32
	vao, vbo uint32
	atlasTex uint32

	projLoc      int32
	cellSizeLoc  int32
	atlasDimLoc  int32
	atlasTexLoc  int32
	width        int
	height       int
	cellW, cellH float32
	scale        float32
	atlasCols    int
	atlasRows    int

	verts []vertex // reused between frames
}

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTex;
layout (location = 2) in vec4 aFg;
layout (location = 3) in vec4 aBg;

out vec2 TexCoord;
out vec4 Fg;
out vec4 Bg;

uniform mat4 projection;
uniform vec2 cellSize;
uniform vec2 atlasCells;

void main() {
    gl_Position = projection * vec4(aPos * cellSize, 0.0, 1.0);
    TexCoord = aTex / atlasCells;
    Fg = aFg;
    Bg = aBg;
}
` + "\x00"

// The glyph's alpha channel is its coverage: background where the glyph is
// transparent, foreground-tinted glyph where it is opaque.
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Fg;
in vec4 Bg;

out vec4 FragColor;

uniform sampler2D atlasTexture;

void main() {
    vec4 glyph = texture(atlasTexture, TexCoord);
    FragColor = mix(Bg, vec4(Fg.rgb * glyph.rgb, Fg.a), glyph.a * Fg.a);
}
` + "\x00"

// New creates a backend drawing to a width x height pixel viewport, with
// glyphs taken from atlas and cells cellW x cellH pixels before scaling.
// An OpenGL context must be current.
func New(width, height int, atlas *cellui.Atlas, cellW, cellH, scale float32) (*Backend, error) {
	b := &Backend{
		width:     width,
		height:    height,
		cellW:     cellW,
		cellH:     cellH,
		scale:     scale,
		atlasCols: atlas.Columns,
		atlasRows: atlas.Rows,
		verts:     make([]vertex, 0, 4096),
	}

	var err error
	b.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("opengl backend: %w", err)
	}

	b.projLoc = gl.GetUniformLocation(b.shader, gl.Str("projection\x00"))
	b.cellSizeLoc = gl.GetUniformLocation(b.shader, gl.Str("cellSize\x00"))
	b.atlasDimLoc = gl.GetUniformLocation(b.shader, gl.Str("atlasCells\x00"))
	b.atlasTexLoc = gl.GetUniformLocation(b.shader, gl.Str("atlasTexture\x00"))

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)

	stride := int32(unsafe.Sizeof(vertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(vertex{}.Tex))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(vertex{}.Fg))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(3, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(vertex{}.Bg))
	gl.EnableVertexAttribArray(3)

	gl.BindVertexArray(0)

	b.atlasTex = uploadAtlas(atlas)

	return b, nil
}

// uploadAtlas creates the atlas texture.
func uploadAtlas(atlas *cellui.Atlas) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	bounds := atlas.Pixels.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(bounds.Dx()), int32(bounds.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pixels.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// Resize updates the viewport size.
func (b *Backend) Resize(width, height int) {
	b.width = width
	b.height = height
}

// Draw uploads and renders one diff batch.
func (b *Backend) Draw(batch *cellui.Batch) error {
	if batch == nil || batch.Empty() {
		return nil
	}

	b.verts = b.verts[:0]
	for i := range batch.Pos {
		b.verts = append(b.verts, vertex{
			Pos: [2]float32{batch.Pos[i].X, batch.Pos[i].Y},
			Tex: [2]float32{batch.Tex[i].X, batch.Tex[i].Y},
			Fg:  batch.Fg[i],
			Bg:  batch.Bg[i],
		})
	}

	// Save GL state the draw touches.
	var lastProgram int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	blendEnabled := gl.IsEnabled(gl.BLEND)
	depthEnabled := gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled := gl.IsEnabled(gl.CULL_FACE)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)

	gl.UseProgram(b.shader)

	proj := orthoMatrix(0, float32(b.width), float32(b.height), 0, -1, 1)
	gl.UniformMatrix4fv(b.projLoc, 1, false, &proj[0])
	gl.Uniform2f(b.cellSizeLoc, b.cellW*b.scale, b.cellH*b.scale)
	gl.Uniform2f(b.atlasDimLoc, float32(b.atlasCols), float32(b.atlasRows))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, b.atlasTex)
	gl.Uniform1i(b.atlasTexLoc, 0)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(b.verts)*int(unsafe.Sizeof(vertex{})),
		gl.Ptr(b.verts), gl.STREAM_DRAW)

	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(b.verts)))

	// Restore state.
	gl.BindVertexArray(0)
	gl.UseProgram(uint32(lastProgram))
	if !blendEnabled {
		gl.Disable(gl.BLEND)
	}
	if depthEnabled {
		gl.Enable(gl.DEPTH_TEST)
	}
	if cullEnabled {
		gl.Enable(gl.CULL_FACE)
	}

	return nil
}

// Delete releases OpenGL resources.
func (b *Backend) Delete() {
	if b.atlasTex != 0 {
		gl.DeleteTextures(1, &b.atlasTex)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.shader != 0 {
		gl.DeleteProgram(b.shader)
	}
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader := gl.CreateShader(gl.VERTEX_SHADER)
	csource, free := gl.Strs(vertexSource)
	gl.ShaderSource(vertexShader, 1, csource, nil)
	free()
	gl.CompileShader(vertexShader)

	var status int32
	gl.GetShaderiv(vertexShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		return 0, fmt.Errorf("vertex shader compilation failed: %s", shaderLog(vertexShader))
	}

	fragmentShader := gl.CreateShader(gl.FRAGMENT_SHADER)
	csource, free = gl.Strs(fragmentSource)
	gl.ShaderSource(fragmentShader, 1, csource, nil)
	free()
	gl.CompileShader(fragmentShader)

	gl.GetShaderiv(fragmentShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		return 0, fmt.Errorf("fragment shader compilation failed: %s", shaderLog(fragmentShader))
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// shaderLog fetches a shader's info log.
func shaderLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return string(log)
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
