package rendering

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cr1ms0nh3ad/quadwire/lib/metrics"
	"github.com/cr1ms0nh3ad/quadwire/lib/rendering/shaders"
	"github.com/cr1ms0nh3ad/quadwire/lib/utils"
)

// ClearRenderer clears the framebuffer to a fixed colour and draws
// nothing. It is the whole renderer of the window-only program.
type ClearRenderer struct {
	colour mgl32.Vec4
}

func NewClearRenderer(colour utils.Colour) *ClearRenderer {
	return &ClearRenderer{colour: colour.Vec4()}
}

func (r *ClearRenderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (r *ClearRenderer) Clear() {
	gl.ClearColor(r.colour.X(), r.colour.Y(), r.colour.Z(), r.colour.W())
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *ClearRenderer) Draw() {}

// QuadRenderer draws an indexed buffer set with a shader program,
// optionally in wireframe mode.
type QuadRenderer struct {
	ClearRenderer

	program *shaders.Program
	buffers *BufferSet
}

func NewQuadRenderer(colour utils.Colour, program *shaders.Program, buffers *BufferSet, wireframe bool) *QuadRenderer {
	r := &QuadRenderer{
		ClearRenderer: ClearRenderer{colour: colour.Vec4()},
		program:       program,
		buffers:       buffers,
	}
	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	return r
}

func (r *QuadRenderer) Draw() {
	r.program.Use()
	r.buffers.Bind()
	gl.DrawElements(gl.TRIANGLES, r.buffers.IndexCount(), gl.UNSIGNED_INT, gl.PtrOffset(0))
	metrics.DrawCalls.Inc()
}

// SwapProgram replaces the bound program after a shader hot reload,
// deleting the one it replaces.
func (r *QuadRenderer) SwapProgram(program *shaders.Program) {
	r.program.Delete()
	r.program = program
}

// Delete releases the current program and the buffer set.
func (r *QuadRenderer) Delete() {
	r.program.Delete()
	r.buffers.Delete()
}
