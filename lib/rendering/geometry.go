package rendering

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const f32 = 4

// Layout describes how attribute slot Attrib reads the vertex buffer.
// Immutable once attached to a BufferSet.
type Layout struct {
	Attrib     uint32
	Components int32
	Normalized bool
	Stride     int32
	Offset     uintptr
}

// PositionLayout is the layout for position-only vertices: slot 0,
// three tightly packed float32 components.
func PositionLayout() Layout {
	return Layout{
		Attrib:     0,
		Components: 3,
		Normalized: false,
		Stride:     3 * f32,
		Offset:     0,
	}
}

// BufferSet groups a vertex buffer, an index buffer and one vertex
// layout under a single vertex array object. Write-once: there is no
// update path, a change means building a new set.
type BufferSet struct {
	vao uint32
	vbo uint32
	ebo uint32

	indexCount int32
	released   bool
}

// NewBufferSet uploads the given vertices and indices as static GL
// buffers and records the layout on attribute slot 0 of a fresh VAO.
// Every index must address an existing vertex.
func NewBufferSet(vertices []mgl32.Vec3, indices []uint32, layout Layout) (*BufferSet, error) {
	err := checkIndices(len(vertices), indices)
	if err != nil {
		return nil, err
	}

	flat := flatten(vertices)

	b := &BufferSet{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.GenBuffers(1, &b.ebo)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)

	gl.BufferData(gl.ARRAY_BUFFER, len(flat)*f32, gl.Ptr(flat), gl.STATIC_DRAW)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(layout.Attrib, layout.Components, gl.FLOAT, layout.Normalized, layout.Stride, layout.Offset)
	gl.EnableVertexAttribArray(layout.Attrib)

	// the element buffer stays recorded in the VAO
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return b, nil
}

// Bind makes the set current for the next draw call.
func (b *BufferSet) Bind() {
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
}

func (b *BufferSet) IndexCount() int32 {
	return b.indexCount
}

// Delete releases the VAO and both buffers. Safe to call more than
// once; only the first call touches the GL.
func (b *BufferSet) Delete() {
	if b.released {
		return
	}
	b.released = true
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteBuffers(1, &b.ebo)
}

func checkIndices(numVertices int, indices []uint32) error {
	if numVertices < 1 {
		return fmt.Errorf("at least one vertex is needed")
	}
	if len(indices) < 1 {
		return fmt.Errorf("at least one index is needed")
	}
	for i, idx := range indices {
		if idx >= uint32(numVertices) {
			return fmt.Errorf("index %d refers to vertex %d, but there are only %d vertices", i, idx, numVertices)
		}
	}
	return nil
}

func flatten(vertices []mgl32.Vec3) []float32 {
	flat := make([]float32, 0, len(vertices)*3)
	for _, v := range vertices {
		flat = append(flat, v.X(), v.Y(), v.Z())
	}
	return flat
}
