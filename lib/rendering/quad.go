package rendering

import "github.com/go-gl/mathgl/mgl32"

// Quad returns the static quad: four corner vertices and six indices
// forming two triangles that share the (1, 3) edge.
func Quad() ([]mgl32.Vec3, []uint32) {
	vertices := []mgl32.Vec3{
		{0.5, 0.5, 0.0},   // top right
		{0.5, -0.5, 0.0},  // bottom right
		{-0.5, -0.5, 0.0}, // bottom left
		{-0.5, 0.5, 0.0},  // top left
	}

	indices := []uint32{
		0, 1, 3, // first triangle
		1, 2, 3, // second triangle
	}

	return vertices, indices
}
