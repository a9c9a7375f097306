package quad

import (
	"structs"
	"unsafe"

	"github.com/oliverbestmann/tessel/facet"
	"github.com/oliverbestmann/tessel/glm"
)

// Vertex is a single grid point. The gpu expands every vertex into a
// screen aligned quad during tessellation.
type Vertex struct {
	_ structs.HostLayout

	// Center of the quad in clip space
	Position glm.Vec2f

	// Half extent of the quad in clip space units
	Size float32

	// RGBA, 8 bit per channel, normalized to [0, 1] on the gpu
	Color [4]uint8
}

// Layout describes the Vertex memory to the gpu.
func Layout() facet.VertexLayout {
	return facet.VertexLayout{
		ArrayStride: unsafe.Sizeof(Vertex{}),
		Attributes: []facet.VertexAttribute{
			{
				// position
				Format:         facet.Float32x2,
				Offset:         unsafe.Offsetof(Vertex{}.Position),
				ShaderLocation: 0,
			},
			{
				// size
				Format:         facet.Float32,
				Offset:         unsafe.Offsetof(Vertex{}.Size),
				ShaderLocation: 1,
			},
			{
				// color
				Format:         facet.Unorm8x4,
				Offset:         unsafe.Offsetof(Vertex{}.Color),
				ShaderLocation: 2,
			},
		},
	}
}
