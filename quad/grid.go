package quad

import (
	"math/rand/v2"

	"github.com/oliverbestmann/tessel/facet"
	"github.com/oliverbestmann/tessel/glm"
)

// CellRect returns the clip space rectangle of one grid cell. The grid
// splits clip space into rows by cols equally sized cells, cell (0, 0)
// in the bottom left corner.
func CellRect(rows, cols int, row, col int) facet.Rectangle2f {
	size := glm.Vec2f{
		2 / float32(cols),
		2 / float32(rows),
	}

	pos := glm.Vec2f{
		float32(col)*size[0] - 1,
		float32(row)*size[1] - 1,
	}

	return facet.RectangleFromSize(pos, size)
}

// GenerateFunc builds one vertex per grid cell, row by row. The callback
// picks size and color for the vertex placed at the center of the cell.
func GenerateFunc(rows, cols int, fn func(cell facet.Rectangle2f) (size float32, color [4]uint8)) []Vertex {
	vertices := make([]Vertex, 0, rows*cols)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cell := CellRect(rows, cols, row, col)

			size, color := fn(cell)

			vertices = append(vertices, Vertex{
				Position: cell.Center(),
				Size:     size,
				Color:    color,
			})
		}
	}

	return vertices
}

// Generate builds a rows by cols grid with sizes and colors drawn from rng.
// Sizes fall into [0.05, 0.09), color channels into [96, 224) so the quads
// stay visible against a dark background.
func Generate(rows, cols int, rng *rand.Rand) []Vertex {
	return GenerateFunc(rows, cols, func(facet.Rectangle2f) (float32, [4]uint8) {
		size := 0.05 + 0.04*rng.Float32()

		color := [4]uint8{
			uint8(96 + rng.IntN(128)),
			uint8(96 + rng.IntN(128)),
			uint8(96 + rng.IntN(128)),
			255,
		}

		return size, color
	})
}
