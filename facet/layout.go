package facet

// AttributeFormat describes the memory layout of one vertex attribute.
type AttributeFormat uint32

const (
	Float32 AttributeFormat = iota
	Float32x2
	Float32x3
	Float32x4

	// four bytes, normalized to [0, 1] floats in the shader
	Unorm8x4
)

type VertexAttribute struct {
	Format         AttributeFormat
	Offset         uintptr
	ShaderLocation uint32
}

// VertexLayout describes the per vertex memory of a vertex buffer. Offsets
// and stride are in bytes, usually taken from unsafe.Offsetof and
// unsafe.Sizeof of the vertex struct.
type VertexLayout struct {
	ArrayStride uintptr
	Attributes  []VertexAttribute
}
