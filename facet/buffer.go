package facet

// Buffer is a vertex buffer that has been uploaded to the gpu.
type Buffer struct {
	dev    *Device
	handle uint32
	size   int
}

// Size returns the size of the uploaded data in bytes.
func (b Buffer) Size() int {
	return b.size
}

func (b *Buffer) Release() {
	if b.handle != 0 {
		b.dev.gl.DeleteBuffer(b.handle)
		b.handle = 0
	}
}

// VertexArray ties a buffer to a vertex layout.
type VertexArray struct {
	dev    *Device
	handle uint32
}

func (v *VertexArray) Release() {
	if v.handle != 0 {
		v.dev.gl.DeleteVertexArray(v.handle)
		v.handle = 0
	}
}
