package facet

import (
	"fmt"
	"log/slog"
)

// Driver is the raw call surface of the gpu. The real implementation is
// returned by GLDriver, tests substitute their own recording drivers.
type Driver interface {
	Init() error
	VersionInfo() (version, renderer string)
	Close()

	CreateBuffer(data []byte) uint32
	DeleteBuffer(buffer uint32)

	CreateVertexArray(buffer uint32, layout VertexLayout) uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)

	CreateShader(kind StageKind, source string) (handle uint32, log string)
	DeleteShader(shader uint32)
	CreateProgram(shaders []uint32) (handle uint32, log string)
	UseProgram(program uint32)
	DeleteProgram(program uint32)
	UniformLocation(program uint32, name string) int32
	Uniform3f(location int32, r, g, b float32)

	PatchVertices(count int32)
	PatchLevels(inner [2]float32, outer [4]float32)
	PolygonLineMode(enabled bool)

	Viewport(x, y, width, height int32)
	Clear(color Color)
	DrawPatches(first, count int32)
}

// Device encapsulates the state of the rendering context on top of a Driver.
type Device struct {
	gl Driver

	// Notify is called for failures that should reach the user even without
	// a terminal, like shader diagnostics. May be nil.
	Notify func(title, text string)
}

func Open(driver Driver) (*Device, error) {
	if err := driver.Init(); err != nil {
		return nil, fmt.Errorf("initialize opengl: %w", err)
	}

	version, renderer := driver.VersionInfo()
	slog.Info("OpenGL context ready",
		slog.String("version", version),
		slog.String("renderer", renderer),
	)

	return &Device{gl: driver}, nil
}

func (d *Device) Release() {
	if d.gl != nil {
		d.gl.Close()
		d.gl = nil
	}
}

func (d *Device) CreateVertexBuffer(data []byte) Buffer {
	handle := d.gl.CreateBuffer(data)

	slog.Debug("Upload vertex buffer",
		slog.Int("size", len(data)),
	)

	return Buffer{dev: d, handle: handle, size: len(data)}
}

func (d *Device) CreateVertexArray(buffer Buffer, layout VertexLayout) VertexArray {
	handle := d.gl.CreateVertexArray(buffer.handle, layout)
	return VertexArray{dev: d, handle: handle}
}

func (d *Device) BindVertexArray(array VertexArray) {
	d.gl.BindVertexArray(array.handle)
}

func (d *Device) UseProgram(program Program) {
	d.gl.UseProgram(program.Handle)
}

func (d *Device) UniformLocation(program Program, name string) int32 {
	return d.gl.UniformLocation(program.Handle, name)
}

// SetUniformRGB writes the rgb components of the color to a vec3 uniform of
// the program currently in use.
func (d *Device) SetUniformRGB(location int32, color Color) {
	d.gl.Uniform3f(location, color.Red(), color.Green(), color.Blue())
}

func (d *Device) SetViewport(x, y, width, height int32) {
	d.gl.Viewport(x, y, width, height)
}

func (d *Device) SetPatchVertices(count int32) {
	d.gl.PatchVertices(count)
}

// SetDefaultTessLevels installs the tessellation levels used when the
// pipeline has no tessellation control stage. Values are passed to the gpu
// verbatim.
func (d *Device) SetDefaultTessLevels(inner [2]float32, outer [4]float32) {
	d.gl.PatchLevels(inner, outer)
}

func (d *Device) SetPolygonLineMode(enabled bool) {
	d.gl.PolygonLineMode(enabled)
}

func (d *Device) Clear(color Color) {
	d.gl.Clear(color)
}

func (d *Device) DrawPatches(first, count int32) {
	d.gl.DrawPatches(first, count)
}

func (d *Device) notify(title, text string) {
	if d.Notify != nil {
		d.Notify(title, text)
	}
}
