package facet

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLDriver returns the Driver backed by the process wide OpenGL 4.1 core
// context. The context must be current on the calling thread before the
// device is opened.
func GLDriver() Driver {
	return glDriver{}
}

type glDriver struct{}

func (glDriver) Init() error {
	return gl.Init()
}

func (glDriver) VersionInfo() (string, string) {
	version := gl.GoStr(gl.GetString(gl.VERSION))
	renderer := gl.GoStr(gl.GetString(gl.RENDERER))
	return version, renderer
}

func (glDriver) Close() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (glDriver) CreateBuffer(data []byte) uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)

	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(data), gl.STATIC_DRAW)
	}

	return buffer
}

func (glDriver) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (glDriver) CreateVertexArray(buffer uint32, layout VertexLayout) uint32 {
	var array uint32
	gl.GenVertexArrays(1, &array)
	gl.BindVertexArray(array)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)

	for _, attr := range layout.Attributes {
		size, xtype, normalized := glAttribFormat(attr.Format)

		gl.EnableVertexAttribArray(attr.ShaderLocation)
		gl.VertexAttribPointerWithOffset(
			attr.ShaderLocation,
			size,
			xtype,
			normalized,
			int32(layout.ArrayStride),
			attr.Offset,
		)
	}

	gl.BindVertexArray(0)
	return array
}

func (glDriver) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (glDriver) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

func (glDriver) CreateShader(kind StageKind, source string) (uint32, string) {
	shader := gl.CreateShader(glShaderType(kind))

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()

	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		gl.DeleteShader(shader)
		return 0, strings.TrimRight(log, "\x00")
	}

	return shader, ""
}

func (glDriver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (glDriver) CreateProgram(shaders []uint32) (uint32, string) {
	program := gl.CreateProgram()

	for _, shader := range shaders {
		gl.AttachShader(program, shader)
	}

	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		gl.DeleteProgram(program)
		return 0, strings.TrimRight(log, "\x00")
	}

	return program, ""
}

func (glDriver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (glDriver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (glDriver) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (glDriver) Uniform3f(location int32, r, g, b float32) {
	gl.Uniform3f(location, r, g, b)
}

func (glDriver) PatchVertices(count int32) {
	gl.PatchParameteri(gl.PATCH_VERTICES, count)
}

func (glDriver) PatchLevels(inner [2]float32, outer [4]float32) {
	gl.PatchParameterfv(gl.PATCH_DEFAULT_INNER_LEVEL, &inner[0])
	gl.PatchParameterfv(gl.PATCH_DEFAULT_OUTER_LEVEL, &outer[0])
}

func (glDriver) PolygonLineMode(enabled bool) {
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (glDriver) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (glDriver) Clear(color Color) {
	r, g, b, a := color.Components()
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
}

func (glDriver) DrawPatches(first, count int32) {
	gl.DrawArrays(gl.PATCHES, first, count)
}

func glShaderType(kind StageKind) uint32 {
	switch kind {
	case StageVertex:
		return gl.VERTEX_SHADER
	case StageTessControl:
		return gl.TESS_CONTROL_SHADER
	case StageTessEval:
		return gl.TESS_EVALUATION_SHADER
	case StageFragment:
		return gl.FRAGMENT_SHADER
	}

	panic(fmt.Sprintf("unknown shader stage: %d", kind))
}

func glAttribFormat(format AttributeFormat) (size int32, xtype uint32, normalized bool) {
	switch format {
	case Float32:
		return 1, gl.FLOAT, false
	case Float32x2:
		return 2, gl.FLOAT, false
	case Float32x3:
		return 3, gl.FLOAT, false
	case Float32x4:
		return 4, gl.FLOAT, false
	case Unorm8x4:
		return 4, gl.UNSIGNED_BYTE, true
	}

	panic(fmt.Sprintf("unknown attribute format: %d", format))
}
