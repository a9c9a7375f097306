// Package facettest provides a recording facet.Driver for tests. Every
// driver call appends one line to Calls, assertions run against those
// lines instead of a real gpu.
package facettest

import (
	"fmt"
	"strings"

	"github.com/oliverbestmann/tessel/facet"
)

type Driver struct {
	// Calls holds one line per driver call, in call order.
	Calls []string

	// CompileLogs makes CreateShader fail for the mapped stage kinds,
	// returning the mapped diagnostic.
	CompileLogs map[facet.StageKind]string

	// LinkLog makes CreateProgram fail with this diagnostic if non empty.
	LinkLog string

	// InitErr makes Init fail.
	InitErr error

	nextHandle uint32
}

var _ facet.Driver = (*Driver)(nil)

// Record appends a line to Calls. Test doubles built around the driver can
// use it to interleave their own events with the recorded gpu calls.
func (d *Driver) Record(format string, args ...any) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

// CallsMatching returns all recorded calls that start with prefix.
func (d *Driver) CallsMatching(prefix string) []string {
	var matching []string
	for _, call := range d.Calls {
		if strings.HasPrefix(call, prefix) {
			matching = append(matching, call)
		}
	}

	return matching
}

// IndexOf returns the index of the first call starting with prefix, or -1.
func (d *Driver) IndexOf(prefix string) int {
	for idx, call := range d.Calls {
		if strings.HasPrefix(call, prefix) {
			return idx
		}
	}

	return -1
}

// Reset drops all recorded calls.
func (d *Driver) Reset() {
	d.Calls = nil
}

func (d *Driver) handle() uint32 {
	d.nextHandle++
	return d.nextHandle
}

func (d *Driver) Init() error {
	d.Record("init")
	return d.InitErr
}

func (d *Driver) VersionInfo() (string, string) {
	return "4.1 (recorded)", "facettest"
}

func (d *Driver) Close() {
	d.Record("close device")
}

func (d *Driver) CreateBuffer(data []byte) uint32 {
	h := d.handle()
	d.Record("create buffer %d size %d", h, len(data))
	return h
}

func (d *Driver) DeleteBuffer(buffer uint32) {
	d.Record("delete buffer %d", buffer)
}

func (d *Driver) CreateVertexArray(buffer uint32, layout facet.VertexLayout) uint32 {
	h := d.handle()
	d.Record("create vertex array %d buffer %d attrs %d", h, buffer, len(layout.Attributes))
	return h
}

func (d *Driver) BindVertexArray(array uint32) {
	d.Record("bind vertex array %d", array)
}

func (d *Driver) DeleteVertexArray(array uint32) {
	d.Record("delete vertex array %d", array)
}

func (d *Driver) CreateShader(kind facet.StageKind, source string) (uint32, string) {
	if log, ok := d.CompileLogs[kind]; ok {
		d.Record("compile %s failed", kind)
		return 0, log
	}

	h := d.handle()
	d.Record("compile %s %d", kind, h)
	return h, ""
}

func (d *Driver) DeleteShader(shader uint32) {
	d.Record("delete shader %d", shader)
}

func (d *Driver) CreateProgram(shaders []uint32) (uint32, string) {
	if d.LinkLog != "" {
		d.Record("link failed")
		return 0, d.LinkLog
	}

	h := d.handle()
	d.Record("link program %d shaders %v", h, shaders)
	return h, ""
}

func (d *Driver) UseProgram(program uint32) {
	d.Record("use program %d", program)
}

func (d *Driver) DeleteProgram(program uint32) {
	d.Record("delete program %d", program)
}

func (d *Driver) UniformLocation(program uint32, name string) int32 {
	d.Record("uniform location %d %s", program, name)
	return int32(len(name))
}

func (d *Driver) Uniform3f(location int32, r, g, b float32) {
	d.Record("uniform3f %d %.2f %.2f %.2f", location, r, g, b)
}

func (d *Driver) PatchVertices(count int32) {
	d.Record("patch vertices %d", count)
}

func (d *Driver) PatchLevels(inner [2]float32, outer [4]float32) {
	d.Record("patch levels %v %v", inner, outer)
}

func (d *Driver) PolygonLineMode(enabled bool) {
	d.Record("polygon line %v", enabled)
}

func (d *Driver) Viewport(x, y, width, height int32) {
	d.Record("viewport %d %d %d %d", x, y, width, height)
}

func (d *Driver) Clear(color facet.Color) {
	r, g, b, a := color.Components()
	d.Record("clear %.2f %.2f %.2f %.2f", r, g, b, a)
}

func (d *Driver) DrawPatches(first, count int32) {
	d.Record("draw patches %d %d", first, count)
}
