package facet_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/oliverbestmann/tessel/facet"
	"github.com/oliverbestmann/tessel/facet/facettest"
)

func openDevice(t *testing.T, driver *facettest.Driver) *facet.Device {
	t.Helper()

	dev, err := facet.Open(driver)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	return dev
}

func TestOpenInitError(t *testing.T) {
	driver := &facettest.Driver{InitErr: errors.New("no context")}

	_, err := facet.Open(driver)
	if err == nil {
		t.Fatal("Open() succeeded with a failing driver")
	}

	if !strings.Contains(err.Error(), "initialize opengl") {
		t.Errorf("Open() error = %q", err)
	}
}

func TestCompileStageFailure(t *testing.T) {
	driver := &facettest.Driver{
		CompileLogs: map[facet.StageKind]string{
			facet.StageTessEval: "0:12: syntax error",
		},
	}

	dev := openDevice(t, driver)

	var notified []string
	dev.Notify = func(title, text string) {
		notified = append(notified, title+": "+text)
	}

	stage := dev.CompileStage(facet.StageTessEval, "broken source")

	if stage.Valid() {
		t.Error("stage is valid after a failed compile")
	}

	if stage.Handle != 0 {
		t.Errorf("stage.Handle = %d, want 0", stage.Handle)
	}

	if stage.Log != "0:12: syntax error" {
		t.Errorf("stage.Log = %q", stage.Log)
	}

	want := []string{"Shader compilation failed: 0:12: syntax error"}
	if len(notified) != 1 || notified[0] != want[0] {
		t.Errorf("notifications = %v, want %v", notified, want)
	}
}

func TestCompileStageSuccess(t *testing.T) {
	driver := &facettest.Driver{}
	dev := openDevice(t, driver)

	dev.Notify = func(title, text string) {
		t.Errorf("unexpected notification: %s: %s", title, text)
	}

	stage := dev.CompileStage(facet.StageVertex, "void main() {}")

	if !stage.Valid() {
		t.Fatalf("stage invalid: %+v", stage)
	}

	if stage.Kind != facet.StageVertex {
		t.Errorf("stage.Kind = %v", stage.Kind)
	}

	if stage.Log != "" {
		t.Errorf("stage.Log = %q, want empty", stage.Log)
	}
}

func TestLinkProgramSkipsInvalidStages(t *testing.T) {
	driver := &facettest.Driver{
		CompileLogs: map[facet.StageKind]string{
			facet.StageVertex: "bad vertex",
		},
	}

	dev := openDevice(t, driver)

	vertex := dev.CompileStage(facet.StageVertex, "broken")
	fragment := dev.CompileStage(facet.StageFragment, "ok")

	program := dev.LinkProgram(vertex, fragment)
	if !program.Valid() {
		t.Fatalf("program invalid: %+v", program)
	}

	// only the fragment handle may reach the driver
	links := driver.CallsMatching("link program")
	if len(links) != 1 {
		t.Fatalf("link calls = %v", links)
	}

	if !strings.HasSuffix(links[0], "shaders [1]") {
		t.Errorf("link call = %q, want only the valid fragment handle", links[0])
	}
}

func TestLinkProgramFailure(t *testing.T) {
	driver := &facettest.Driver{LinkLog: "no vertex stage"}
	dev := openDevice(t, driver)

	var notified int
	dev.Notify = func(title, text string) {
		notified++

		if title != "Shader program link failed" {
			t.Errorf("notification title = %q", title)
		}
	}

	stage := dev.CompileStage(facet.StageFragment, "ok")
	program := dev.LinkProgram(stage)

	if program.Valid() {
		t.Error("program is valid after a failed link")
	}

	if program.Log != "no vertex stage" {
		t.Errorf("program.Log = %q", program.Log)
	}

	if notified != 1 {
		t.Errorf("notifications = %d, want 1", notified)
	}
}

func TestLinkProgramKeepsStagesAlive(t *testing.T) {
	driver := &facettest.Driver{}
	dev := openDevice(t, driver)

	vertex := dev.CompileStage(facet.StageVertex, "v")
	fragment := dev.CompileStage(facet.StageFragment, "f")
	dev.LinkProgram(vertex, fragment)

	if calls := driver.CallsMatching("delete shader"); len(calls) != 0 {
		t.Errorf("stages deleted during link: %v", calls)
	}
}
