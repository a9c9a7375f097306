package facet

import "log/slog"

//go:generate go tool stringer -type=StageKind -trimprefix=Stage

type StageKind uint32

const (
	StageVertex StageKind = iota
	StageTessControl
	StageTessEval
	StageFragment
)

// Stage is the result of compiling one shader stage. A failed compile
// leaves Handle at zero and carries the driver diagnostic in Log.
type Stage struct {
	Kind   StageKind
	Handle uint32
	Log    string
}

func (s Stage) Valid() bool {
	return s.Handle != 0
}

// Program is the result of linking stages. A failed link leaves Handle at
// zero and carries the driver diagnostic in Log.
type Program struct {
	Handle uint32
	Log    string
}

func (p Program) Valid() bool {
	return p.Handle != 0
}

// CompileStage compiles a single shader stage. Compile failures are not
// errors, the returned Stage is invalid and the diagnostic has been
// surfaced through the log and the Notify hook.
func (d *Device) CompileStage(kind StageKind, source string) Stage {
	handle, log := d.gl.CreateShader(kind, source)

	if handle == 0 {
		slog.Error("Shader stage failed to compile",
			slog.String("stage", kind.String()),
			slog.String("log", log),
		)

		d.notify("Shader compilation failed", log)
	}

	return Stage{Kind: kind, Handle: handle, Log: log}
}

// LinkProgram links the valid stages into a program. Stages that failed to
// compile are skipped, so a partially broken pipeline fails at link or at
// draw instead of stopping the process. The stage objects stay alive, the
// caller releases them together with the program.
func (d *Device) LinkProgram(stages ...Stage) Program {
	handles := make([]uint32, 0, len(stages))
	for _, stage := range stages {
		if stage.Valid() {
			handles = append(handles, stage.Handle)
		}
	}

	handle, log := d.gl.CreateProgram(handles)

	if handle == 0 {
		slog.Error("Shader program failed to link",
			slog.String("log", log),
		)

		d.notify("Shader program link failed", log)
	}

	return Program{Handle: handle, Log: log}
}
