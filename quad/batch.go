package quad

import (
	"log/slog"

	"github.com/oliverbestmann/tessel/facet"
)

// Tessellation levels applied when a batch has no control stage. Level one
// subdivides a patch into exactly the four corners of one quad.
const DefaultInnerLevel = 1.0
const DefaultOuterLevel = 1.0

// quadPipeline identifies one compiled shader pipeline by its sources.
type quadPipeline struct {
	vertex      string
	tessControl string
	tessEval    string
	fragment    string
}

func (conf quadPipeline) Specialize(dev *facet.Device) (facet.Program, []facet.Stage) {
	slog.Info("Compile quad pipeline",
		slog.Bool("tessControl", conf.tessControl != ""),
	)

	stages := make([]facet.Stage, 0, 4)

	stages = append(stages, dev.CompileStage(facet.StageVertex, conf.vertex))

	if conf.tessControl != "" {
		stages = append(stages, dev.CompileStage(facet.StageTessControl, conf.tessControl))
	}

	stages = append(stages,
		dev.CompileStage(facet.StageTessEval, conf.tessEval),
		dev.CompileStage(facet.StageFragment, conf.fragment),
	)

	return dev.LinkProgram(stages...), stages
}

// BatchOptions configure a Batch. The zero value renders with the built in
// shaders and tessellation level one, a single quad per grid point.
type BatchOptions struct {
	// shader sources, the package defaults apply where empty. A
	// tessellation control stage is only present when TessControl is set.
	Vertex      string
	TessControl string
	TessEval    string
	Fragment    string

	// tessellation levels applied while there is no control stage,
	// zero means one
	InnerLevel float32
	OuterLevel float32
}

// Batch renders a fixed set of grid points as tessellated quads. Every
// frame draws two passes, a filled one and a wireframe one tracing the
// tessellated geometry.
type Batch struct {
	dev      *facet.Device
	programs *facet.ProgramCache[quadPipeline]
	pipeline quadPipeline

	buffer facet.Buffer
	array  facet.VertexArray
	count  int32

	// FillColor is added to every fragment of the filled pass.
	FillColor facet.Color

	// LineColor is added to every fragment of the wireframe pass.
	LineColor facet.Color
}

func NewBatch(dev *facet.Device, vertices []Vertex, opts BatchOptions) *Batch {
	if opts.Vertex == "" {
		opts.Vertex = VertexSource
	}

	if opts.TessEval == "" {
		opts.TessEval = TessEvalSource
	}

	if opts.Fragment == "" {
		opts.Fragment = FragmentSource
	}

	if opts.InnerLevel == 0 {
		opts.InnerLevel = DefaultInnerLevel
	}

	if opts.OuterLevel == 0 {
		opts.OuterLevel = DefaultOuterLevel
	}

	slog.Debug("Create quad batch",
		slog.Int("vertexCount", len(vertices)),
	)

	buffer := dev.CreateVertexBuffer(facet.ToBytes(vertices))
	array := dev.CreateVertexArray(buffer, Layout())

	inner, outer := opts.InnerLevel, opts.OuterLevel
	dev.SetDefaultTessLevels(
		[2]float32{inner, inner},
		[4]float32{outer, outer, outer, outer},
	)

	b := &Batch{
		dev:      dev,
		programs: facet.NewProgramCache[quadPipeline](dev),
		pipeline: quadPipeline{
			vertex:      opts.Vertex,
			tessControl: opts.TessControl,
			tessEval:    opts.TessEval,
			fragment:    opts.Fragment,
		},
		buffer: buffer,
		array:  array,
		count:  int32(len(vertices)),

		FillColor: facet.ColorBlack,
		LineColor: facet.ColorWhite,
	}

	// compile eagerly so shader diagnostics show up before the first frame
	b.programs.Get(b.pipeline)

	return b
}

func (b *Batch) Draw() {
	program := b.programs.Get(b.pipeline)

	b.dev.UseProgram(program.Program)
	b.dev.BindVertexArray(b.array)

	// one grid point per patch
	b.dev.SetPatchVertices(1)

	location := program.UniformLocation("ConstantColor")

	b.dev.SetUniformRGB(location, b.FillColor)
	b.dev.DrawPatches(0, b.count)

	b.dev.SetPolygonLineMode(true)
	b.dev.SetUniformRGB(location, b.LineColor)
	b.dev.DrawPatches(0, b.count)
	b.dev.SetPolygonLineMode(false)
}

func (b *Batch) Release() {
	b.programs.Purge()
	b.buffer.Release()
	b.array.Release()
}
