package quad

import (
	_ "embed"
)

// Default shader sources of the quad pipeline. There is no default
// tessellation control stage, the patch levels configured on the device
// apply. Replace individual stages via BatchOptions.
var (
	//go:embed quad.vert
	VertexSource string

	//go:embed quad.tese
	TessEvalSource string

	//go:embed quad.frag
	FragmentSource string
)
