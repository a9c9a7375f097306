package facet

import (
	"github.com/hashicorp/golang-lru/v2"
)

// CachedProgram is a linked program together with its stage objects and a
// small cache of uniform locations.
type CachedProgram struct {
	Program Program

	dev      *Device
	stages   []Stage
	uniforms *lru.Cache[string, int32]
}

// UniformLocation looks up a uniform by name, memoizing the location.
func (cp CachedProgram) UniformLocation(name string) int32 {
	location, ok := cp.uniforms.Get(name)
	if ok {
		return location
	}

	location = cp.dev.UniformLocation(cp.Program, name)
	cp.uniforms.Add(name, location)

	return location
}

type ProgramConfig interface {
	comparable

	// Specialize compiles and links the program for the current
	// ProgramConfig. The returned stages stay alive until the cache
	// releases the program.
	Specialize(dev *Device) (Program, []Stage)
}

type ProgramCache[C ProgramConfig] struct {
	dev   *Device
	cache *lru.Cache[C, CachedProgram]
}

func NewProgramCache[C ProgramConfig](dev *Device) *ProgramCache[C] {
	cache, _ := lru.NewWithEvict[C, CachedProgram](16, releaseProgramOnEviction[C])

	return &ProgramCache[C]{
		dev:   dev,
		cache: cache,
	}
}

// Get returns the program for the given config, building it on the first
// use. Broken programs are cached as well, so a failing shader is compiled
// and reported once instead of once per frame.
func (p *ProgramCache[C]) Get(conf C) CachedProgram {
	cached, ok := p.cache.Get(conf)
	if ok {
		return cached
	}

	program, stages := conf.Specialize(p.dev)

	uniforms, _ := lru.New[string, int32](16)

	pc := CachedProgram{
		Program:  program,
		dev:      p.dev,
		stages:   stages,
		uniforms: uniforms,
	}

	p.cache.Add(conf, pc)

	return pc
}

// Purge releases all cached programs and their stages.
func (p *ProgramCache[C]) Purge() {
	p.cache.Purge()
}

func releaseProgramOnEviction[C any](_config C, cp CachedProgram) {
	cp.uniforms.Purge()

	// stage objects go first, then the program they are attached to
	for _, stage := range cp.stages {
		if stage.Valid() {
			cp.dev.gl.DeleteShader(stage.Handle)
		}
	}

	if cp.Program.Valid() {
		cp.dev.gl.DeleteProgram(cp.Program.Handle)
	}
}
