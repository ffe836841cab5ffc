package gfx

import (
	"github.com/kjkrol/raymarch/pkg/scene"
	"github.com/kjkrol/raymarch/pkg/shader"
)

// RendererConfig describes what the renderer draws.
// Shaders must declare the attribute and uniforms named in package shader;
// uniforms the driver reports inactive are skipped with a warning.
type RendererConfig struct {
	Shaders shader.Sources
	Scene   scene.Scene

	// StatsWindow is the number of frame durations averaged for the FPS
	// report, logged every StatsEvery frames. Zero StatsEvery disables the
	// report.
	StatsWindow int
	StatsEvery  int
}

// DefaultRendererConfig renders the default scene with the embedded shaders.
func DefaultRendererConfig() RendererConfig {
	return RendererConfig{
		Shaders:     shader.Default(),
		Scene:       scene.Default(),
		StatsWindow: 120,
		StatsEvery:  600,
	}
}
