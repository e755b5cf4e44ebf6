// Package config centralizes the animation's compiled-in parameters.
package config

import (
	"time"

	"github.com/tomz197/asciiwave/internal/wave"
)

// Frame pacing
const (
	TargetFPS  = 100
	FrameCount = 1000
	FrameTime  = time.Duration(1000/TargetFPS) * time.Millisecond // Fixed sleep, not corrected for render time
	TimeStep   = 1.0 / TargetFPS                                  // Simulation seconds per frame
)

// Wave sources
var (
	SourceX = wave.Source{WaveLength: 0.8, MaxHeight: 0.5}
	SourceY = wave.Source{WaveLength: 1.2, MaxHeight: 0.4}
)

// Initial wave state
var (
	InitialX = wave.Wave{X: 0.0, Speed: 1.0}
	InitialY = wave.Wave{X: 1.0, Speed: -0.5}
)
