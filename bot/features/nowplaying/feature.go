package nowplaying

import (
	"fozi/render"
)

// Feature renders a now-playing card from the member's Spotify presence
type Feature struct {
	generator *render.Generator
}

// NewFeature creates a new now-playing feature instance
func NewFeature(generator *render.Generator) *Feature {
	return &Feature{generator: generator}
}
