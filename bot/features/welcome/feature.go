package welcome

import (
	"fozi/render"
)

// Feature posts a welcome banner when a member joins the guild
type Feature struct {
	generator *render.Generator
	channelID string
}

// NewFeature creates a new welcome feature instance. An empty channel ID
// disables the feature.
func NewFeature(generator *render.Generator, channelID string) *Feature {
	return &Feature{
		generator: generator,
		channelID: channelID,
	}
}
