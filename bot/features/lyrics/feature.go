package lyrics

import (
	lyricsclient "fozi/lyrics"
)

// Feature handles the lyrics command
type Feature struct {
	client *lyricsclient.Client
}

// NewFeature creates a new lyrics feature instance
func NewFeature(client *lyricsclient.Client) *Feature {
	return &Feature{client: client}
}
