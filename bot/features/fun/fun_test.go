package fun

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickStaysInList(t *testing.T) {
	t.Parallel()

	feature := &Feature{rand: rand.New(rand.NewSource(7))}

	lists := map[string][]string{
		"dad jokes":   dadJokes,
		"vibes":       vibes,
		"fortunes":    fortunes,
		"waifus":      waifus,
		"husbandos":   husbandos,
		"drip levels": dripLevels,
	}

	for name, list := range lists {
		t.Run(name, func(t *testing.T) {
			for n := 0; n < 100; n++ {
				assert.Contains(t, list, feature.pick(list))
			}
		})
	}
}

func TestPickCoversList(t *testing.T) {
	t.Parallel()

	feature := &Feature{rand: rand.New(rand.NewSource(7))}

	seen := make(map[string]bool)
	for n := 0; n < 500; n++ {
		seen[feature.pick(waifus)] = true
	}
	assert.Len(t, seen, len(waifus), "every entry should be reachable")
}
