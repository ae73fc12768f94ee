package leaderboard

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pagerButtons(t *testing.T, components []discordgo.MessageComponent) (prev, next *discordgo.Button) {
	t.Helper()

	require.Len(t, components, 1)
	row, ok := components[0].(*discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 2)

	prev, ok = row.Components[0].(*discordgo.Button)
	require.True(t, ok)
	next, ok = row.Components[1].(*discordgo.Button)
	require.True(t, ok)
	return prev, next
}

func TestPagerComponents_SinglePageDisablesBoth(t *testing.T) {
	t.Parallel()

	prev, next := pagerButtons(t, pagerComponents("abc", 0, 1))
	assert.True(t, prev.Disabled, "Previous should be disabled on the first page")
	assert.True(t, next.Disabled, "Next should be disabled on the last page")
}

func TestPagerComponents_FirstPageDisablesPrevious(t *testing.T) {
	t.Parallel()

	prev, next := pagerButtons(t, pagerComponents("abc", 0, 3))
	assert.True(t, prev.Disabled)
	assert.False(t, next.Disabled)
}

func TestPagerComponents_LastPageDisablesNext(t *testing.T) {
	t.Parallel()

	prev, next := pagerButtons(t, pagerComponents("abc", 2, 3))
	assert.False(t, prev.Disabled)
	assert.True(t, next.Disabled)
}

func TestPagerComponents_MiddlePageEnablesBoth(t *testing.T) {
	t.Parallel()

	prev, next := pagerButtons(t, pagerComponents("abc", 1, 3))
	assert.False(t, prev.Disabled)
	assert.False(t, next.Disabled)
}
