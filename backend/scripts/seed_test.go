package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSeedGraph(t *testing.T) {
	g, err := buildSeedGraph(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	persons, groups, posts, friendships := g.Stats()
	assert.Equal(t, len(seedPersons), persons)
	assert.Equal(t, len(seedGroups), groups)
	assert.Equal(t, len(seedPersons), posts)
	assert.Equal(t, len(seedFriendships), friendships)

	largest, ok := g.LargestGroup()
	require.True(t, ok)
	assert.Equal(t, "hiking", largest)

	feed, err := g.FriendPosts("bob", 1, 10)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "carol", feed[0].Author, "carol posted after alice")
}
