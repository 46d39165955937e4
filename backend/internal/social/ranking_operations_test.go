package social

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankings_EmptyGraph(t *testing.T) {
	g := New()

	queries := map[string]func() (string, bool){
		"PersonWithMostFriends":          g.PersonWithMostFriends,
		"PersonWithMostFriendsOfFriends": g.PersonWithMostFriendsOfFriends,
		"LargestGroup":                   g.LargestGroup,
		"PersonInMostGroups":             g.PersonInMostGroups,
	}
	for name, query := range queries {
		t.Run(name, func(t *testing.T) {
			got, ok := query()
			assert.False(t, ok)
			assert.Empty(t, got)
		})
	}
}

func TestPersonWithMostFriends(t *testing.T) {
	g := newTestGraph(t, "alice", "bob", "carol", "dave")
	befriend(t, g,
		[2]string{"alice", "bob"},
		[2]string{"carol", "bob"},
		[2]string{"dave", "bob"},
		[2]string{"alice", "carol"},
	)

	got, ok := g.PersonWithMostFriends()
	require.True(t, ok)
	assert.Equal(t, "bob", got)
}

func TestPersonWithMostFriends_TieBreak(t *testing.T) {
	g := newTestGraph(t, "zed", "mia", "amy")
	// zed and amy both end up with one friend, mia with two
	befriend(t, g, [2]string{"zed", "mia"}, [2]string{"amy", "mia"})

	got, ok := g.PersonWithMostFriends()
	require.True(t, ok)
	assert.Equal(t, "mia", got)

	h := newTestGraph(t, "zed", "amy", "mia")
	befriend(t, h, [2]string{"zed", "amy"})
	for i := 0; i < 10; i++ {
		got, ok := h.PersonWithMostFriends()
		require.True(t, ok)
		assert.Equal(t, "amy", got, "ties resolve to the smallest code")
	}
}

func TestPersonWithMostFriends_NobodyHasFriends(t *testing.T) {
	g := newTestGraph(t, "carol", "bob")
	got, ok := g.PersonWithMostFriends()
	require.True(t, ok)
	assert.Equal(t, "bob", got)
}

func TestPersonWithMostFriendsOfFriends(t *testing.T) {
	// hub has three leaves; each leaf reaches the two other leaves in two hops
	g := newTestGraph(t, "hub", "l1", "l2", "l3", "far")
	befriend(t, g,
		[2]string{"hub", "l1"},
		[2]string{"hub", "l2"},
		[2]string{"hub", "l3"},
		[2]string{"l3", "far"},
	)

	// l1: {l2, l3}; l2: {l1, l3}; l3: {l1, l2}; hub: {far}; far: {hub}
	got, ok := g.PersonWithMostFriendsOfFriends()
	require.True(t, ok)
	assert.Equal(t, "l1", got)

	count, err := g.FriendsOfFriendsDistinct("l3")
	require.NoError(t, err)
	assert.Len(t, count, 2)
}

func TestLargestGroup(t *testing.T) {
	g := newTestGraph(t, "alice", "bob", "carol")
	g.CreateGroup("small")
	g.CreateGroup("big")
	g.CreateGroup("also-big")
	for _, m := range [][2]string{
		{"alice", "small"},
		{"alice", "big"}, {"bob", "big"},
		{"bob", "also-big"}, {"carol", "also-big"},
	} {
		_, err := g.AddPersonToGroup(m[0], m[1])
		require.NoError(t, err)
	}

	got, ok := g.LargestGroup()
	require.True(t, ok)
	assert.Equal(t, "also-big", got)
}

func TestLargestGroup_AllEmpty(t *testing.T) {
	g := New()
	g.CreateGroup("b")
	g.CreateGroup("a")

	got, ok := g.LargestGroup()
	require.True(t, ok)
	assert.Equal(t, "a", got)
}

func TestPersonInMostGroups(t *testing.T) {
	g := newTestGraph(t, "alice", "bob", "carol")
	for _, name := range []string{"g1", "g2", "g3"} {
		g.CreateGroup(name)
	}
	for _, m := range [][2]string{
		{"carol", "g1"}, {"carol", "g2"},
		{"bob", "g1"}, {"bob", "g3"},
		{"alice", "g2"},
	} {
		_, err := g.AddPersonToGroup(m[0], m[1])
		require.NoError(t, err)
	}

	got, ok := g.PersonInMostGroups()
	require.True(t, ok)
	assert.Equal(t, "bob", got)
}

func TestPersonInMostGroups_NoMembers(t *testing.T) {
	g := newTestGraph(t, "alice")
	g.CreateGroup("G")

	_, ok := g.PersonInMostGroups()
	assert.False(t, ok)
}
