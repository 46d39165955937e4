package social

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "socialgraph/backend/pkg/errors"
)

func TestFriendPosts_MergedNewestFirst(t *testing.T) {
	g := newTestGraph(t, "alice", "bob", "carol", "dave")
	befriend(t, g, [2]string{"alice", "bob"}, [2]string{"alice", "carol"})

	post := func(author string) string {
		id, err := g.Post(author, "text")
		require.NoError(t, err)
		return id
	}
	b0 := post("bob")
	c1 := post("carol")
	post("alice") // own posts stay out of the feed
	post("dave")  // not a friend
	b4 := post("bob")
	c5 := post("carol")
	c6 := post("carol")

	feed, err := g.FriendPosts("alice", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []FeedEntry{
		{Author: "carol", PostID: c6},
		{Author: "carol", PostID: c5},
		{Author: "bob", PostID: b4},
		{Author: "carol", PostID: c1},
		{Author: "bob", PostID: b0},
	}, feed)

	assert.Equal(t, []string{"carol:6", "carol:5", "bob:4", "carol:1", "bob:0"}, FeedKeys(feed))
}

func TestFriendPosts_Pages(t *testing.T) {
	g := newTestGraph(t, "alice", "bob", "carol")
	befriend(t, g, [2]string{"alice", "bob"}, [2]string{"alice", "carol"})
	for i := 0; i < 5; i++ {
		_, err := g.Post("bob", "b")
		require.NoError(t, err)
		_, err = g.Post("carol", "c")
		require.NoError(t, err)
	}

	all, err := g.FriendPosts("alice", 1, 100)
	require.NoError(t, err)
	require.Len(t, all, 10)

	var paged []FeedEntry
	for page := 1; page <= 4; page++ {
		entries, err := g.FriendPosts("alice", page, 3)
		require.NoError(t, err)
		if page == 4 {
			assert.Len(t, entries, 1)
		}
		paged = append(paged, entries...)
	}
	assert.Equal(t, all, paged)

	empty, err := g.FriendPosts("alice", 5, 3)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFriendPosts_HugePageDoesNotOverflow(t *testing.T) {
	g := newTestGraph(t, "alice", "bob")
	befriend(t, g, [2]string{"alice", "bob"})
	_, err := g.Post("bob", "b")
	require.NoError(t, err)

	entries, err := g.FriendPosts("alice", math.MaxInt/2, 3)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFriendPosts_NoFriends(t *testing.T) {
	g := newTestGraph(t, "alice")
	_, err := g.Post("alice", "only me")
	require.NoError(t, err)

	feed, err := g.FriendPosts("alice", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestFriendPosts_InvalidPagination(t *testing.T) {
	g := newTestGraph(t, "alice")
	_, err := g.FriendPosts("alice", 0, 10)
	assert.True(t, apperrors.IsInvalidPagination(err))
	_, err = g.FriendPosts("alice", 1, 0)
	assert.True(t, apperrors.IsInvalidPagination(err))
}

func TestParseFeedKey(t *testing.T) {
	entry, ok := ParseFeedKey("bob:12")
	require.True(t, ok)
	assert.Equal(t, FeedEntry{Author: "bob", PostID: "12"}, entry)

	entry, ok = ParseFeedKey("team:bob:3")
	require.True(t, ok)
	assert.Equal(t, "team:bob", entry.Author)
	assert.Equal(t, "team:bob:3", entry.String())

	for _, bad := range []string{"", "bob", ":3", "bob:"} {
		_, ok := ParseFeedKey(bad)
		assert.False(t, ok, bad)
	}
}
