package social

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "socialgraph/backend/pkg/errors"
)

func buildSampleGraph(t *testing.T) *Graph {
	t.Helper()
	g := New(WithClock(fixedClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))))
	for _, code := range []string{"alice", "bob", "carol", "dave"} {
		require.NoError(t, g.RegisterPerson(code, "N-"+code, "S-"+code))
	}
	befriend(t, g,
		[2]string{"bob", "alice"},
		[2]string{"bob", "carol"},
		[2]string{"carol", "dave"},
	)
	g.CreateGroup("chess")
	g.CreateGroup("running")
	for _, m := range [][2]string{{"dave", "chess"}, {"alice", "chess"}, {"bob", "running"}} {
		_, err := g.AddPersonToGroup(m[0], m[1])
		require.NoError(t, err)
	}
	for _, author := range []string{"alice", "bob", "alice", "carol", "dave"} {
		_, err := g.Post(author, "from "+author)
		require.NoError(t, err)
	}
	return g
}

func TestSnapshot_Contents(t *testing.T) {
	snap := buildSampleGraph(t).Snapshot()

	assert.Len(t, snap.Persons, 4)
	assert.Equal(t, "alice", snap.Persons[0].Code)
	assert.Equal(t, []Friendship{{"bob", "alice"}, {"bob", "carol"}, {"carol", "dave"}}, snap.Friendships)
	assert.Equal(t, []GroupRecord{
		{Name: "chess", Members: []string{"dave", "alice"}},
		{Name: "running", Members: []string{"bob"}},
	}, snap.Groups)
	require.Len(t, snap.Posts, 5)
	for i, post := range snap.Posts {
		assert.Equal(t, uint64(i), post.Serial)
	}
	assert.Equal(t, uint64(5), snap.NextSerial)
}

func TestRestore_RoundTrip(t *testing.T) {
	original := buildSampleGraph(t)
	snap := original.Snapshot()

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	var decoded Snapshot
	require.NoError(t, json.Unmarshal(raw, &decoded))

	restored, err := Restore(decoded)
	require.NoError(t, err)

	for _, code := range original.Persons() {
		want, err := original.ListFriends(code)
		require.NoError(t, err)
		got, err := restored.ListFriends(code)
		require.NoError(t, err)
		assert.Equal(t, want, got, code)

		wantPosts, err := original.UserPosts(code, 1, 10)
		require.NoError(t, err)
		gotPosts, err := restored.UserPosts(code, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, wantPosts, gotPosts, code)

		wantFeed, err := original.FriendPosts(code, 1, 10)
		require.NoError(t, err)
		gotFeed, err := restored.FriendPosts(code, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, wantFeed, gotFeed, code)
	}

	wantTop, _ := original.PersonWithMostFriends()
	gotTop, _ := restored.PersonWithMostFriends()
	assert.Equal(t, wantTop, gotTop)

	id, err := restored.Post("alice", "after restore")
	require.NoError(t, err)
	assert.Equal(t, "5", id, "serials continue from the snapshot")
}

func TestRestore_Rejects(t *testing.T) {
	base := func() Snapshot {
		return Snapshot{
			Persons:    []PersonRecord{{Code: "alice"}, {Code: "bob"}},
			NextSerial: 1,
		}
	}

	tests := []struct {
		name   string
		mutate func(s *Snapshot)
		check  func(t *testing.T, err error)
	}{
		{"duplicate person", func(s *Snapshot) {
			s.Persons = append(s.Persons, PersonRecord{Code: "alice"})
		}, func(t *testing.T, err error) { assert.True(t, apperrors.IsDuplicateIdentifier(err)) }},
		{"friend unknown", func(s *Snapshot) {
			s.Friendships = []Friendship{{"alice", "zzz"}}
		}, func(t *testing.T, err error) { assert.True(t, apperrors.IsUnknownIdentifier(err)) }},
		{"self friendship", func(s *Snapshot) {
			s.Friendships = []Friendship{{"alice", "alice"}}
		}, func(t *testing.T, err error) { assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeValidation)) }},
		{"member unknown", func(s *Snapshot) {
			s.Groups = []GroupRecord{{Name: "G", Members: []string{"zzz"}}}
		}, func(t *testing.T, err error) { assert.True(t, apperrors.IsUnknownIdentifier(err)) }},
		{"post author unknown", func(s *Snapshot) {
			s.Posts = []PostRecord{{Serial: 0, Author: "zzz"}}
		}, func(t *testing.T, err error) { assert.True(t, apperrors.IsUnknownIdentifier(err)) }},
		{"serial beyond counter", func(s *Snapshot) {
			s.Posts = []PostRecord{{Serial: 1, Author: "alice"}}
		}, func(t *testing.T, err error) {
			assert.True(t, apperrors.IsInvalidSnapshot(err))
			assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeValidation))
		}},
		{"duplicate serial", func(s *Snapshot) {
			s.Posts = []PostRecord{{Serial: 0, Author: "alice"}, {Serial: 0, Author: "bob"}}
		}, func(t *testing.T, err error) {
			assert.True(t, apperrors.IsInvalidSnapshot(err))
			assert.Contains(t, err.Error(), "duplicate post serial 0")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := base()
			tt.mutate(&snap)
			g, err := Restore(snap)
			require.Error(t, err)
			assert.Nil(t, g)
			tt.check(t, err)
		})
	}
}
