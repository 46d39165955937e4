package social

import (
	"strconv"
	"strings"
	"time"

	"socialgraph/backend/internal/constants"
)

// ============================================================================
// Read-only views returned to callers
// ============================================================================

// PersonView is a copy of a person's identity and counters
type PersonView struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	FriendCount int    `json:"friend_count"`
	PostCount   int    `json:"post_count"`
}

// Info renders "name surname"
func (v PersonView) Info() string {
	return v.Name + " " + v.Surname
}

// Describe renders "code name surname"
func (v PersonView) Describe() string {
	return v.Code + " " + v.Info()
}

// PostView is a copy of a single post
type PostView struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// FeedEntry identifies one post in a friend feed
type FeedEntry struct {
	Author string `json:"author"`
	PostID string `json:"post_id"`
}

// String renders the entry as "author:postId"
func (e FeedEntry) String() string {
	return e.Author + constants.FeedKeySeparator + e.PostID
}

// FeedKeys renders entries as "author:postId" strings
func FeedKeys(entries []FeedEntry) []string {
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.String())
	}
	return keys
}

// ParseFeedKey splits an "author:postId" key. Author codes may contain the separator,
// so the post id is taken after the last one.
func ParseFeedKey(key string) (FeedEntry, bool) {
	i := strings.LastIndex(key, constants.FeedKeySeparator)
	if i <= 0 || i == len(key)-1 {
		return FeedEntry{}, false
	}
	return FeedEntry{Author: key[:i], PostID: key[i+1:]}, true
}

func formatPostID(serial uint64) string {
	return strconv.FormatUint(serial, 10)
}

func parsePostID(id string) (uint64, bool) {
	serial, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, false
	}
	return serial, true
}
