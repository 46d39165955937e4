package graph

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"socialgraph/backend/internal/social"
)

// ============================================================================
// Parameter Builders
// ============================================================================

func personParams(persons []social.PersonRecord) []map[string]any {
	out := make([]map[string]any, 0, len(persons))
	for _, p := range persons {
		out = append(out, map[string]any{
			"code":    p.Code,
			"name":    p.Name,
			"surname": p.Surname,
		})
	}
	return out
}

func friendshipParams(edges []social.Friendship) []map[string]any {
	out := make([]map[string]any, 0, len(edges))
	for _, e := range edges {
		out = append(out, map[string]any{"a": e.A, "b": e.B})
	}
	return out
}

func groupParams(groups []social.GroupRecord) []map[string]any {
	out := make([]map[string]any, 0, len(groups))
	for _, g := range groups {
		members := make([]any, 0, len(g.Members))
		for _, m := range g.Members {
			members = append(members, m)
		}
		out = append(out, map[string]any{"name": g.Name, "members": members})
	}
	return out
}

// postParams converts serials to int64, the only integer type Bolt carries
func postParams(posts []social.PostRecord) []map[string]any {
	out := make([]map[string]any, 0, len(posts))
	for _, p := range posts {
		out = append(out, map[string]any{
			"serial":    int64(p.Serial),
			"author":    p.Author,
			"message":   p.Message,
			"timestamp": p.Timestamp.UTC().Format(time.RFC3339Nano),
		})
	}
	return out
}

// ============================================================================
// Record Helpers
// ============================================================================

func getStringFromRecord(record *neo4j.Record, key string) string {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return ""
	}
	if str, ok := val.(string); ok {
		return str
	}
	return ""
}

func getInt64FromRecord(record *neo4j.Record, key string) int64 {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return 0
	}
	if i, ok := val.(int64); ok {
		return i
	}
	if i, ok := val.(int); ok {
		return int64(i)
	}
	return 0
}

func getTimeFromRecord(record *neo4j.Record, key string) time.Time {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return time.Time{}
	}
	// Neo4j datetime values come as time.Time
	if t, ok := val.(time.Time); ok {
		return t
	}
	return time.Time{}
}
