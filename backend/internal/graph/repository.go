package graph

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"socialgraph/backend/internal/constants"
	"socialgraph/backend/internal/social"
	apperrors "socialgraph/backend/pkg/errors"
	"socialgraph/backend/pkg/logger"
)

// Repository mirrors social graph snapshots into Neo4j. The in-memory graph
// stays authoritative; Neo4j is only an analysis copy and each export replaces
// the Person, Group and Post data of the previous one.
type Repository struct {
	driver  neo4j.DriverWithContext
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

// NewRepository creates a new graph repository
func NewRepository(driver neo4j.DriverWithContext) *Repository {
	log := logger.Named("neo4j")
	return &Repository{
		driver:  driver,
		breaker: newBreaker(DefaultBreakerConfig("neo4j-export"), log),
		logger:  log,
	}
}

// Close closes the Neo4j driver connection
func (r *Repository) Close(ctx context.Context) error {
	return r.driver.Close(ctx)
}

// ExportSnapshot writes the snapshot in a single write transaction and returns
// the export run id. Calls fail fast while the circuit breaker is open.
func (r *Repository) ExportSnapshot(ctx context.Context, snap social.Snapshot) (string, error) {
	// Bolt integers are signed; every serial is below NextSerial
	if snap.NextSerial > math.MaxInt64 {
		return "", apperrors.NewInvalidSnapshot(fmt.Sprintf("next serial %d exceeds the Neo4j integer range", snap.NextSerial))
	}

	runID := uuid.New().String()

	_, err := r.breaker.Execute(func() (any, error) {
		return nil, r.writeSnapshot(ctx, runID, snap)
	})
	if err != nil {
		return "", apperrors.NewGraphQueryFailed(constants.OpExportSnapshot, err)
	}

	r.logger.Info("Snapshot exported",
		zap.String("export_id", runID),
		zap.Int("persons", len(snap.Persons)),
		zap.Int("friendships", len(snap.Friendships)),
		zap.Int("groups", len(snap.Groups)),
		zap.Int("posts", len(snap.Posts)),
	)
	return runID, nil
}

func (r *Repository) writeSnapshot(ctx context.Context, runID string, snap social.Snapshot) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, step := range exportSteps(runID, snap, time.Now().UTC()) {
			if _, err := tx.Run(ctx, step.query, step.params); err != nil {
				return nil, fmt.Errorf("failed to export %s: %w", step.name, err)
			}
		}
		return nil, nil
	})
	return err
}

type exportStep struct {
	name   string
	query  string
	params map[string]any
}

// exportSteps lists the statements of one export transaction. Everything
// written is stamped with runID and the final prune drops whatever an
// earlier run left behind, so Neo4j mirrors exactly this snapshot.
func exportSteps(runID string, snap social.Snapshot, now time.Time) []exportStep {
	return []exportStep{
		{"export", exportQuery, map[string]any{
			"runID":      runID,
			"nextSerial": int64(snap.NextSerial),
			"now":        now.Format(time.RFC3339),
		}},
		{"persons", personsQuery, map[string]any{"runID": runID, "persons": personParams(snap.Persons)}},
		{"friendships", friendshipsQuery, map[string]any{"runID": runID, "edges": friendshipParams(snap.Friendships)}},
		{"groups", groupsQuery, map[string]any{"runID": runID, "groups": groupParams(snap.Groups)}},
		{"posts", postsQuery, map[string]any{"runID": runID, "posts": postParams(snap.Posts)}},
		{"stale relationships", pruneRelationshipsQuery, map[string]any{"runID": runID}},
		{"stale nodes", pruneNodesQuery, map[string]any{"runID": runID}},
	}
}

// LatestExport returns the most recent export run
func (r *Repository) LatestExport(ctx context.Context) (*ExportRun, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (e:Export)
		OPTIONAL MATCH (p:Person {export_id: e.id})
		WITH e, count(p) as persons
		RETURN e.id as id, e.next_serial as next_serial, e.created_at as created_at, persons
		ORDER BY e.created_at DESC
		LIMIT 1
	`

	result, err := session.Run(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return nil, fmt.Errorf("failed to fetch record: %w", err)
		}
		return nil, ErrNoExport
	}

	record := result.Record()
	return &ExportRun{
		ID:         getStringFromRecord(record, "id"),
		NextSerial: getInt64FromRecord(record, "next_serial"),
		CreatedAt:  getTimeFromRecord(record, "created_at"),
		Persons:    getInt64FromRecord(record, "persons"),
	}, nil
}

const exportQuery = `
	MERGE (e:Export {id: $runID})
	SET e.created_at = datetime($now),
	    e.next_serial = $nextSerial
`

const personsQuery = `
	UNWIND $persons AS p
	MERGE (n:Person {code: p.code})
	SET n.name = p.name,
	    n.surname = p.surname,
	    n.export_id = $runID
`

const friendshipsQuery = `
	UNWIND $edges AS e
	MATCH (a:Person {code: e.a})
	MATCH (b:Person {code: e.b})
	MERGE (a)-[f:FRIENDS_WITH]-(b)
	SET f.export_id = $runID
`

const groupsQuery = `
	UNWIND $groups AS g
	MERGE (grp:Group {name: g.name})
	SET grp.export_id = $runID
	WITH grp, g
	UNWIND g.members AS code
	MATCH (p:Person {code: code})
	MERGE (p)-[m:MEMBER_OF]->(grp)
	SET m.export_id = $runID
`

const postsQuery = `
	UNWIND $posts AS post
	MATCH (p:Person {code: post.author})
	MERGE (m:Post {author: post.author, serial: post.serial})
	SET m.message = post.message,
	    m.timestamp = datetime(post.timestamp),
	    m.export_id = $runID
	MERGE (m)-[:POSTED_BY]->(p)
`

const pruneRelationshipsQuery = `
	MATCH (:Person)-[r:FRIENDS_WITH|MEMBER_OF]->()
	WHERE coalesce(r.export_id, '') <> $runID
	DELETE r
`

const pruneNodesQuery = `
	MATCH (n)
	WHERE (n:Person OR n:Group OR n:Post)
	  AND coalesce(n.export_id, '') <> $runID
	DETACH DELETE n
`
