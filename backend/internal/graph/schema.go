package graph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

var schemaStatements = []string{
	"CREATE CONSTRAINT person_code_unique IF NOT EXISTS FOR (p:Person) REQUIRE p.code IS UNIQUE",
	"CREATE CONSTRAINT group_name_unique IF NOT EXISTS FOR (g:Group) REQUIRE g.name IS UNIQUE",
	"CREATE CONSTRAINT export_id_unique IF NOT EXISTS FOR (e:Export) REQUIRE e.id IS UNIQUE",
	"CREATE CONSTRAINT post_author_serial_unique IF NOT EXISTS FOR (p:Post) REQUIRE (p.author, p.serial) IS UNIQUE",
	"CREATE INDEX post_export IF NOT EXISTS FOR (p:Post) ON (p.export_id)",
	"CREATE INDEX person_export IF NOT EXISTS FOR (p:Person) ON (p.export_id)",
	"CREATE INDEX export_created_at IF NOT EXISTS FOR (e:Export) ON (e.created_at)",
}

// EnsureSchema creates the constraints and indexes used by exports. It is
// idempotent; individual statement failures are logged and skipped.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	applied := 0
	for _, stmt := range schemaStatements {
		if _, err := session.Run(ctx, stmt, nil); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r.logger.Warn("Schema statement failed (may already exist)",
				zap.String("statement", stmt),
				zap.Error(err),
			)
			continue
		}
		applied++
	}

	r.logger.Info("Neo4j schema ensured",
		zap.Int("applied", applied),
		zap.Int("total", len(schemaStatements)),
	)
	return nil
}
