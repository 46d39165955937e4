package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
	"socialgraph/backend/internal/graph"
	"socialgraph/backend/internal/social"
	"socialgraph/backend/pkg/config"
	"socialgraph/backend/pkg/logger"
)

type seedPerson struct {
	code, name, surname string
}

var seedPersons = []seedPerson{
	{"alice", "Alice", "Smith"},
	{"bob", "Bob", "Jones"},
	{"carol", "Carol", "White"},
	{"dave", "Dave", "Black"},
	{"erin", "Erin", "Green"},
}

var seedFriendships = [][2]string{
	{"alice", "bob"},
	{"bob", "carol"},
	{"carol", "dave"},
	{"alice", "erin"},
	{"erin", "dave"},
}

var seedGroups = map[string][]string{
	"chess":   {"alice", "carol"},
	"hiking":  {"bob", "carol", "erin"},
	"readers": {"dave"},
}

func main() {
	out := flag.String("out", "", "Write the seeded snapshot as JSON to this file")
	export := flag.Bool("export", false, "Export the seeded snapshot to Neo4j")
	flag.Parse()

	// Initialize logger
	if err := logger.Init("development"); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting graph seeding...")

	g, err := buildSeedGraph(time.Now().UTC())
	if err != nil {
		log.Fatal("Failed to build seed graph", zap.Error(err))
	}
	snap := g.Snapshot()

	if *out != "" {
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			log.Fatal("Failed to encode snapshot", zap.Error(err))
		}
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			log.Fatal("Failed to write snapshot", zap.String("path", *out), zap.Error(err))
		}
		log.Info("Snapshot written", zap.String("path", *out))
	}

	if !*export {
		log.Info("Seed completed", zap.Int("persons", len(snap.Persons)), zap.Int("posts", len(snap.Posts)))
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize Neo4j driver
	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
	)
	if err != nil {
		log.Fatal("Failed to create Neo4j driver", zap.Error(err))
	}
	defer driver.Close(context.Background())

	// Verify connection
	ctx := context.Background()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		log.Fatal("Failed to verify Neo4j connectivity", zap.Error(err))
	}

	repo := graph.NewRepository(driver)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure schema", zap.Error(err))
	}

	runID, err := repo.ExportSnapshot(ctx, snap)
	if err != nil {
		log.Fatal("Failed to export snapshot", zap.Error(err))
	}

	log.Info("Seed completed. Snapshot exported to Neo4j",
		zap.String("export_id", runID),
		zap.Int("persons", len(snap.Persons)),
		zap.Int("friendships", len(snap.Friendships)),
	)
}

// buildSeedGraph creates a small demo graph with one post per person,
// spaced a minute apart ending at now.
func buildSeedGraph(now time.Time) (*social.Graph, error) {
	g := social.New()

	for _, p := range seedPersons {
		if err := g.RegisterPerson(p.code, p.name, p.surname); err != nil {
			return nil, err
		}
	}
	for _, f := range seedFriendships {
		if _, err := g.AddFriendship(f[0], f[1]); err != nil {
			return nil, err
		}
	}
	for name, members := range seedGroups {
		g.CreateGroup(name)
		for _, code := range members {
			if _, err := g.AddPersonToGroup(code, name); err != nil {
				return nil, err
			}
		}
	}

	start := now.Add(-time.Duration(len(seedPersons)) * time.Minute)
	for i, p := range seedPersons {
		at := start.Add(time.Duration(i+1) * time.Minute)
		if _, err := g.CreatePost(p.code, "Hello from "+p.name, at); err != nil {
			return nil, err
		}
	}
	return g, nil
}
