package graph

import (
	"errors"
	"time"
)

// ExportRun describes one snapshot written to Neo4j
type ExportRun struct {
	ID         string    `json:"id"`
	NextSerial int64     `json:"next_serial"`
	CreatedAt  time.Time `json:"created_at"`
	Persons    int64     `json:"persons"`
}

// ErrNoExport is returned when Neo4j holds no export yet
var ErrNoExport = errors.New("no snapshot export found")
