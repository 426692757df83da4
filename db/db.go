package db

import (
	"context"
	"time"
)

type DBType string

const (
	Postgres DBType = "postgres"
	Mongo    DBType = "mongo"
)

// PingTimeout bounds a readiness check against the database.
const PingTimeout = 2 * time.Second

// DB is the connection behind the repositories. Ping backs the health endpoint.
type DB interface {
	Connect() error
	Disconnect() error
	Ping(ctx context.Context) error
}
