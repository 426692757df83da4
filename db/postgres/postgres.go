package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

// Pool sizes the connection pool. Report requests run a handful of short
// reads each, while a PDF may hold its request open for the Chrome timeout.
type Pool struct {
	MaxOpen     int
	MaxIdle     int
	MaxLifetime time.Duration
	MaxIdleTime time.Duration
}

var DefaultPool = Pool{
	MaxOpen:     10,
	MaxIdle:     4,
	MaxLifetime: 15 * time.Minute,
	MaxIdleTime: 5 * time.Minute,
}

type PostgresDB struct {
	Conn *sql.DB
	URL  string
	Pool Pool
}

func NewPostgresDB(url string) *PostgresDB {
	return &PostgresDB{URL: url, Pool: DefaultPool}
}

// Connect opens the pool and waits up to five seconds for the first ping.
func (p *PostgresDB) Connect() error {
	conn, err := sql.Open("postgres", p.URL)
	if err != nil {
		return err
	}
	conn.SetMaxOpenConns(p.Pool.MaxOpen)
	conn.SetMaxIdleConns(p.Pool.MaxIdle)
	conn.SetConnMaxLifetime(p.Pool.MaxLifetime)
	conn.SetConnMaxIdleTime(p.Pool.MaxIdleTime)
	p.Conn = conn

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return p.Ping(ctx)
}

func (p *PostgresDB) Ping(ctx context.Context) error {
	return p.Conn.PingContext(ctx)
}

func (p *PostgresDB) Disconnect() error {
	if p.Conn == nil {
		return nil
	}
	return p.Conn.Close()
}
