package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoDB struct {
	Client   *mongo.Client
	Database string
	URL      string
}

func NewMongoDB(url, database string) *MongoDB {
	return &MongoDB{Database: database, URL: url}
}

// Connect reads from secondaries when available; reports tolerate slightly
// stale bookings.
func (m *MongoDB) Connect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(m.URL).
		SetReadPreference(readpref.SecondaryPreferred()).
		SetMaxPoolSize(20)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return err
	}
	m.Client = client
	return m.Ping(ctx)
}

func (m *MongoDB) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, nil)
}

// DB returns the application database.
func (m *MongoDB) DB() *mongo.Database {
	return m.Client.Database(m.Database)
}

func (m *MongoDB) Disconnect() error {
	if m.Client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.Client.Disconnect(ctx)
}
