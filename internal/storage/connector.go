package storage

import (
	"context"
	"errors"
	"log"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrMissingURI means the connection URI was absent at startup. Serving
// requests without it is impossible, so main treats this as fatal.
var ErrMissingURI = errors.New("MONGODB_URI is not set")

// Connector owns the single MongoDB client shared by the whole process.
// The first EnsureConnected call opens and verifies the connection;
// later calls return the cached client. Concurrent first calls collapse
// into one attempt: waiters block on the mutex and pick up the cached
// client once the winner has connected.
type Connector struct {
	uri string

	mu     sync.Mutex
	client *mongo.Client
}

// NewConnector creates a connector for the given URI. No connection is
// opened until EnsureConnected is called.
func NewConnector(uri string) *Connector {
	return &Connector{uri: uri}
}

// EnsureConnected returns the shared client, connecting on first use.
// A failed attempt leaves nothing cached, so the next call retries.
func (c *Connector) EnsureConnected(ctx context.Context) (*mongo.Client, error) {
	if c.uri == "" {
		return nil, ErrMissingURI
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.uri))
	if err != nil {
		return nil, err
	}

	// mongo.Connect does not dial; ping to verify the store is actually
	// reachable before caching the client.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	c.client = client
	log.Println("Connected to MongoDB")
	return client, nil
}

// Disconnect closes the cached client, if any. Used on shutdown and by
// the admin CLI.
func (c *Connector) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}
	err := c.client.Disconnect(ctx)
	c.client = nil
	return err
}
