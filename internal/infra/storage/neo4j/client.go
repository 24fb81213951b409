// Package neo4j implements the graphindex.GraphStorage interface on top of
// the official Neo4j Go driver. Every call runs in its own managed
// transaction, matching the one-transaction-per-logical-write model the
// graph writer relies on.
package neo4j

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type client struct {
	driver   neo4j.DriverWithContext
	database string
}

// Close releases the underlying driver and its connection pool.
func (c *client) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

// NewClient connects to the Neo4j server at uri and verifies connectivity
// before returning.
func NewClient(ctx context.Context, uri, username, password, database string) (*client, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, err
	}

	return &client{
		driver:   driver,
		database: database,
	}, nil
}
