package neo4j

import (
	"context"

	"github.com/gabapcia/ledgergraph/internal/graphindex"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// collectRows materializes the records of a query result as generic maps,
// the shape the graphindex port works with.
func collectRows(ctx context.Context, result neo4j.ResultWithContext) ([]map[string]any, error) {
	records, err := result.Collect(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]any, len(records))
	for i, record := range records {
		rows[i] = record.AsMap()
	}

	return rows, nil
}

// RunWrite executes a write query in its own managed transaction and
// returns the rows it produced.
func (c *client) RunWrite(ctx context.Context, query string, params map[string]any) ([]map[string]any, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.database,
		AccessMode:   neo4j.AccessModeWrite,
	})
	defer session.Close(ctx)

	rows, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}

		return collectRows(ctx, result)
	})
	if err != nil {
		return nil, err
	}

	return rows.([]map[string]any), nil
}

// RunRead executes a read-only query in its own managed transaction.
func (c *client) RunRead(ctx context.Context, query string, params map[string]any) ([]map[string]any, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.database,
		AccessMode:   neo4j.AccessModeRead,
	})
	defer session.Close(ctx)

	rows, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}

		return collectRows(ctx, result)
	})
	if err != nil {
		return nil, err
	}

	return rows.([]map[string]any), nil
}

// Compile-time assertion that client implements the GraphStorage interface.
var _ graphindex.GraphStorage = (*client)(nil)
