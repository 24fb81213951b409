package main

import (
	"context"
	"os"

	"github.com/gabapcia/ledgergraph/internal/config"
	"github.com/gabapcia/ledgergraph/internal/graphindex"
	"github.com/gabapcia/ledgergraph/internal/handlers/cli"
	"github.com/gabapcia/ledgergraph/internal/infra/storage/fs"
	"github.com/gabapcia/ledgergraph/internal/infra/storage/neo4j"
	"github.com/gabapcia/ledgergraph/internal/infra/storage/redis"
	"github.com/gabapcia/ledgergraph/internal/infra/xrpl"
	"github.com/gabapcia/ledgergraph/internal/ingest"
	"github.com/gabapcia/ledgergraph/internal/ledgerfetch"
	"github.com/gabapcia/ledgergraph/internal/pkg/logger"
	"github.com/gabapcia/ledgergraph/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/ledgergraph/internal/pkg/transport/http"
	"github.com/gabapcia/ledgergraph/internal/pkg/transport/jsonrpc"
)

// newCacheStorage builds the configured cache backend. A nil return means
// caching is disabled and the ledger source falls back to remote-only.
func newCacheStorage(ctx context.Context, cfg config.Cache) (ledgerfetch.CacheStorage, func(), error) {
	switch cfg.Backend {
	case config.CacheBackendFS:
		storage, err := fs.NewStorage(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		return storage, func() {}, nil

	case config.CacheBackendRedis:
		client, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return client, func() { _ = client.Close() }, nil
	}

	return nil, func() {}, nil
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		// The logger is not up yet.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			os.Stderr.WriteString(err.Error() + "\n")
			os.Exit(1)
		}
		defer shutdown(ctx)
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	httpClient := transporthttp.NewClient(transporthttp.WithTimeout(cfg.XRPL.HTTPTimeout))
	rpcClient := jsonrpc.NewClient(httpClient.StandardClient(), cfg.XRPL.Endpoint)
	xrplClient := xrpl.NewClient(rpcClient)

	cache, closeCache, err := newCacheStorage(ctx, cfg.Cache)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize ledger cache", "error", err)
	}
	defer closeCache()

	graphStore, err := neo4j.NewClient(ctx, cfg.Neo4j.URI, cfg.Neo4j.Username, cfg.Neo4j.Password, cfg.Neo4j.Database)
	if err != nil {
		logger.Fatal(ctx, "failed to connect to graph store", "error", err)
	}
	defer graphStore.Close(ctx)

	sourceOpts := []ledgerfetch.Option{}
	if cache != nil {
		sourceOpts = append(sourceOpts, ledgerfetch.WithCacheStorage(cache))
	}
	source := ledgerfetch.New(xrplClient, sourceOpts...)

	writer := graphindex.New(graphStore)

	ingestion := ingest.New(source, writer,
		ingest.WithStartLedger(cfg.Ingest.StartLedger),
		ingest.WithBatchSize(cfg.Ingest.BatchSize),
	)

	if err := cli.Run(ctx, ingestion, source); err != nil {
		logger.Fatal(ctx, "ledgergraph terminated with an error", "error", err)
	}
}
