package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/football-explorer/internal/config"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

const dbPingTimeout = 5 * time.Second

// OpenDB opens a traced Postgres pool and verifies it with a ping.
func OpenDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	raw := dsn(strings.TrimSpace(cfg.DBURL))
	if raw == "" {
		return nil, fmt.Errorf("DB_URL is required")
	}

	opts := []otelsql.Option{
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithQueryFormatter(traceQuery),
	}
	if name := raw.dbName(); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Open("postgres", connectString(raw, cfg.DBDisablePreparedBinary), opts...)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres %s: %w", raw.redacted(), err)
	}

	return db, nil
}

func connectString(raw dsn, disableBinaryResults bool) string {
	if disableBinaryResults {
		return raw.withBinaryResultsDisabled()
	}
	return string(raw)
}
