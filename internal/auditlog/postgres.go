package auditlog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore writes audit records to the vendor_api_logs table.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a store backed by the given connection string.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse audit database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create audit connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping audit database: %w", err)
	}

	return &PostgresStore{db: pool}, nil
}

// NewPostgresStoreFromPool wraps an existing pool.
func NewPostgresStoreFromPool(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: pool}
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	s.db.Close()
}

// Save implements Store.
func (s *PostgresStore) Save(ctx context.Context, rec Record) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO vendor_api_logs
		 (unique_key, trace_id, service_name, vendor_request, vendor_response,
		  request_timestamp, response_timestamp, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.UniqueKey, rec.TraceID, rec.ServiceName, rec.VendorRequest,
		rec.VendorResponse, rec.RequestTimestamp, rec.ResponseTimestamp, rec.Status)
	return err
}

var _ Store = (*PostgresStore)(nil)
