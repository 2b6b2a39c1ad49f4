package reference

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresLookup reads reference data from the airlines and airports tables.
type PostgresLookup struct {
	db *pgxpool.Pool
}

// NewPostgresLookup creates a lookup backed by the given connection string.
func NewPostgresLookup(ctx context.Context, connString string) (*PostgresLookup, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse reference database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create reference connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping reference database: %w", err)
	}

	return &PostgresLookup{db: pool}, nil
}

// NewPostgresLookupFromPool wraps an existing pool.
func NewPostgresLookupFromPool(pool *pgxpool.Pool) *PostgresLookup {
	return &PostgresLookup{db: pool}
}

// Close releases the connection pool.
func (p *PostgresLookup) Close() {
	p.db.Close()
}

// FindAirline implements Lookup. A missing code resolves to (nil, nil).
func (p *PostgresLookup) FindAirline(ctx context.Context, code string) (*Airline, error) {
	var a Airline
	err := p.db.QueryRow(ctx,
		"SELECT airline_code, airline_name FROM airlines WHERE airline_code = $1",
		code).Scan(&a.Code, &a.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindAirport implements Lookup. A missing code resolves to (nil, nil).
func (p *PostgresLookup) FindAirport(ctx context.Context, code string) (*Airport, error) {
	var a Airport
	err := p.db.QueryRow(ctx,
		`SELECT airport_code, airport_name, city_code, city_name, country_code, country_name
		 FROM airports WHERE airport_code = $1`,
		code).Scan(&a.Code, &a.Name, &a.CityCode, &a.CityName, &a.CountryCode, &a.CountryName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

var _ Lookup = (*PostgresLookup)(nil)
