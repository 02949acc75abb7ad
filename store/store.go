// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package store imports parsed output files
// into a PostgreSQL database.
//
// Each import is a batch,
// identified by a random UUID.
// The batch stores the metadata of the quantity,
// its layers,
// and every data point in long form.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hie-dave/lpjg-gui-sub000/quantity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// DSNEnv is the environment variable
// with the connection string of the database.
const DSNEnv = "LPJG_DATABASE_URL"

// Schema is the SQL schema of the database.
const Schema = `
CREATE TABLE IF NOT EXISTS batch (
	id          UUID PRIMARY KEY,
	file        TEXT NOT NULL,
	name        TEXT NOT NULL,
	description TEXT NOT NULL,
	level       TEXT NOT NULL,
	resolution  TEXT NOT NULL,
	imported    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS layer (
	batch UUID NOT NULL REFERENCES batch (id) ON DELETE CASCADE,
	name  TEXT NOT NULL,
	units TEXT NOT NULL,
	PRIMARY KEY (batch, name)
);

CREATE TABLE IF NOT EXISTS datapoint (
	batch      UUID NOT NULL,
	layer      TEXT NOT NULL,
	obstime    TIMESTAMPTZ NOT NULL,
	lon        DOUBLE PRECISION NOT NULL,
	lat        DOUBLE PRECISION NOT NULL,
	stand      INTEGER,
	patch      INTEGER,
	individual INTEGER,
	pft        TEXT,
	value      DOUBLE PRECISION NOT NULL,
	FOREIGN KEY (batch, layer) REFERENCES layer (batch, name) ON DELETE CASCADE
);
`

// DataColumns are the columns of the datapoint table
// in the order of the values returned by Rows.
var DataColumns = []string{
	"batch", "layer", "obstime",
	"lon", "lat",
	"stand", "patch", "individual", "pft",
	"value",
}

// A Store is a connection pool to the database.
type Store struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// Open connects to the database
// with the given connection string.
func Open(ctx context.Context, dsn string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}
	return &Store{pool: pool, logger: logger}, nil
}

// Close closes the connections to the database.
func (s *Store) Close() {
	s.pool.Close()
}

// Init creates the tables of the database
// if they do not exist.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("while creating tables: %v", err)
	}
	return nil
}

// Import stores a quantity read from the given file
// in a single transaction.
// It returns the batch ID
// and the number of data points stored.
func (s *Store) Import(ctx context.Context, file string, q *quantity.Quantity) (uuid.UUID, int64, error) {
	batch := uuid.New()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, 0, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO batch (id, file, name, description, level, resolution, imported)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		batch, file, q.Name, q.Description, q.Level.String(), q.Resolution.String(), time.Now().UTC(),
	); err != nil {
		return uuid.Nil, 0, fmt.Errorf("file %q: while inserting batch: %v", file, err)
	}

	for _, l := range q.Layers {
		if _, err := tx.Exec(ctx,
			`INSERT INTO layer (batch, name, units) VALUES ($1, $2, $3)`,
			batch, l.Name, l.Units.String(),
		); err != nil {
			return uuid.Nil, 0, fmt.Errorf("file %q: layer %q: %v", file, l.Name, err)
		}
	}

	rows := Rows(batch, q)
	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{"datapoint"},
		DataColumns,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("file %q: while copying data: %v", file, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, 0, err
	}
	s.logger.Info("output file imported",
		zap.String("file", file),
		zap.Stringer("batch", batch),
		zap.Int64("points", n),
	)
	return batch, n, nil
}

// Rows returns the rows of the datapoint table
// for a quantity.
// Identifiers absent at the level
// of the quantity are nil.
func Rows(batch uuid.UUID, q *quantity.Quantity) [][]any {
	rows := make([][]any, 0, q.Len())
	for _, l := range q.Layers {
		for _, d := range l.Data {
			var stand, patch, indiv, pft any
			if d.HasStand() {
				stand = int32(d.Stand)
			}
			if d.HasPatch() {
				patch = int32(d.Patch)
			}
			if d.HasIndividual() {
				indiv = int32(d.Individual)
				if p, ok := q.IndividualPfts[d.Individual]; ok {
					pft = p
				}
			}
			rows = append(rows, []any{
				batch, l.Name, d.Time,
				d.Lon, d.Lat,
				stand, patch, indiv, pft,
				d.Value,
			})
		}
	}
	return rows
}

// Count returns the number of data points
// stored for a batch.
func (s *Store) Count(ctx context.Context, batch uuid.UUID) (int64, error) {
	var n int64
	err := s.pool.QueryRow(ctx, `SELECT count(*) FROM datapoint WHERE batch = $1`, batch).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Delete removes a batch.
func (s *Store) Delete(ctx context.Context, batch uuid.UUID) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM batch WHERE id = $1`, batch); err != nil {
		return fmt.Errorf("batch %s: %v", batch, err)
	}
	return nil
}
