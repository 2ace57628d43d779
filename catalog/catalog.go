// Copyright 2021 Airbus Defence and Space
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package catalog stores flattened metadata records in a SQLite database.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/airbusgeo/geoapi/internal/report"
	"github.com/airbusgeo/geoapi/metadata"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned by Get for unknown identifiers
var ErrNotFound = errors.New("entry not found")

const schema = `CREATE TABLE IF NOT EXISTS entries (
	id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	record TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS entries_created_at ON entries (created_at);`

// Entry is a metadata record stored in the catalogue
type Entry struct {
	ID      uuid.UUID     `json:"id" yaml:"id"`
	Source  string        `json:"source" yaml:"source"`
	Created time.Time     `json:"created" yaml:"created"`
	Record  report.Record `json:"record" yaml:"record"`
}

// Store is a catalogue backed by a SQLite database. It is safe for
// concurrent use.
type Store struct {
	db    *sql.DB
	cache *lru.Cache
	now   func() time.Time
}

type storeOpts struct {
	cacheSize int
}

// Option is an option that can be passed to Open
type Option func(o *storeOpts)

// CacheSize sets the number of entries kept in memory after a Get or a Put.
// Defaults to 128, 0 disables the cache.
func CacheSize(n int) Option {
	if n < 0 {
		panic("invalid cache size")
	}
	return func(o *storeOpts) {
		o.cacheSize = n
	}
}

// Open opens the catalogue at path, creating it if needed
func Open(path string, opts ...Option) (*Store, error) {
	so := storeOpts{cacheSize: 128}
	for _, o := range opts {
		o(&so)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables in %s: %w", path, err)
	}
	st := &Store{db: db, now: time.Now}
	if so.cacheSize > 0 {
		st.cache, _ = lru.New(so.cacheSize)
	}
	return st, nil
}

// Close closes the underlying database
func (st *Store) Close() error {
	return st.db.Close()
}

// Put flattens md and stores it under a new identifier
func (st *Store) Put(ctx context.Context, source string, md metadata.Metadata) (Entry, error) {
	e := Entry{
		ID:      uuid.New(),
		Source:  source,
		Created: st.now().UTC(),
		Record:  report.From(md),
	}
	buf, err := json.Marshal(e.Record)
	if err != nil {
		return Entry{}, fmt.Errorf("marshal record of %s: %w", source, err)
	}
	_, err = st.db.ExecContext(ctx,
		"INSERT INTO entries (id, source, created_at, record) VALUES (?, ?, ?, ?)",
		e.ID.String(), e.Source, e.Created.UnixNano(), string(buf))
	if err != nil {
		return Entry{}, fmt.Errorf("insert %s: %w", source, err)
	}
	st.remember(e)
	return e, nil
}

// Get returns the entry with the given identifier, or ErrNotFound
func (st *Store) Get(ctx context.Context, id uuid.UUID) (Entry, error) {
	if st.cache != nil {
		if e, ok := st.cache.Get(id); ok {
			return e.(Entry).clone(), nil
		}
	}
	row := st.db.QueryRowContext(ctx,
		"SELECT id, source, created_at, record FROM entries WHERE id = ?", id.String())
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("get %s: %w", id, err)
	}
	st.remember(e)
	return e, nil
}

// List returns all entries, oldest first
func (st *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := st.db.QueryContext(ctx,
		"SELECT id, source, created_at, record FROM entries ORDER BY created_at, rowid")
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()
	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("list entries: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// remember caches a copy of e, callers are free to modify the entries they
// are handed
func (st *Store) remember(e Entry) {
	if st.cache != nil {
		st.cache.Add(e.ID, e.clone())
	}
}

func (e Entry) clone() Entry {
	e.Record = e.Record.Clone()
	return e
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(s scanner) (Entry, error) {
	var (
		id, record string
		created    int64
		e          Entry
	)
	if err := s.Scan(&id, &e.Source, &created, &record); err != nil {
		return Entry{}, err
	}
	var err error
	if e.ID, err = uuid.Parse(id); err != nil {
		return Entry{}, fmt.Errorf("invalid id %q: %w", id, err)
	}
	e.Created = time.Unix(0, created).UTC()
	if err := json.Unmarshal([]byte(record), &e.Record); err != nil {
		return Entry{}, fmt.Errorf("unmarshal record %s: %w", id, err)
	}
	return e, nil
}
