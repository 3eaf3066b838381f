/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package preferences implements a small persistent key-value store for
// client side settings, most importantly the bearer token.
package preferences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Registers the pure Go "sqlite" driver.
	_ "modernc.org/sqlite"
)

// Well known keys.
const (
	TokenKey    = "catroweb_token"
	UsernameKey = "catroweb_username"
)

const schema = `CREATE TABLE IF NOT EXISTS preferences (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// Store persists preferences in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens, creating if necessary, the store at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening preferences %s: %w", path, err)
	}

	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating preferences schema: %w", err)
	}

	return &Store{
		db: db,
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// GetString returns the value stored under key, or nil if there is none.
func (s *Store) GetString(ctx context.Context, key string) (*string, error) {
	var value string

	if err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading preference %s: %w", key, err)
	}

	return &value, nil
}

func (s *Store) SetString(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, `INSERT INTO preferences (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value); err != nil {
		return fmt.Errorf("writing preference %s: %w", key, err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting preference %s: %w", key, err)
	}

	return nil
}

// Token returns the persisted bearer token, nil means there is no token.
func (s *Store) Token(ctx context.Context) (*string, error) {
	return s.GetString(ctx, TokenKey)
}

func (s *Store) SetToken(ctx context.Context, token string) error {
	return s.SetString(ctx, TokenKey, token)
}

// ClearToken forgets the bearer token and the user it belongs to.
func (s *Store) ClearToken(ctx context.Context) error {
	if err := s.Delete(ctx, TokenKey); err != nil {
		return err
	}

	return s.Delete(ctx, UsernameKey)
}

func (s *Store) Username(ctx context.Context) (*string, error) {
	return s.GetString(ctx, UsernameKey)
}

func (s *Store) SetUsername(ctx context.Context, username string) error {
	return s.SetString(ctx, UsernameKey, username)
}
