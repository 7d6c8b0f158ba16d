package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ Store = (*PostgresStore)(nil)

// PostgresStore keeps values in a single key-value table:
//
//	CREATE TABLE store_entry (
//	    user_id    TEXT NOT NULL,
//	    key        TEXT NOT NULL,
//	    value      JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
//	    PRIMARY KEY (user_id, key)
//	);
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		db: db,
	}
}

func (s *PostgresStore) Get(ctx context.Context, userID, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(
		ctx,
		`SELECT value FROM store_entry WHERE user_id = $1 AND key = $2;`,
		userID, key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, userID, key string, value []byte) error {
	_, err := s.db.Exec(
		ctx,
		`INSERT INTO store_entry (user_id, key, value, updated_at)
			VALUES ($1, $2, $3, now())
			ON CONFLICT (user_id, key)
			DO UPDATE SET value = EXCLUDED.value, updated_at = now();`,
		userID, key, value,
	)
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, userID, key string) error {
	// deleting an absent key is not an error
	_, err := s.db.Exec(
		ctx,
		`DELETE FROM store_entry WHERE user_id = $1 AND key = $2;`,
		userID, key,
	)
	return err
}

func (s *PostgresStore) Clear(ctx context.Context, userID string) error {
	_, err := s.db.Exec(
		ctx,
		`DELETE FROM store_entry WHERE user_id = $1 AND key = ANY($2);`,
		userID, Keys,
	)
	return err
}
