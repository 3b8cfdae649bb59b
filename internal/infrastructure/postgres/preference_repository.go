package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stocksync-dashboard/internal/domain/repository"
)

var _ repository.PreferenceRepository = (*PreferenceRepo)(nil)

// schemaSQL tabla de preferencias; una fila por (cliente, clave).
const schemaSQL = `
	CREATE TABLE IF NOT EXISTS dashboard_preferences (
		client_id  TEXT        NOT NULL,
		key        TEXT        NOT NULL,
		value      TEXT        NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (client_id, key)
	)`

// PreferenceRepo implementación del puerto PreferenceRepository sobre PostgreSQL.
type PreferenceRepo struct {
	pool *pgxpool.Pool
}

// NewPreferenceRepository construye el adaptador.
func NewPreferenceRepository(pool *pgxpool.Pool) *PreferenceRepo {
	return &PreferenceRepo{pool: pool}
}

// EnsureSchema crea la tabla si no existe.
func (r *PreferenceRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear tabla dashboard_preferences: %w", err)
	}
	return nil
}

// Get lee una clave. ("", false, nil) si no existe.
func (r *PreferenceRepo) Get(ctx context.Context, clientID, key string) (string, bool, error) {
	var value string
	err := r.pool.QueryRow(ctx,
		`SELECT value FROM dashboard_preferences WHERE client_id = $1 AND key = $2`,
		clientID, key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference %s: %w", key, describe(err))
	}
	return value, true, nil
}

// Set inserta o actualiza la clave.
func (r *PreferenceRepo) Set(ctx context.Context, clientID, key, value string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO dashboard_preferences (client_id, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (client_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		clientID, key, value,
	)
	if err != nil {
		return fmt.Errorf("set preference %s: %w", key, describe(err))
	}
	return nil
}

// describe agrega el código SQLSTATE cuando el error viene del servidor.
func describe(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("sqlstate %s: %w", pgErr.Code, err)
	}
	return err
}
