package tokenstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/muusmart/muusmart/pkg/tokenstore/migrations"

	_ "modernc.org/sqlite"
)

// SQLite is a credential cache backed by a local SQLite database. Tokens
// are keyed by profile name so one cache file can hold credentials for
// several gateways or accounts.
type SQLite struct {
	db      *sql.DB
	profile string
}

// DefaultProfile is used when no profile name is configured.
const DefaultProfile = "default"

// NewSQLite opens (creating if needed) the credential database at dsn and
// scopes the store to the given profile.
func NewSQLite(dsn, profile string) (*SQLite, error) {
	if profile == "" {
		profile = DefaultProfile
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential database: %w", err)
	}

	s := &SQLite{db: db, profile: profile}
	if err := s.applyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate credential database: %w", err)
	}

	return s, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

// applyMigrations applies any pending schema migrations using the embedded
// migration files compiled into the binary.
func (s *SQLite) applyMigrations() error {
	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return err
	}

	src, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return err
	}

	instance, err := migrate.NewWithInstance("iofs", src, "", driver)
	if err != nil {
		return err
	}

	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

func (s *SQLite) Get() (string, error) {
	var token string
	err := s.db.QueryRowContext(context.Background(),
		`SELECT token FROM credentials WHERE profile = ?`, s.profile,
	).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential: %w", err)
	}
	return token, nil
}

func (s *SQLite) Set(token string) error {
	_, err := s.db.ExecContext(context.Background(),
		`INSERT INTO credentials (profile, token, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (profile) DO UPDATE SET
		     token = excluded.token,
		     updated_at = CURRENT_TIMESTAMP`,
		s.profile, token,
	)
	if err != nil {
		return fmt.Errorf("failed to write credential: %w", err)
	}
	return nil
}

func (s *SQLite) Delete() error {
	_, err := s.db.ExecContext(context.Background(),
		`DELETE FROM credentials WHERE profile = ?`, s.profile,
	)
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}
