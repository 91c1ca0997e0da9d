package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/openmercato/storefront/internal/storefront/store"

	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Table names for the two account namespaces. accountsRepo is shared between
// them; the table name is the only difference.
const (
	tableAdmins = "admins"
	tableUsers  = "users"
)

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs (products reference their creating admin).
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Admins() store.Accounts   { return &accountsRepo{db: s.db, table: tableAdmins} }
func (s *Store) Users() store.Accounts    { return &accountsRepo{db: s.db, table: tableUsers} }
func (s *Store) Products() store.Products { return &productsRepo{db: s.db} }

// mapNotFound translates sql.ErrNoRows into the store sentinel.
func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint translates a unique-constraint violation into
// store.ErrDuplicateEmail. The partial unique index on email is the only
// unique constraint besides the primary key, and ids are ULIDs that never
// collide in practice.
func mapConstraint(err error) error {
	var se *sqlitedrv.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return store.ErrDuplicateEmail
		}
	}
	return err
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time
		return &val
	}
	return nil
}
