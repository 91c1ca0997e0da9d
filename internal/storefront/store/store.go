package store

import (
	"context"
	"errors"

	"github.com/openmercato/storefront/internal/storefront/domain"
)

var (
	// ErrNotFound reports that no non-deleted record matched the lookup.
	ErrNotFound = errors.New("store: not found")

	// ErrDuplicateEmail reports a violation of the per-namespace unique email
	// constraint. The check happens atomically with the insert, so two
	// concurrent signups for the same email cannot both succeed.
	ErrDuplicateEmail = errors.New("store: duplicate email")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Admins and users are structurally identical but live in
// separate namespaces, so both expose the same Accounts repository shape.
type Store interface {
	Admins() Accounts
	Users() Accounts
	Products() Products

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Accounts persists one account namespace. All lookups are scoped to
// non-deleted records; the store owns id assignment fallback and timestamps.
type Accounts interface {
	// Create inserts the account and returns it with store-maintained fields
	// (timestamps, generated id if a.ID was empty) populated. Fails with
	// ErrDuplicateEmail when the email is already taken in this namespace.
	Create(ctx context.Context, a domain.Account) (domain.Account, error)

	// GetByEmail is used during login.
	GetByEmail(ctx context.Context, email string) (domain.Account, error)

	// GetByID is used for profile lookups and claim resolution.
	GetByID(ctx context.Context, id string) (domain.Account, error)

	// UpdatePasswordHash replaces the stored digest and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, id, newHash string) error

	// SetBanned flips the moderation flag and bumps updated_at.
	SetBanned(ctx context.Context, id string, banned bool) error

	// SoftDelete marks the account logically absent; the row remains.
	SoftDelete(ctx context.Context, id string) error
}

// Products persists the catalog.
type Products interface {
	// Create inserts a product owned by an admin.
	Create(ctx context.Context, p domain.Product) (domain.Product, error)

	// List returns all non-deleted products, newest first.
	List(ctx context.Context) ([]domain.Product, error)
}
