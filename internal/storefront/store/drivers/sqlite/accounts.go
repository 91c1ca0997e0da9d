package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/openmercato/storefront/internal/storefront/domain"
	"github.com/openmercato/storefront/internal/storefront/store"
	"github.com/openmercato/storefront/pkg/idx"
)

// accountsRepo serves one account namespace. The admins and users tables are
// structurally identical, so the same repository runs against either.
type accountsRepo struct {
	db    *sql.DB
	table string
}

const accountColumns = `id, first_name, last_name, email, password_hash, banned, created_at, updated_at, deleted_at`

func (r *accountsRepo) Create(ctx context.Context, a domain.Account) (domain.Account, error) {
	if a.ID == "" {
		a.ID = idx.New().String()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	a.DeletedAt = nil

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO `+r.table+` (id, first_name, last_name, email, password_hash, banned, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.FirstName, a.LastName, a.Email, a.PasswordHash, a.Banned, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return domain.Account{}, mapConstraint(err)
	}
	return a, nil
}

func (r *accountsRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM `+r.table+` WHERE email = ? AND deleted_at IS NULL`,
		email,
	)
	return scanAccount(row)
}

func (r *accountsRepo) GetByID(ctx context.Context, id string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM `+r.table+` WHERE id = ? AND deleted_at IS NULL`,
		id,
	)
	return scanAccount(row)
}

func (r *accountsRepo) UpdatePasswordHash(ctx context.Context, id, newHash string) error {
	return r.exec(ctx,
		`UPDATE `+r.table+` SET password_hash = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`,
		newHash, time.Now().UTC(), id,
	)
}

func (r *accountsRepo) SetBanned(ctx context.Context, id string, banned bool) error {
	return r.exec(ctx,
		`UPDATE `+r.table+` SET banned = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`,
		banned, time.Now().UTC(), id,
	)
}

func (r *accountsRepo) SoftDelete(ctx context.Context, id string) error {
	now := time.Now().UTC()
	return r.exec(ctx,
		`UPDATE `+r.table+` SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`,
		now, now, id,
	)
}

// exec runs an update that must touch exactly one live row, mapping a miss
// to store.ErrNotFound.
func (r *accountsRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanAccount(row *sql.Row) (domain.Account, error) {
	var a domain.Account
	var deletedAt sql.NullTime

	err := row.Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.PasswordHash,
		&a.Banned, &a.CreatedAt, &a.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	a.DeletedAt = mapNullTimePtr(deletedAt)
	return a, nil
}
