package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/openmercato/storefront/internal/storefront/domain"
	"github.com/openmercato/storefront/pkg/idx"
)

type productsRepo struct {
	db *sql.DB
}

func (r *productsRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	if p.ID == "" {
		p.ID = idx.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.DeletedAt = nil

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (id, admin_id, title, description, price_cents, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.AdminID, p.Title, p.Description, p.PriceCents, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return domain.Product{}, mapConstraint(err)
	}
	return p, nil
}

func (r *productsRepo) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, admin_id, title, description, price_cents, created_at, updated_at, deleted_at
		 FROM products WHERE deleted_at IS NULL ORDER BY id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var p domain.Product
		var deletedAt sql.NullTime
		if err := rows.Scan(
			&p.ID, &p.AdminID, &p.Title, &p.Description, &p.PriceCents,
			&p.CreatedAt, &p.UpdatedAt, &deletedAt,
		); err != nil {
			return nil, err
		}
		p.DeletedAt = mapNullTimePtr(deletedAt)
		out = append(out, p)
	}
	return out, rows.Err()
}
