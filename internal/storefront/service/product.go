package service

import (
	"context"
	"errors"

	"github.com/openmercato/storefront/internal/storefront/domain"
	"github.com/openmercato/storefront/internal/storefront/store"
	"github.com/openmercato/storefront/pkg/slogx"
)

// ProductService handles the product catalog: admin-authored listings and the
// public storefront view.
type ProductService struct {
	Store store.Store
}

// Create persists a product authored by the given admin. The admin is resolved
// first so a product can never reference a deleted account; a missing admin
// fails with ErrNotFound.
func (s *ProductService) Create(ctx context.Context, adminID, title, description string, priceCents int64) (domain.Product, error) {
	admin, err := s.Store.Admins().GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Product{}, ErrNotFound
		}
		return domain.Product{}, err
	}

	product, err := s.Store.Products().Create(ctx, domain.Product{
		AdminID:     admin.ID,
		Title:       title,
		Description: description,
		PriceCents:  priceCents,
	})
	if err != nil {
		return domain.Product{}, err
	}

	slogx.FromContext(ctx).Info("product created",
		"product_id", product.ID, "admin_id", admin.ID)
	return product, nil
}

// List returns the catalog, newest first.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.Store.Products().List(ctx)
}
