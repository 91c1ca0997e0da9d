package service

import (
	"context"
	"errors"

	"github.com/openmercato/storefront/internal/storefront/domain"
	"github.com/openmercato/storefront/internal/storefront/store"
	"github.com/openmercato/storefront/pkg/cryptox"
	"github.com/openmercato/storefront/pkg/slogx"
)

// SeedAccount is one candidate record for startup seeding.
type SeedAccount struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// SeedAdminGroup bulk-inserts the candidate admin accounts, best effort.
// Records missing an email or password are skipped without hashing, and an
// email already present in the store is treated as already-seeded rather than
// a failure, so the seed is idempotent across restarts. It returns how many
// records were created and how many were skipped; it never fails on invalid
// or empty input.
func (s *AdminService) SeedAdminGroup(ctx context.Context, seeds []SeedAccount) (created, skipped int) {
	log := slogx.FromContext(ctx)

	for _, seed := range seeds {
		if seed.Email == "" || seed.Password == "" {
			log.Warn("skipping seed record with missing required fields",
				"email", seed.Email)
			skipped++
			continue
		}

		hash, err := cryptox.HashPassword(seed.Password)
		if err != nil {
			log.Error("failed to hash seed password", "email", seed.Email, "err", err)
			skipped++
			continue
		}

		_, err = s.Store.Admins().Create(ctx, domain.Account{
			FirstName:    seed.FirstName,
			LastName:     seed.LastName,
			Email:        seed.Email,
			PasswordHash: hash,
		})
		switch {
		case err == nil:
			created++
		case errors.Is(err, store.ErrDuplicateEmail):
			// Already seeded on a previous boot.
			skipped++
		default:
			log.Error("failed to persist seed record", "email", seed.Email, "err", err)
			skipped++
		}
	}

	if created > 0 || skipped > 0 {
		log.Info("admin seed pass finished", "created", created, "skipped", skipped)
	}
	return created, skipped
}
