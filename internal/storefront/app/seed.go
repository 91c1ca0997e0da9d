package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/openmercato/storefront/internal/storefront/service"
	"github.com/openmercato/storefront/pkg/slogx"
)

type seedRecord struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// seedAdmins loads the optional seed file and inserts the admin accounts it
// lists. Records already present are skipped, so running the seed on every
// boot is safe.
func (app *Application) seedAdmins() error {
	if app.cfg.SeedFile == "" {
		return nil
	}

	raw, err := os.ReadFile(app.cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", app.cfg.SeedFile, err)
	}

	var records []seedRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("failed to parse seed file %s: %w", app.cfg.SeedFile, err)
	}

	seeds := make([]service.SeedAccount, 0, len(records))
	for _, rec := range records {
		seeds = append(seeds, service.SeedAccount{
			FirstName: rec.FirstName,
			LastName:  rec.LastName,
			Email:     rec.Email,
			Password:  rec.Password,
		})
	}

	ctx := slogx.WithContext(context.Background(), app.logger)
	created, skipped := app.adminService.SeedAdminGroup(ctx, seeds)
	app.logger.Info("admin seed completed",
		"file", app.cfg.SeedFile, "created", created, "skipped", skipped)
	return nil
}
