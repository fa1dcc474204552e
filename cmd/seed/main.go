// Command seed writes a settings document into the database so a fresh
// deployment has something to render. It is idempotent: re-running it
// overwrites the single settings row.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"panaderia/config"
	"panaderia/internal/domain/entity"
	"panaderia/internal/domain/settings"
	"panaderia/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	reduced := flag.Bool("reduced", false, "seed the minimal dataset: defaults with an explicitly empty menu")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(context.Background(), logger, *reduced); err != nil {
		logger.Error("Seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, reduced bool) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "connect to postgres")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql.DB")
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := postgres.Migrate(db.WithContext(ctx)); err != nil {
		return err
	}

	doc := seedDocument(reduced)
	blob, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "marshal seed document")
	}

	if err := postgres.NewSettingsRepository(db).Save(ctx, blob); err != nil {
		return err
	}

	logger.Info("Seeded settings document",
		slog.Bool("reduced", reduced),
		slog.Int("categories", len(doc.Categories)),
		slog.Int("lunchSpecials", len(doc.LunchSpecials)),
	)

	return nil
}

// seedDocument builds the document to persist. The reduced dataset keeps
// the text defaults but ships an explicitly empty menu, which the merge
// layer must preserve rather than refill.
func seedDocument(reduced bool) entity.SiteSettings {
	doc := settings.Defaults()
	if reduced {
		doc.Categories = []entity.MenuCategory{}
		doc.LunchSpecials = []entity.LunchSpecial{}
	}

	return doc
}
