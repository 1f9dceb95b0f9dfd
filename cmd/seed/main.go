// Command seed populates the dish catalog with a default set of active
// dishes. It is intended to be run once against a fresh database, not as
// part of the main server; dishes whose names already exist are skipped.
//
// Flags:
//
//	--dry-run  report what would be inserted without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"weekly-menu/internal/domain/dish"
	"weekly-menu/internal/infra/repository"
	"weekly-menu/internal/pkg/config"

	"github.com/georgysavva/scany/v2/pgxscan"

	infradb "weekly-menu/internal/infra/db"
)

var defaultDishes = []struct {
	Name     string
	Category dish.Category
}{
	{"Kabuli Pulao", dish.CategoryRice},
	{"Chalow", dish.CategoryRice},
	{"Qorma-e-Murgh", dish.CategoryMeat},
	{"Kofta", dish.CategoryMeat},
	{"Chapli Kebab", dish.CategoryMeat},
	{"Sabzi Palak", dish.CategorySabzi},
	{"Borani Banjan", dish.CategorySabzi},
	{"Ashak", dish.CategoryRegular},
	{"Bolani", dish.CategoryRegular},
	{"Mantu", dish.CategoryRegular},
}

func main() {
	dryRunFlag := flag.Bool("dry-run", false, "report what would be inserted without writing to DB")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, cleanup, err := infradb.Connect(cfg.DB)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	var existing []string
	if err := pgxscan.Select(ctx, pool, &existing, "SELECT name FROM dishes"); err != nil {
		logger.Error("list existing dishes", slog.String("error", err.Error()))
		os.Exit(1)
	}
	seen := make(map[string]bool, len(existing))
	for _, name := range existing {
		seen[name] = true
	}

	repo := repository.NewDishRepository()
	now := time.Now()

	inserted := 0
	for _, d := range defaultDishes {
		if seen[d.Name] {
			logger.Info("skipping existing dish", slog.String("name", d.Name))
			continue
		}
		entity, err := dish.NewSeeded(d.Name, d.Category, now)
		if err != nil {
			logger.Error("invalid dish", slog.String("name", d.Name), slog.String("error", err.Error()))
			os.Exit(1)
		}
		if *dryRunFlag {
			logger.Info("would insert dish", slog.String("name", d.Name), slog.String("category", d.Category.String()))
			inserted++
			continue
		}
		if _, err := repo.Create(ctx, pool, entity); err != nil {
			logger.Error("insert dish", slog.String("name", d.Name), slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("inserted dish", slog.String("name", d.Name), slog.String("category", d.Category.String()))
		inserted++
	}

	logger.Info("seed completed", slog.Int("inserted", inserted), slog.Int("skipped", len(defaultDishes)-inserted))
}
