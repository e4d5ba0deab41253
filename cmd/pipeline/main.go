package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/davemendes/salespipe/internal/category"
	"github.com/davemendes/salespipe/internal/cleaning"
	"github.com/davemendes/salespipe/internal/config"
	"github.com/davemendes/salespipe/internal/database"
	"github.com/davemendes/salespipe/internal/export"
	"github.com/davemendes/salespipe/internal/ingest"
	"github.com/davemendes/salespipe/internal/retail"
	retailStore "github.com/davemendes/salespipe/internal/retail/store"
	"github.com/davemendes/salespipe/internal/rfm"
	rfmStore "github.com/davemendes/salespipe/internal/rfm/store"
	"github.com/davemendes/salespipe/internal/sqlscript"
	"github.com/davemendes/salespipe/internal/transform"
)

// Pipeline steps selectable with -steps. "all" runs them in this order.
const (
	stepSchema  = "schema"
	stepProcess = "process"
	stepRFM     = "rfm"
	stepAll     = "all"
)

func main() {
	steps := flag.String("steps", stepAll, "comma-separated steps to run: schema, process, rfm, or all")
	flag.Parse()

	_ = godotenv.Load()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil)).
		With("run_id", uuid.NewString())

	if err := run(context.Background(), log, *steps); err != nil {
		log.Error("pipeline failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, steps string) error {
	selected, err := parseSteps(steps)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	if selected[stepSchema] {
		if err := sqlscript.NewRunner(db, log).RunFile(ctx, cfg.Data.SchemaFile); err != nil {
			return fmt.Errorf("provisioning schema: %w", err)
		}
	}

	exporter := export.NewService(cfg.Data.ProcessedDir)

	if selected[stepProcess] {
		if err := runProcess(ctx, log, cfg, db, exporter); err != nil {
			return err
		}
	}

	if selected[stepRFM] {
		if err := runRFM(ctx, log, db, exporter); err != nil {
			return err
		}
	}

	log.Info("pipeline finished")

	return nil
}

// runProcess takes the raw sales export through cleaning, classification
// and normalization, then saves the entities to CSV and loads them into
// the database.
func runProcess(ctx context.Context, log *slog.Logger, cfg *config.Config, db *sql.DB, exporter *export.Service) error {
	rows, err := ingest.ReadFile(cfg.Data.RawFile)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cfg.Data.RawFile, err)
	}

	log.Info("raw data loaded", "file", cfg.Data.RawFile, "rows", len(rows))

	cleaned, report := cleaning.New(log).Clean(rows)
	log.Info("cleaning finished", "input", report.Input, "output", report.Output)

	for i := range cleaned {
		cleaned[i].Category = category.Classify(cleaned[i].Description)
	}

	set := transform.ToEntities(cleaned)
	log.Info("entities built",
		"customers", len(set.Customers),
		"products", len(set.Products),
		"orders", len(set.Orders),
		"order_items", len(set.OrderItems))

	if err := exporter.SaveEntities(set); err != nil {
		return fmt.Errorf("saving processed data: %w", err)
	}

	if _, err := retail.NewService(retailStore.New(db), log).Load(ctx, set); err != nil {
		return fmt.Errorf("loading entities: %w", err)
	}

	return nil
}

// runRFM scores the customers currently in the database and replaces the
// stored segments, then saves them to CSV.
func runRFM(ctx context.Context, log *slog.Logger, db *sql.DB, exporter *export.Service) error {
	segments, err := rfm.NewService(rfmStore.New(db), log).Analyze(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("rfm analysis: %w", err)
	}

	if err := exporter.SaveSegments(segments); err != nil {
		return fmt.Errorf("saving segments: %w", err)
	}

	return nil
}

func parseSteps(steps string) (map[string]bool, error) {
	selected := map[string]bool{}

	for _, step := range strings.Split(steps, ",") {
		switch strings.TrimSpace(step) {
		case stepAll:
			selected[stepSchema] = true
			selected[stepProcess] = true
			selected[stepRFM] = true
		case stepSchema, stepProcess, stepRFM:
			selected[strings.TrimSpace(step)] = true
		case "":
		default:
			return nil, fmt.Errorf("unknown step %q", step)
		}
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("no steps selected")
	}

	return selected, nil
}
