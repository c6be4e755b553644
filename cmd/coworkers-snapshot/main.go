// Command coworkers-snapshot loads the department catalog and the coworker
// list from a running coworker API and prints them as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/spec-kit/coworker-service/internal/config"
	"github.com/spec-kit/coworker-service/internal/observability"
	"github.com/spec-kit/coworker-service/pkg/coworkers"
)

type snapshot struct {
	Departments []string           `json:"departments"`
	Coworkers   []coworkers.Record `json:"coworkers"`
}

func main() {
	search := flag.String("search", "", "name or role substring")
	department := flag.String("department", coworkers.AllDepartments, "exact department name")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	criteria := coworkers.Criteria{SearchText: *search, Department: *department}
	if err := run(ctx, cfg.Client, criteria, logger, os.Stdout); err != nil {
		logger.Error("snapshot failed", zap.String("base_url", cfg.Client.BaseURL), zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.ClientConfig, criteria coworkers.Criteria, logger *zap.Logger, out io.Writer) error {
	client := coworkers.NewClient(
		coworkers.WithBaseURL(cfg.BaseURL),
		coworkers.WithTimeout(cfg.Timeout()),
		coworkers.WithLogger(logger.Named("client")),
	)
	orch := coworkers.NewOrchestrator(client, logger.Named("sync"))
	orch.SetSearchText(criteria.SearchText)
	orch.SetDepartment(criteria.Department)

	if err := orch.LoadInitial(ctx); err != nil {
		return err
	}

	view := orch.View()
	logger.Info("snapshot loaded",
		zap.Int("coworkers", len(view.Records)),
		zap.Int("departments", len(view.Departments)))

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(snapshot{Departments: view.Departments, Coworkers: view.Records})
}
