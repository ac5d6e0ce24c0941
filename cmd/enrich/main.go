package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"github.com/JLemieux66/PE/internal/config"
	"github.com/JLemieux66/PE/internal/domain/sqlite"
	"github.com/JLemieux66/PE/internal/domain/sqlite/repository"
	"github.com/JLemieux66/PE/internal/infrastructure/crunchbase"
	"github.com/JLemieux66/PE/internal/infrastructure/swarm"
	"github.com/JLemieux66/PE/internal/service"
)

func main() {
	source := flag.String("source", "all", "provider to run: crunchbase, swarm or all")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}
	config.Load()

	db, err := sqlite.Init()
	if err != nil {
		log.Fatalf("unable to open database: %v", err)
	}

	companyRepo := repository.NewCompanyRepository(db)
	enricher := service.NewEnrichService(
		crunchbase.NewClient(config.CrunchbaseAPIKey),
		swarm.NewClient(config.SwarmAPIKey),
		companyRepo,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *source {
	case "crunchbase":
		runCrunchbase(ctx, enricher)
	case "swarm":
		runSwarm(ctx, enricher)
	case "all":
		runCrunchbase(ctx, enricher)
		runSwarm(ctx, enricher)
	default:
		log.Fatalf("unknown source %q, expected crunchbase, swarm or all", *source)
	}
}

func runCrunchbase(ctx context.Context, enricher *service.EnrichService) {
	if config.CrunchbaseAPIKey == "" {
		log.Fatalf("CRUNCHBASE_API_KEY is not set")
	}

	report, err := enricher.EnrichCrunchbase(ctx)
	if err != nil {
		log.Fatalf("crunchbase pass failed: %v", err)
	}
	log.Infof("crunchbase: processed=%d enriched=%d not_found=%d failed=%d",
		report.Processed, report.Enriched, report.NotFound, report.Failed)
}

func runSwarm(ctx context.Context, enricher *service.EnrichService) {
	if config.SwarmAPIKey == "" {
		log.Fatalf("SWARM_API_KEY is not set")
	}

	report, err := enricher.EnrichSwarm(ctx)
	if err != nil {
		log.Fatalf("swarm pass failed: %v", err)
	}
	log.Infof("swarm: processed=%d enriched=%d not_found=%d failed=%d",
		report.Processed, report.Enriched, report.NotFound, report.Failed)
}
