package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"github.com/JLemieux66/PE/internal/domain/sqlite"
	"github.com/JLemieux66/PE/internal/domain/sqlite/repository"
	"github.com/JLemieux66/PE/internal/service"
)

func main() {
	dir := flag.String("dir", "", "directory of scraper JSON exports, one file per firm")
	flag.Parse()

	files := flag.Args()
	if *dir != "" {
		globbed, err := filepath.Glob(filepath.Join(*dir, "*.json"))
		if err != nil {
			log.Fatalf("unable to list %s: %v", *dir, err)
		}
		files = append(files, globbed...)
	}
	if len(files) == 0 {
		log.Fatalf("nothing to import, pass export files or -dir")
	}

	if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	db, err := sqlite.Init()
	if err != nil {
		log.Fatalf("unable to open database: %v", err)
	}

	importer := service.NewImportService(
		repository.NewCompanyRepository(db),
		repository.NewFirmRepository(db),
		repository.NewInvestmentRepository(db),
	)

	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			log.Errorf("%s: %v", path, err)
			continue
		}

		report, err := importer.ImportJSON(f)
		f.Close()
		if err != nil {
			log.Errorf("%s: %v", path, err)
			continue
		}

		log.Infof("%s: firm=%q created=%d updated=%d investments=%d skipped=%d",
			filepath.Base(path), report.Firm, report.CompaniesCreated,
			report.CompaniesUpdated, report.InvestmentsSaved, report.Skipped)
	}
}
