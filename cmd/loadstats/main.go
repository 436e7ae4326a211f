// Command loadstats imports the champion statistics CSV. The import is
// all-or-nothing: a malformed row aborts without touching the database.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/haeun/worlds-banpick-archive/internal/config"
	"github.com/haeun/worlds-banpick-archive/internal/importer"
	"github.com/haeun/worlds-banpick-archive/internal/repository/postgres"
)

func main() {
	file := flag.String("file", "champion_stats.csv", "path to the stats CSV")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("failed to open %s: %v", *file, err)
	}
	defer f.Close()

	loader := importer.NewStatsLoader(db)
	imported, err := loader.Load(context.Background(), f)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	log.Printf("Imported %d champion stat rows from %s", imported, *file)
}
