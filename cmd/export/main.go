// Command export regenerates the static story and stats pages under the
// configured output directory.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/haeun/worlds-banpick-archive/internal/config"
	"github.com/haeun/worlds-banpick-archive/internal/export"
	"github.com/haeun/worlds-banpick-archive/internal/repository/postgres"
)

func main() {
	outDir := flag.String("out", "", "output directory (default: EXPORT_DIR)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *outDir == "" {
		*outDir = cfg.ExportDir
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	repos := postgres.NewRepositories(db)
	exporter := export.NewExporter(repos.MatchStory, repos.ChampionStat, *outDir)

	written, err := exporter.Run(context.Background())
	if err != nil {
		log.Fatalf("export failed after %d documents: %v", written, err)
	}

	log.Printf("Exported %d documents to %s", written, *outDir)
}
