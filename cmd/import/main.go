// Command import runs the bulk claim import: a claim-list source plus an
// optional claim-detail source, in append or overwrite mode, with
// dry-run diagnostics.
package main

import (
	"context"
	"flag"
	"log"

	"ClaimTrack/database"
	"ClaimTrack/importer"
	"ClaimTrack/repositories"
)

func main() {
	listPath := flag.String("list", "", "Path to claim list data (csv/json)")
	detailPath := flag.String("detail", "", "Path to claim detail data (csv/json)")
	modeFlag := flag.String("mode", "append", "append (default) or overwrite existing data")
	dryRun := flag.Bool("dry-run", false, "Parse files and show diagnostics without writing to DB")
	verbosity := flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 adds sample header dump")
	flag.Parse()

	if *listPath == "" {
		log.Fatal("the -list flag is required")
	}
	mode, ok := importer.ParseMode(*modeFlag)
	if !ok {
		log.Fatalf("invalid mode %q: use append or overwrite", *modeFlag)
	}

	dsn, err := database.LoadEnvConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx := context.Background()
	db, err := database.InitDB(ctx, dsn)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	orchestrator := importer.NewOrchestrator(repositories.NewImportRepository(db))
	if _, err := orchestrator.Run(ctx, importer.Options{
		ListPath:   *listPath,
		DetailPath: *detailPath,
		Mode:       mode,
		DryRun:     *dryRun,
		Verbosity:  *verbosity,
	}); err != nil {
		log.Fatalf("import failed: %v", err)
	}
}
