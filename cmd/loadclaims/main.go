// Command loadclaims is the basic single-file ingestion path: one
// comma-separated claims CSV, upserted by claim identifier. It keeps its
// own header aliases and status defaulting, separate from the bulk
// importer.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"ClaimTrack/database"
	"ClaimTrack/importer"
	"ClaimTrack/repositories"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: loadclaims <csv_path>")
	}
	path := flag.Arg(0)

	dsn, err := database.LoadEnvConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx := context.Background()
	db, err := database.InitDB(ctx, dsn)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	simple := importer.NewSimpleImporter(repositories.NewImportRepository(db))
	created, updated, err := simple.Run(ctx, path)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}
	fmt.Printf("Done. Created: %d, Updated: %d\n", created, updated)
}
