package main

import (
	"context"
	"flag"
	"log"

	"expedientes_app_go/config"
	"expedientes_app_go/db"
)

// migrate-store copies the stored dataset from the configured driver to another one,
// e.g. from the local JSON file to sqlite before switching STORE_DRIVER.
func main() {
	target := flag.String("to", config.StoreDriverSQLite, "destination store driver (memory, file, sqlite, r2)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	ctx := context.Background()

	if *target == cfg.StoreDriver {
		log.Fatalf("Source and destination are both %q", *target)
	}

	source, closeSource, err := db.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open source storage: %v", err)
	}
	defer closeSource()

	doc, ok := source.Load(ctx)
	if !ok {
		log.Println("No dataset stored in the source, nothing to migrate")
		return
	}

	destCfg := *cfg
	destCfg.StoreDriver = *target
	if err := destCfg.Validate(); err != nil {
		log.Fatalf("Invalid destination: %v", err)
	}
	dest, closeDest, err := db.OpenStore(ctx, &destCfg)
	if err != nil {
		log.Fatalf("Failed to open destination storage: %v", err)
	}
	defer closeDest()

	dest.Save(ctx, doc)
	log.Printf("Migrated dataset %s: %d clients, %d cases, %d deadlines, %d hearings, %d fees, %d invoices, %d users",
		cfg.StorageKey, len(doc.Clients), len(doc.Cases), len(doc.Deadlines), len(doc.Hearings), len(doc.Fees), len(doc.Invoices), len(doc.Users))
}
