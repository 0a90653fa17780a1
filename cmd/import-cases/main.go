package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"expedientes_app_go/config"
	"expedientes_app_go/db"
	"expedientes_app_go/repository"
	"expedientes_app_go/services"
)

func main() {
	templatePath := flag.String("template", "", "write an empty import workbook to this path and exit")
	owners := flag.String("owners", "", "comma separated user ids for cases without owners")
	flag.Parse()

	if *templatePath != "" {
		buf, err := services.GenerateImportTemplate()
		if err != nil {
			log.Fatalf("Failed to generate template: %v", err)
		}
		if err := os.WriteFile(*templatePath, buf.Bytes(), 0644); err != nil {
			log.Fatalf("Failed to write template: %v", err)
		}
		log.Printf("Template written to %s", *templatePath)
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: import-cases [-owners u1,u2] <file.xlsx>")
		fmt.Fprintln(os.Stderr, "       import-cases -template <out.xlsx>")
		os.Exit(2)
	}

	// Load configuration
	cfg := config.Load()
	ctx := context.Background()

	store, closeStore, err := db.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer closeStore()

	file, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to open %s: %v", flag.Arg(0), err)
	}
	defer file.Close()

	var defaultOwners []string
	for _, id := range strings.Split(*owners, ",") {
		if id = strings.TrimSpace(id); id != "" {
			defaultOwners = append(defaultOwners, id)
		}
	}

	repo := repository.New(ctx, store)
	result, err := services.ImportFromExcel(ctx, repo, file, defaultOwners)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("Processed %d case rows: %d imported, %d failed, %d new clients",
		result.TotalProcessed, result.SuccessCount, result.FailedCount, result.ClientsCreated)
	for _, e := range result.Errors {
		log.Printf("[WARNING] %s", e)
	}
}
