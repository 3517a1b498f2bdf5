package main

import (
	"fmt"
	"os"

	"github.com/pageza/recipe-extract/backend/config"
	"github.com/pageza/recipe-extract/backend/internal/database"
	"github.com/pageza/recipe-extract/backend/internal/logger"
)

// migrate applies the schema and exits, for deployments that run
// migrations as a separate step.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(string(cfg.Environment), cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.New(cfg, log)
	if err != nil {
		log.Fatal(err.Error())
	}

	if err := database.Migrate(db, log); err != nil {
		log.Fatal(err.Error())
	}
	log.Info("migrations applied")
}
