// importctl replaces the account store with the contents of a colon-delimited
// txt file, without going through the HTTP API. Useful for initial seeding.
//
//	importctl <path-to-txt-file>
//
// The target store location comes from DATA_FILE (default data/accounts.json).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/klorpe/accountpool/internal/core/service"
	"github.com/klorpe/accountpool/internal/infrastructure/config"
	"github.com/klorpe/accountpool/internal/infrastructure/db/jsonfile"
	"github.com/klorpe/accountpool/pkg/logger"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: importctl <path-to-txt-file>")
		os.Exit(1)
	}

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	repo, err := jsonfile.NewAccountRepository(cfg.Store.DataFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.DataFile).Msg("failed to open account store")
	}

	svc := service.NewAccountService(repo, log)
	result, err := svc.ImportFromFile(context.Background(), os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}

	fmt.Printf("Imported %d accounts into %s\n", result.Count, cfg.Store.DataFile)
}
