// Command libmgmt is the interactive console for managing the book library.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"libmgmt/internal/config"
	"libmgmt/internal/console"
	"libmgmt/internal/isbn"
	"libmgmt/internal/platform/logging"
	"libmgmt/internal/store"
	"libmgmt/internal/usecase"
)

type cli struct {
	Store   config.Store   `embed:"" prefix:"store-"`
	Logging config.Logging `embed:"" prefix:"log-"`
}

func main() {
	config.LoadEnvFiles()

	c := cli{}
	if err := config.Parse(&c, "libmgmt", "Manage a library of books from the terminal.", os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// logs go to stderr so they do not interleave with the menu
	logger := logging.Init(os.Stderr, c.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	repo, closeRepo, err := store.Open(ctx, c.Store, logger)
	if err != nil {
		logger.Error("cannot open store", "error", err)
		os.Exit(1)
	}
	defer closeRepo()

	validator := isbn.NewValidator()
	lib := usecase.NewLibraryService(repo, validator, logger)

	if err := console.New(lib, validator, os.Stdin, os.Stdout).Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("console stopped", "error", err)
		closeRepo()
		os.Exit(1)
	}
}
