// Command seed loads a fixed set of sample books into the configured store.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"libmgmt/internal/config"
	"libmgmt/internal/entity"
	"libmgmt/internal/isbn"
	"libmgmt/internal/platform/logging"
	"libmgmt/internal/store"
	"libmgmt/internal/usecase"
)

type cli struct {
	Store   config.Store   `embed:"" prefix:"store-"`
	Logging config.Logging `embed:"" prefix:"log-"`
}

var sampleBooks = []entity.Book{
	entity.NewBook("978-0-13-468599-1", "The Go Programming Language", "Alan A. A. Donovan, Brian W. Kernighan", "A thorough introduction to Go."),
	entity.NewBook("978-0-13-110362-7", "The C Programming Language", "Brian W. Kernighan, Dennis M. Ritchie", "The classic reference for C."),
	entity.NewBook("978-0-201-63361-0", "Design Patterns", "Erich Gamma, Richard Helm, Ralph Johnson, John Vlissides", "Elements of reusable object-oriented software."),
	entity.NewBook("978-0-13-235088-4", "Clean Code", "Robert C. Martin", "A handbook of agile software craftsmanship."),
	entity.NewBook("978-1-4493-7332-0", "Designing Data-Intensive Applications", "Martin Kleppmann", "The big ideas behind reliable, scalable systems."),
	entity.NewBook("0-306-40615-2", "Sample Ten Digit Edition", "Unknown", "Exercises the ISBN-10 form."),
}

// summary counts how each sample fared.
type summary struct {
	Added, Skipped, Failed int
}

func main() {
	config.LoadEnvFiles()

	var c cli
	if err := config.Parse(&c, "seed", "Insert sample books into the configured store.", os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.Init(os.Stdout, c.Logging.Level)
	ctx := context.Background()

	repo, closeRepo, err := store.Open(ctx, c.Store, logger)
	if err != nil {
		logger.Error("cannot open store", "error", err)
		os.Exit(1)
	}
	defer closeRepo()

	lib := usecase.NewLibraryService(repo, isbn.NewValidator(), logger)
	s := seed(ctx, lib, sampleBooks, logger)
	logger.Info("seeding finished", "added", s.Added, "skipped", s.Skipped, "failed", s.Failed)

	if s.Failed > 0 {
		closeRepo()
		os.Exit(1)
	}
}

// seed adds every book through the service. Books already present are
// reported and skipped.
func seed(ctx context.Context, lib usecase.Library, books []entity.Book, logger *slog.Logger) summary {
	var s summary
	for _, b := range books {
		out := lib.AddBook(ctx, b)
		switch {
		case out.IsSuccess():
			s.Added++
			logger.Info("book added", "isbn", b.ISBN, "title", b.Title)
		case out.Code == usecase.CodeISBNAlreadyExists:
			s.Skipped++
			logger.Info("book already present", "isbn", b.ISBN)
		default:
			s.Failed++
			logger.Error("cannot add book", "isbn", b.ISBN, "code", out.Code.String(), "message", out.Message)
		}
	}
	return s
}
