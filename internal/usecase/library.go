package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"libmgmt/internal/entity"
	"libmgmt/internal/isbn"
	"libmgmt/internal/store"
)

//go:generate mockgen -destination=mocks/mock_library.go -package=mocks libmgmt/internal/usecase Library

// Library is the set of operations presentation layers (console, HTTP) use.
type Library interface {
	AddBook(ctx context.Context, book entity.Book) Outcome[entity.Book]
	UpdateBook(ctx context.Context, book entity.Book) Outcome[entity.Book]
	DeleteBook(ctx context.Context, isbn string) Outcome[bool]
	GetBook(ctx context.Context, isbn string) Outcome[entity.Book]
	ListAllBooks(ctx context.Context) Outcome[[]entity.Book]
}

// LibraryService validates ISBNs and translates repository results into
// library error codes. It holds no state of its own.
type LibraryService struct {
	repo      store.BookRepository
	validator isbn.Validator
	logger    *slog.Logger
}

func NewLibraryService(repo store.BookRepository, validator isbn.Validator, logger *slog.Logger) *LibraryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LibraryService{
		repo:      repo,
		validator: validator,
		logger:    logger,
	}
}

func (s *LibraryService) AddBook(ctx context.Context, book entity.Book) Outcome[entity.Book] {
	if !s.validator.IsValid(book.ISBN) {
		return s.rejectISBN("AddBook", book.ISBN)
	}
	return guard(s, "AddBook", func() Outcome[entity.Book] {
		return translate(s, "AddBook", s.repo.Add(ctx, book), true)
	})
}

func (s *LibraryService) UpdateBook(ctx context.Context, book entity.Book) Outcome[entity.Book] {
	if !s.validator.IsValid(book.ISBN) {
		return s.rejectISBN("UpdateBook", book.ISBN)
	}
	return guard(s, "UpdateBook", func() Outcome[entity.Book] {
		return translate(s, "UpdateBook", s.repo.Update(ctx, book), false)
	})
}

func (s *LibraryService) DeleteBook(ctx context.Context, isbn string) Outcome[bool] {
	if !s.validator.IsValid(isbn) {
		return rejectISBN[bool](s, "DeleteBook", isbn)
	}
	return guard(s, "DeleteBook", func() Outcome[bool] {
		return translate(s, "DeleteBook", s.repo.Delete(ctx, isbn), false)
	})
}

func (s *LibraryService) GetBook(ctx context.Context, isbn string) Outcome[entity.Book] {
	if !s.validator.IsValid(isbn) {
		return s.rejectISBN("GetBook", isbn)
	}
	return guard(s, "GetBook", func() Outcome[entity.Book] {
		return translate(s, "GetBook", s.repo.GetByKey(ctx, isbn), false)
	})
}

// ListAllBooks returns every stored book in no particular order. Any
// repository failure is reported as CodeStorageFault.
func (s *LibraryService) ListAllBooks(ctx context.Context) Outcome[[]entity.Book] {
	return guard(s, "ListAllBooks", func() Outcome[[]entity.Book] {
		res := s.repo.GetAll(ctx)
		if !res.OK() {
			s.logger.Warn("repository call failed", "op", "ListAllBooks", "kind", res.Err.String(), "message", res.Message)
			return failure[[]entity.Book](CodeStorageFault, res.Message)
		}
		return success(res.Value)
	})
}

func (s *LibraryService) rejectISBN(op, candidate string) Outcome[entity.Book] {
	return rejectISBN[entity.Book](s, op, candidate)
}

func rejectISBN[T any](s *LibraryService, op, candidate string) Outcome[T] {
	s.logger.Debug("rejected isbn", "op", op, "isbn", candidate)
	return failure[T](CodeInvalidISBN, fmt.Sprintf("%q is not a valid ISBN", candidate))
}

// translate maps a repository result to an outcome. KeyDuplicate only maps to
// CodeISBNAlreadyExists when duplicates are an expected answer (Add).
func translate[T any](s *LibraryService, op string, res store.Result[T], duplicateExpected bool) Outcome[T] {
	if res.OK() {
		return success(res.Value)
	}

	code := CodeStorageFault
	switch {
	case res.Err == store.KindKeyNotFound:
		code = CodeISBNNotFound
	case res.Err == store.KindKeyDuplicate && duplicateExpected:
		code = CodeISBNAlreadyExists
	}

	level := slog.LevelInfo
	if code == CodeStorageFault {
		level = slog.LevelWarn
	}
	s.logger.Log(context.Background(), level, "repository call failed",
		"op", op, "kind", res.Err.String(), "code", code.String(), "message", res.Message)
	return failure[T](code, res.Message)
}

// guard turns a panic raised during a repository call into
// CodeUnexpectedFault, keeping the panic value as the message.
func guard[T any](s *LibraryService, op string, call func() Outcome[T]) (out Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("repository call panicked", "op", op, "panic", r)
			out = failure[T](CodeUnexpectedFault, fmt.Sprint(r))
		}
	}()
	return call()
}
