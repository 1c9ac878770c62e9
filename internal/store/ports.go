package store

//go:generate mockgen -destination=mocks/mock_book_repository.go -package=mocks libmgmt/internal/store BookRepository

import (
	"context"

	"libmgmt/internal/entity"
)

// BookRepository owns the canonical ISBN-keyed collection of books.
// Implementations report every failure through the returned Result and never
// panic on backend errors.
type BookRepository interface {
	Add(ctx context.Context, book entity.Book) Result[entity.Book]
	GetByKey(ctx context.Context, isbn string) Result[entity.Book]
	GetAll(ctx context.Context) Result[[]entity.Book]
	Update(ctx context.Context, book entity.Book) Result[entity.Book]
	Delete(ctx context.Context, isbn string) Result[bool]
}
