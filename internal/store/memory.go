package store

import (
	"context"

	"libmgmt/internal/entity"
)

// MemoryStore keeps books in a map for the lifetime of the process.
// It is not safe for concurrent use; wrap it with Synchronized when it is
// shared between goroutines.
type MemoryStore struct {
	books map[string]entity.Book
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{books: make(map[string]entity.Book)}
}

func (s *MemoryStore) Add(_ context.Context, book entity.Book) Result[entity.Book] {
	if _, exists := s.books[book.ISBN]; exists {
		return Duplicate[entity.Book](book.ISBN)
	}
	s.books[book.ISBN] = book
	return Ok(book)
}

func (s *MemoryStore) GetByKey(_ context.Context, isbn string) Result[entity.Book] {
	book, exists := s.books[isbn]
	if !exists {
		return NotFound[entity.Book](isbn)
	}
	return Ok(book)
}

func (s *MemoryStore) GetAll(_ context.Context) Result[[]entity.Book] {
	books := make([]entity.Book, 0, len(s.books))
	for _, b := range s.books {
		books = append(books, b)
	}
	return Ok(books)
}

func (s *MemoryStore) Update(_ context.Context, book entity.Book) Result[entity.Book] {
	if _, exists := s.books[book.ISBN]; !exists {
		return NotFound[entity.Book](book.ISBN)
	}
	s.books[book.ISBN] = book
	return Ok(book)
}

func (s *MemoryStore) Delete(_ context.Context, isbn string) Result[bool] {
	if _, exists := s.books[isbn]; !exists {
		return NotFound[bool](isbn)
	}
	delete(s.books, isbn)
	return Ok(true)
}
