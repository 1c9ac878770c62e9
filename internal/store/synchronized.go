package store

import (
	"context"
	"sync"

	"libmgmt/internal/entity"
)

type synchronized struct {
	mu   sync.Mutex
	repo BookRepository
}

// Synchronized serialises every call to repo behind one mutex. Use it when a
// repository that is not goroutine-safe, such as MemoryStore, backs a server.
func Synchronized(repo BookRepository) BookRepository {
	return &synchronized{repo: repo}
}

func (s *synchronized) Add(ctx context.Context, book entity.Book) Result[entity.Book] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Add(ctx, book)
}

func (s *synchronized) GetByKey(ctx context.Context, isbn string) Result[entity.Book] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.GetByKey(ctx, isbn)
}

func (s *synchronized) GetAll(ctx context.Context) Result[[]entity.Book] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.GetAll(ctx)
}

func (s *synchronized) Update(ctx context.Context, book entity.Book) Result[entity.Book] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Update(ctx, book)
}

func (s *synchronized) Delete(ctx context.Context, isbn string) Result[bool] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Delete(ctx, isbn)
}
