package store

// Repository implementation (Postgres)

import (
	"context"
	"errors"
	"time"

	"libmgmt/internal/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type BookPG struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewBookPG(db *pgxpool.Pool, timeout time.Duration) *BookPG {
	return &BookPG{db: db, timeout: timeout}
}

func (r *BookPG) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *BookPG) Add(ctx context.Context, book entity.Book) Result[entity.Book] {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.db.Exec(ctx, `
	INSERT INTO books (isbn, title, author, description)
	VALUES ($1, $2, $3, $4)
	`, book.ISBN, book.Title, book.Author, book.Description)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return Duplicate[entity.Book](book.ISBN)
		}
		return Fault[entity.Book]("insert book", err)
	}
	return Ok(book)
}

func (r *BookPG) GetByKey(ctx context.Context, isbn string) Result[entity.Book] {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b entity.Book
	err := r.db.QueryRow(ctx, `
	SELECT isbn, title, author, description
	FROM books
	WHERE isbn = $1
	`, isbn).Scan(&b.ISBN, &b.Title, &b.Author, &b.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return NotFound[entity.Book](isbn)
		}
		return Fault[entity.Book]("select book", err)
	}
	return Ok(b)
}

func (r *BookPG) GetAll(ctx context.Context) Result[[]entity.Book] {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT isbn, title, author, description FROM books`)
	if err != nil {
		return Fault[[]entity.Book]("list books", err)
	}
	defer rows.Close()

	books := []entity.Book{}
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ISBN, &b.Title, &b.Author, &b.Description); err != nil {
			return Fault[[]entity.Book]("scan book", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return Fault[[]entity.Book]("list books", err)
	}
	return Ok(books)
}

func (r *BookPG) Update(ctx context.Context, book entity.Book) Result[entity.Book] {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
	UPDATE books
	SET title = $2, author = $3, description = $4, updated_at = NOW()
	WHERE isbn = $1
	`, book.ISBN, book.Title, book.Author, book.Description)
	if err != nil {
		return Fault[entity.Book]("update book", err)
	}
	if tag.RowsAffected() == 0 {
		return NotFound[entity.Book](book.ISBN)
	}
	return Ok(book)
}

func (r *BookPG) Delete(ctx context.Context, isbn string) Result[bool] {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE isbn = $1`, isbn)
	if err != nil {
		return Fault[bool]("delete book", err)
	}
	if tag.RowsAffected() == 0 {
		return NotFound[bool](isbn)
	}
	return Ok(true)
}
