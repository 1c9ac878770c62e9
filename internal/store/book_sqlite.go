package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"libmgmt/internal/entity"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS books (
    isbn        TEXT PRIMARY KEY,
    title       TEXT NOT NULL DEFAULT '',
    author      TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    created_at  DATETIME DEFAULT (datetime('now')),
    updated_at  DATETIME DEFAULT (datetime('now'))
);`

// OpenSQLite opens (or creates) the database at dsn and makes sure the books
// table exists. dsn examples: "file:library.db" or ":memory:".
func OpenSQLite(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// a :memory: database lives inside a single connection
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %s: %w", p, err)
		}
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return db, nil
}

// BookSQLite stores books in a local SQLite file.
type BookSQLite struct {
	db *sql.DB
}

func NewBookSQLite(db *sql.DB) *BookSQLite {
	return &BookSQLite{db: db}
}

func (r *BookSQLite) Add(ctx context.Context, book entity.Book) Result[entity.Book] {
	res, err := r.db.ExecContext(ctx, `
	INSERT INTO books (isbn, title, author, description)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(isbn) DO NOTHING
	`, book.ISBN, book.Title, book.Author, book.Description)
	if err != nil {
		return Fault[entity.Book]("insert book", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Fault[entity.Book]("insert book", err)
	}
	if n == 0 {
		return Duplicate[entity.Book](book.ISBN)
	}
	return Ok(book)
}

func (r *BookSQLite) GetByKey(ctx context.Context, isbn string) Result[entity.Book] {
	var b entity.Book
	err := r.db.QueryRowContext(ctx, `
	SELECT isbn, title, author, description
	FROM books
	WHERE isbn = ?
	`, isbn).Scan(&b.ISBN, &b.Title, &b.Author, &b.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NotFound[entity.Book](isbn)
		}
		return Fault[entity.Book]("select book", err)
	}
	return Ok(b)
}

func (r *BookSQLite) GetAll(ctx context.Context) Result[[]entity.Book] {
	rows, err := r.db.QueryContext(ctx, `SELECT isbn, title, author, description FROM books`)
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

func (r *BookSQLite) Update(ctx context.Context, book entity.Book) Result[entity.Book] {
	res, err := r.db.ExecContext(ctx, `
	UPDATE books
	SET title = ?, author = ?, description = ?, updated_at = datetime('now')
	WHERE isbn = ?
	`, book.Title, book.Author, book.Description, book.ISBN)
	if err != nil {
		return Fault[entity.Book]("update book", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Fault[entity.Book]("update book", err)
	}
	if n == 0 {
		return NotFound[entity.Book](book.ISBN)
	}
	return Ok(book)
}

func (r *BookSQLite) Delete(ctx context.Context, isbn string) Result[bool] {
	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE isbn = ?`, isbn)
	if err != nil {
		return Fault[bool]("delete book", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Fault[bool]("delete book", err)
	}
	if n == 0 {
		return NotFound[bool](isbn)
	}
	return Ok(true)
}
