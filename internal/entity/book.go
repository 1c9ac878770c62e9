package entity

// Book is the only record the library manages. ISBN is its storage key and
// is not changed once the book is created.
type Book struct {
	ISBN        string `json:"isbn" validate:"required,isbn"`
	Title       string `json:"title" validate:"max=500"`
	Author      string `json:"author" validate:"max=300"`
	Description string `json:"description" validate:"max=5000"`
}

// NewBook returns a book identified by isbn.
func NewBook(isbn, title, author, description string) Book {
	return Book{
		ISBN:        isbn,
		Title:       title,
		Author:      author,
		Description: description,
	}
}
