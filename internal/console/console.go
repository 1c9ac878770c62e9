// Package console is the interactive, line-oriented front end of the library.
// It reads menu choices and book fields from an input stream and prints the
// results of library operations.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"libmgmt/internal/entity"
	"libmgmt/internal/isbn"
	"libmgmt/internal/usecase"

	"github.com/charmbracelet/lipgloss"
)

const (
	choiceAdd    = "1"
	choiceUpdate = "2"
	choiceDelete = "3"
	choiceList   = "4"
	choiceView   = "5"
	choiceExit   = "9"
)

type styles struct {
	prompt  lipgloss.Style
	option  lipgloss.Style
	text    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		prompt:  r.NewStyle().Foreground(lipgloss.Color("11")),
		option:  r.NewStyle().Foreground(lipgloss.Color("3")),
		text:    r.NewStyle().Foreground(lipgloss.Color("7")),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Console drives a Library from a text menu.
type Console struct {
	lib       usecase.Library
	validator isbn.Validator
	in        *bufio.Scanner
	out       io.Writer
	style     styles
}

func New(lib usecase.Library, validator isbn.Validator, in io.Reader, out io.Writer) *Console {
	return &Console{
		lib:       lib,
		validator: validator,
		in:        bufio.NewScanner(in),
		out:       out,
		style:     newStyles(out),
	}
}

// Run shows the menu until the user picks exit or the input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.showMenu()
		line, ok := c.readLine()
		if !ok {
			return c.in.Err()
		}

		switch strings.TrimSpace(line) {
		case choiceAdd:
			c.addBook(ctx)
		case choiceUpdate:
			c.updateBook(ctx)
		case choiceDelete:
			c.deleteBook(ctx)
		case choiceList:
			c.listBooks(ctx)
		case choiceView:
			c.viewBook(ctx)
		case choiceExit:
			return nil
		default:
			c.showInvalidInput()
		}
	}
}

func (c *Console) addBook(ctx context.Context) {
	book, ok := c.readBook()
	if !ok {
		return
	}
	out := c.lib.AddBook(ctx, book)
	c.report("AddBook", out.IsSuccess(), out.Code)
}

func (c *Console) updateBook(ctx context.Context) {
	book, ok := c.readBook()
	if !ok {
		return
	}
	out := c.lib.UpdateBook(ctx, book)
	c.report("UpdateBook", out.IsSuccess(), out.Code)
}

func (c *Console) deleteBook(ctx context.Context) {
	key := c.readProperty("ISBN")
	out := c.lib.DeleteBook(ctx, key)
	c.report("DeleteBook", out.IsSuccess(), out.Code)
}

func (c *Console) listBooks(ctx context.Context) {
	out := c.lib.ListAllBooks(ctx)
	c.report("ListAllBooks", out.IsSuccess(), out.Code)
	if out.IsSuccess() {
		c.presentBooks(out.Value)
	}
}

func (c *Console) viewBook(ctx context.Context) {
	key := c.readProperty("ISBN")
	out := c.lib.GetBook(ctx, key)
	c.report("GetBook", out.IsSuccess(), out.Code)
	if out.IsSuccess() {
		c.presentBook(out.Value)
	}
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// readBook asks for every book field. It stops early, returning false, when
// the ISBN is malformed.
func (c *Console) readBook() (entity.Book, bool) {
	c.println(c.style.prompt, "Please input the following info for the book:")
	c.println(c.style.option, "ISBN number:")
	key, _ := c.readLine()
	if !c.validator.IsValid(key) {
		c.showInvalidInput()
		return entity.Book{}, false
	}
	c.println(c.style.text, "Book ISBN number: "+key)
	fmt.Fprintln(c.out)

	title := c.readProperty("Title")
	author := c.readProperty("Author")
	description := c.readProperty("Description")
	return entity.NewBook(key, title, author, description), true
}

func (c *Console) readProperty(name string) string {
	c.println(c.style.option, name+":")
	value, _ := c.readLine()
	c.println(c.style.text, fmt.Sprintf("Book %s: %s", name, value))
	fmt.Fprintln(c.out)
	return value
}

func (c *Console) showMenu() {
	c.println(c.style.prompt, "Please choose from following options:")
	c.println(c.style.option, "1. Add a new book.")
	c.println(c.style.option, "2. Update an existing book.")
	c.println(c.style.option, "3. Delete a book.")
	c.println(c.style.option, "4. List all books.")
	c.println(c.style.option, "5. View details of a specific book.")
	c.println(c.style.option, "9. Exit.")
}

func (c *Console) showInvalidInput() {
	c.println(c.style.failure, "Invalid input, please try again.")
	fmt.Fprintln(c.out)
}

func (c *Console) report(op string, ok bool, code usecase.ErrorCode) {
	if ok {
		c.println(c.style.success, fmt.Sprintf("Operation %s is successful.", op))
		return
	}
	c.println(c.style.failure, fmt.Sprintf("Operation %s is unsuccessful with error code: %d (%s).", op, int64(code), code))
}

func (c *Console) presentBooks(books []entity.Book) {
	c.println(c.style.text, fmt.Sprintf("Book list with %d books", len(books)))
	fmt.Fprintln(c.out)
	for _, b := range books {
		c.presentBook(b)
	}
}

func (c *Console) presentBook(b entity.Book) {
	c.println(c.style.text, "-------------------------------")
	c.println(c.style.text, "Book Title: "+b.Title)
	c.println(c.style.text, "ISBN: "+b.ISBN)
	c.println(c.style.text, "Author: "+b.Author)
	c.println(c.style.text, "Description: "+b.Description)
	fmt.Fprintln(c.out)
}

func (c *Console) println(style lipgloss.Style, s string) {
	fmt.Fprintln(c.out, style.Render(s))
}
