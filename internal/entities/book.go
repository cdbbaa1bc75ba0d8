// Package entities holds the book object model: a base Book carrying an
// immutable name and author, and the PaperBook and AudioBook variants that
// add a validated page count or duration.
//
// Every variant renders two strings. String returns the human readable
// display form; GoString (also used by the %#v verb) returns a
// reconstruction form that parsers.ParseDebugString turns back into an
// equal value.
package entities

import (
	"fmt"

	"github.com/mrlokans/bookshelf/internal/utils"
)

// Type names used in reconstruction strings
const (
	BookType      = "Book"
	PaperBookType = "PaperBook"
	AudioBookType = "AudioBook"
)

// Publication is the capability set shared by every kind of book.
type Publication interface {
	Name() string
	Author() string
	fmt.Stringer
	fmt.GoStringer
}

// Book is the base book. Name and author are fixed at construction.
type Book struct {
	name   string
	author string
}

// NewBook accepts any name and author, including empty ones.
func NewBook(name, author string) *Book {
	return &Book{name: name, author: author}
}

func (b *Book) Name() string {
	return b.name
}

func (b *Book) Author() string {
	return b.author
}

// String returns "Book <name>. Author <author>".
func (b *Book) String() string {
	return fmt.Sprintf("Book %s. Author %s", b.name, b.author)
}

// GoString returns Book(name='<name>', author='<author>').
func (b *Book) GoString() string {
	return fmt.Sprintf("%s(%s)", BookType, b.fieldsLiteral())
}

// fieldsLiteral renders the keyword arguments shared by all variants
func (b *Book) fieldsLiteral() string {
	return fmt.Sprintf("name=%s, author=%s", utils.QuoteString(b.name), utils.QuoteString(b.author))
}
