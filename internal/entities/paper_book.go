package entities

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
)

// PaperBook is a Book with a positive page count.
// Use NewPaperBook; the zero value has no valid page count.
type PaperBook struct {
	Book
	pages int
}

func NewPaperBook(name, author string, pages int) (*PaperBook, error) {
	book := &PaperBook{Book: Book{name: name, author: author}}
	if err := book.SetPages(pages); err != nil {
		return nil, err
	}
	return book, nil
}

// NewPaperBookFromValue builds a PaperBook from a page count whose type is only
// known at runtime. Any integer kind is accepted.
func NewPaperBookFromValue(name, author string, pages any) (*PaperBook, error) {
	book := &PaperBook{Book: Book{name: name, author: author}}
	if err := book.SetPagesValue(pages); err != nil {
		return nil, err
	}
	return book, nil
}

func (b *PaperBook) Pages() int {
	return b.pages
}

// SetPages stores pages if it is strictly positive.
func (b *PaperBook) SetPages(pages int) error {
	if pages <= 0 {
		return invalidValue(PaperBookType, "pages", pages)
	}
	b.pages = pages
	return nil
}

// SetPagesValue checks that v is an integer (any integer kind or *big.Int)
// before delegating to SetPages.
// Integers that do not fit into int are rejected as invalid values.
func (b *PaperBook) SetPagesValue(v any) error {
	if n, ok := v.(*big.Int); ok && n != nil {
		if n.Sign() <= 0 || !n.IsInt64() || n.Int64() > math.MaxInt {
			return invalidValue(PaperBookType, "pages", v)
		}
		return b.SetPages(int(n.Int64()))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n <= 0 || n > math.MaxInt {
			return invalidValue(PaperBookType, "pages", v)
		}
		return b.SetPages(int(n))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := rv.Uint()
		if n == 0 || n > math.MaxInt {
			return invalidValue(PaperBookType, "pages", v)
		}
		return b.SetPages(int(n))
	default:
		return typeMismatch(PaperBookType, "pages", v)
	}
}

// String returns "Paper book <name>. Author <author>. Page count <pages>".
func (b *PaperBook) String() string {
	return fmt.Sprintf("Paper book %s. Author %s. Page count %d", b.name, b.author, b.pages)
}

// GoString returns PaperBook(name='<name>', author='<author>', pages=<pages>).
func (b *PaperBook) GoString() string {
	return fmt.Sprintf("%s(%s, pages=%d)", PaperBookType, b.fieldsLiteral(), b.pages)
}
