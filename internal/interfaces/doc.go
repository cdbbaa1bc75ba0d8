// Package interfaces documents the core abstractions of the book model.
//
// # Publication
//
// entities.Publication is the capability set every book variant shares:
//
//   - Name() and Author(): read-only accessors, fixed at construction
//   - String(): the display string, e.g. "Paper book Dune. Author Herbert. Page count 412"
//   - GoString(): the reconstruction string, e.g. PaperBook(name='Dune', author='Herbert', pages=412)
//
// # Adding a New Book Variant
//
// To add a variant (e.g., an e-book with a file size):
//
//  1. Create internal/entities/e_book.go embedding Book:
//
//     type EBook struct {
//         Book
//         sizeKB int
//     }
//
//  2. Add a validated constructor and setter pair, returning *FieldError
//     wrapping ErrTypeMismatch or ErrInvalidValue:
//
//     func NewEBook(name, author string, sizeKB int) (*EBook, error)
//     func (b *EBook) SetSizeKB(sizeKB int) error
//     func (b *EBook) SetSizeKBValue(v any) error
//
//  3. Override String and GoString, reusing Book.fieldsLiteral for the
//     shared keyword arguments.
//
//  4. Register the parameter list in parsers.constructorParams and the
//     templates in display.catalog.
//
//  5. Add a compile-time check to checks.go:
//
//     var _ entities.Publication = (*entities.EBook)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the current set.
package interfaces
