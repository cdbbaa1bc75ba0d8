package entities

import (
	"fmt"
	"reflect"

	"github.com/mrlokans/bookshelf/internal/utils"
)

// AudioBook is a Book with a positive duration.
// Use NewAudioBook; the zero value has no valid duration.
type AudioBook struct {
	Book
	duration float64
}

func NewAudioBook(name, author string, duration float64) (*AudioBook, error) {
	book := &AudioBook{Book: Book{name: name, author: author}}
	if err := book.SetDuration(duration); err != nil {
		return nil, err
	}
	return book, nil
}

// NewAudioBookFromValue builds an AudioBook from a duration whose type is only
// known at runtime. Only floating point kinds are accepted.
func NewAudioBookFromValue(name, author string, duration any) (*AudioBook, error) {
	book := &AudioBook{Book: Book{name: name, author: author}}
	if err := book.SetDurationValue(duration); err != nil {
		return nil, err
	}
	return book, nil
}

func (b *AudioBook) Duration() float64 {
	return b.duration
}

// SetDuration stores duration if it is strictly positive. NaN is rejected.
func (b *AudioBook) SetDuration(duration float64) error {
	if !(duration > 0) {
		return invalidValue(AudioBookType, "duration", duration)
	}
	b.duration = duration
	return nil
}

// SetDurationValue checks that v is a floating point value before delegating
// to SetDuration. Integers are rejected even when they are positive.
func (b *AudioBook) SetDurationValue(v any) error {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		duration := rv.Float()
		if !(duration > 0) {
			return invalidValue(AudioBookType, "duration", v)
		}
		return b.SetDuration(duration)
	default:
		return typeMismatch(AudioBookType, "duration", v)
	}
}

// String returns "Audio book <name>. Author <author>. Duration <duration>".
func (b *AudioBook) String() string {
	return fmt.Sprintf("Audio book %s. Author %s. Duration %s", b.name, b.author, utils.FormatFloat(b.duration))
}

// GoString returns AudioBook(name='<name>', author='<author>', duration=<duration>).
func (b *AudioBook) GoString() string {
	return fmt.Sprintf("%s(%s, duration=%s)", AudioBookType, b.fieldsLiteral(), utils.FormatFloat(b.duration))
}
