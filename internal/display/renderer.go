// Package display renders localized display strings for books.
//
// The English templates match the entities String methods exactly. Russian
// templates carry the wording of the original lab assignment.
package display

import (
	"fmt"
	"log"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/utils"
	"golang.org/x/text/language"
)

type templates struct {
	book      string // name, author
	paperBook string // name, author, pages
	audioBook string // name, author, duration
}

var supported = []language.Tag{
	language.English, // first entry is the matcher's default
	language.Russian,
}

var catalog = map[language.Tag]templates{
	language.English: {
		book:      "Book %s. Author %s",
		paperBook: "Paper book %s. Author %s. Page count %d",
		audioBook: "Audio book %s. Author %s. Duration %s",
	},
	language.Russian: {
		book:      "Книга %s. Автор %s",
		paperBook: "Бумажная книга %s. Автор %s. Количество страниц %d",
		audioBook: "Аудиокнига %s. Автор %s. Продолжительность %s",
	},
}

var matcher = language.NewMatcher(supported)

type Renderer struct {
	locale    language.Tag
	templates templates
}

// NewRenderer resolves the configured locale against the supported ones.
// Unsupported or malformed locales fall back to cfg.FallbackLocale, then English.
func NewRenderer(cfg config.Display) *Renderer {
	tag, ok := matchLocale(cfg.Locale)
	if !ok {
		log.Printf("WARNING: display locale '%s' is not supported, falling back to '%s'", cfg.Locale, cfg.FallbackLocale)
		tag, ok = matchLocale(cfg.FallbackLocale)
		if !ok {
			log.Printf("WARNING: fallback display locale '%s' is not supported, using English", cfg.FallbackLocale)
			tag = language.English
		}
	}

	return &Renderer{
		locale:    tag,
		templates: catalog[tag],
	}
}

// NewRendererFromEnv builds a Renderer from the DISPLAY_* environment settings.
func NewRendererFromEnv() *Renderer {
	return NewRenderer(config.NewConfig().Display)
}

func matchLocale(locale string) (language.Tag, bool) {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Und, false
	}
	return supported[index], true
}

// Locale returns the resolved locale.
func (r *Renderer) Locale() language.Tag {
	return r.locale
}

// Render returns the display string of p in the renderer's locale.
// Publications other than the entities types render through their own String method.
func (r *Renderer) Render(p entities.Publication) string {
	switch book := p.(type) {
	case *entities.PaperBook:
		return fmt.Sprintf(r.templates.paperBook, book.Name(), book.Author(), book.Pages())
	case *entities.AudioBook:
		return fmt.Sprintf(r.templates.audioBook, book.Name(), book.Author(), utils.FormatFloat(book.Duration()))
	case *entities.Book:
		return fmt.Sprintf(r.templates.book, book.Name(), book.Author())
	default:
		return p.String()
	}
}
