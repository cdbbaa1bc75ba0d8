package parsers

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/utils"
)

var (
	// ErrSyntax indicates the text is not a well formed constructor call
	ErrSyntax = errors.New("invalid debug string syntax")
	// ErrUnknownType indicates the constructor name is not a known book type
	ErrUnknownType = errors.New("unknown book type")
	// ErrArgument indicates missing, duplicated or unexpected constructor arguments
	ErrArgument = errors.New("invalid constructor argument")
)

// constructorParams lists the parameters of each book type in positional order
var constructorParams = map[string][]string{
	entities.BookType:      {"name", "author"},
	entities.PaperBookType: {"name", "author", "pages"},
	entities.AudioBookType: {"name", "author", "duration"},
}

// ParseDebugString rebuilds a book from the text produced by its GoString method.
//
// The text is read as a constructor call such as
// PaperBook(name='Dune', author='Herbert', pages=412). Arguments may be given
// by keyword or by position. Integer literals decode to int (or *big.Int when
// they overflow int) and float literals to float64, so the usual field validation applies: a quoted page count or an
// integer duration fails with entities.ErrTypeMismatch.
func ParseDebugString(s string) (entities.Publication, error) {
	call, err := newCallParser(s).parse()
	if err != nil {
		return nil, err
	}

	params, ok := constructorParams[call.typeName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, call.typeName)
	}

	values, err := bindArguments(call, params)
	if err != nil {
		return nil, err
	}

	name, err := textArgument(call.typeName, "name", values["name"])
	if err != nil {
		return nil, err
	}
	author, err := textArgument(call.typeName, "author", values["author"])
	if err != nil {
		return nil, err
	}

	switch call.typeName {
	case entities.PaperBookType:
		book, err := entities.NewPaperBookFromValue(name, author, values["pages"])
		if err != nil {
			return nil, err
		}
		return book, nil
	case entities.AudioBookType:
		book, err := entities.NewAudioBookFromValue(name, author, values["duration"])
		if err != nil {
			return nil, err
		}
		return book, nil
	default:
		return entities.NewBook(name, author), nil
	}
}

// bindArguments maps positional and keyword arguments onto parameter names
func bindArguments(call *constructorCall, params []string) (map[string]any, error) {
	if len(call.positional) > len(params) {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d positional",
			ErrArgument, call.typeName, len(params), len(call.positional))
	}

	values := make(map[string]any, len(params))
	for i, value := range call.positional {
		values[params[i]] = value
	}

	for _, kw := range call.keywords {
		if !containsParam(params, kw.name) {
			return nil, fmt.Errorf("%w: %s has no argument %q", ErrArgument, call.typeName, kw.name)
		}
		if _, seen := values[kw.name]; seen {
			return nil, fmt.Errorf("%w: %s got multiple values for %q", ErrArgument, call.typeName, kw.name)
		}
		values[kw.name] = kw.value
	}

	var missing []string
	for _, param := range params {
		if _, ok := values[param]; !ok {
			missing = append(missing, param)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s is missing %s", ErrArgument, call.typeName, strings.Join(missing, ", "))
	}

	return values, nil
}

func containsParam(params []string, name string) bool {
	for _, param := range params {
		if param == name {
			return true
		}
	}
	return false
}

func textArgument(typeName, field string, value any) (string, error) {
	text, ok := value.(string)
	if !ok {
		return "", &entities.FieldError{Type: typeName, Field: field, Value: value, Err: entities.ErrTypeMismatch}
	}
	return text, nil
}

type keywordArgument struct {
	name  string
	value any
}

type constructorCall struct {
	typeName   string
	positional []any
	keywords   []keywordArgument
}

type callParser struct {
	lexer *lexer
	tok   token
}

func newCallParser(input string) *callParser {
	return &callParser{lexer: &lexer{input: input}}
}

func (p *callParser) advance() error {
	tok, err := p.lexer.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *callParser) expect(kind tokenKind) (token, error) {
	tok := p.tok
	if tok.kind != kind {
		return tok, p.unexpected(kind.String())
	}
	return tok, p.advance()
}

func (p *callParser) unexpected(want string) error {
	return fmt.Errorf("%w: expected %s at offset %d, found %s", ErrSyntax, want, p.tok.pos, p.tok)
}

func (p *callParser) parse() (*constructorCall, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	typeTok, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}

	call := &constructorCall{typeName: typeTok.text}
	for p.tok.kind != tokRParen {
		if err := p.parseArgument(call); err != nil {
			return nil, err
		}
		if p.tok.kind == tokComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		if p.tok.kind != tokRParen {
			return nil, p.unexpected("',' or ')'")
		}
	}

	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.unexpected("end of input")
	}

	return call, nil
}

func (p *callParser) parseArgument(call *constructorCall) error {
	if p.tok.kind == tokIdent {
		nameTok := p.tok
		if err := p.advance(); err != nil {
			return err
		}
		if _, err := p.expect(tokEquals); err != nil {
			return err
		}
		value, err := p.parseValue()
		if err != nil {
			return err
		}
		call.keywords = append(call.keywords, keywordArgument{name: nameTok.text, value: value})
		return nil
	}

	if len(call.keywords) > 0 {
		return fmt.Errorf("%w: positional argument follows keyword argument at offset %d", ErrSyntax, p.tok.pos)
	}
	value, err := p.parseValue()
	if err != nil {
		return err
	}
	call.positional = append(call.positional, value)
	return nil
}

func (p *callParser) parseValue() (any, error) {
	tok := p.tok
	var value any

	switch tok.kind {
	case tokString:
		text, err := utils.UnquoteString(tok.text)
		if err != nil {
			return nil, fmt.Errorf("%w: offset %d: %w", ErrSyntax, tok.pos, err)
		}
		value = text
	case tokInt:
		n, err := strconv.Atoi(tok.text)
		if err == nil {
			value = n
			break
		}
		// Out of int range; entities decide whether the big value is acceptable
		wide, ok := new(big.Int).SetString(tok.text, 10)
		if !ok {
			return nil, fmt.Errorf("%w: bad integer %s at offset %d", ErrSyntax, tok.text, tok.pos)
		}
		value = wide
	case tokFloat:
		f, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad float %s at offset %d", ErrSyntax, tok.text, tok.pos)
		}
		value = f
	default:
		return nil, p.unexpected("a literal")
	}

	return value, p.advance()
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokInt
	tokFloat
	tokLParen
	tokRParen
	tokComma
	tokEquals
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokIdent:
		return "identifier"
	case tokString:
		return "string"
	case tokInt:
		return "integer"
	case tokFloat:
		return "float"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokComma:
		return "','"
	case tokEquals:
		return "'='"
	default:
		return "unknown token"
	}
}

type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) String() string {
	if t.kind == tokEOF {
		return t.kind.String()
	}
	return fmt.Sprintf("%s %q", t.kind, t.text)
}

type lexer struct {
	input string
	pos   int
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return token{kind: tokEOF, pos: l.pos}, nil
	}

	start := l.pos
	c := l.input[start]
	switch {
	case c == '(':
		l.pos++
		return token{kind: tokLParen, text: "(", pos: start}, nil
	case c == ')':
		l.pos++
		return token{kind: tokRParen, text: ")", pos: start}, nil
	case c == ',':
		l.pos++
		return token{kind: tokComma, text: ",", pos: start}, nil
	case c == '=':
		l.pos++
		return token{kind: tokEquals, text: "=", pos: start}, nil
	case c == '\'' || c == '"':
		return l.scanString()
	case c == '+' || c == '-' || c == '.' || isDigit(c):
		return l.scanNumber()
	case isIdentStart(c):
		return l.scanIdent(), nil
	default:
		return token{}, fmt.Errorf("%w: unexpected character %q at offset %d", ErrSyntax, c, start)
	}
}

func (l *lexer) scanString() (token, error) {
	start := l.pos
	quote := l.input[start]
	for i := start + 1; i < len(l.input); i++ {
		switch l.input[i] {
		case '\\':
			i++
		case quote:
			l.pos = i + 1
			return token{kind: tokString, text: l.input[start:l.pos], pos: start}, nil
		}
	}
	return token{}, fmt.Errorf("%w: unterminated string at offset %d", ErrSyntax, start)
}

func (l *lexer) scanNumber() (token, error) {
	start := l.pos
	if c := l.input[l.pos]; c == '+' || c == '-' {
		l.pos++
	}

	rest := l.input[l.pos:]
	for _, special := range []string{"inf", "nan"} {
		if strings.HasPrefix(rest, special) {
			l.pos += len(special)
			return token{kind: tokFloat, text: l.input[start:l.pos], pos: start}, nil
		}
	}

	kind := tokInt
	digits := l.scanDigits()
	if l.pos < len(l.input) && l.input[l.pos] == '.' {
		kind = tokFloat
		l.pos++
		digits += l.scanDigits()
	}
	if digits == 0 {
		return token{}, fmt.Errorf("%w: malformed number at offset %d", ErrSyntax, start)
	}
	if l.pos < len(l.input) && (l.input[l.pos] == 'e' || l.input[l.pos] == 'E') {
		kind = tokFloat
		l.pos++
		if l.pos < len(l.input) && (l.input[l.pos] == '+' || l.input[l.pos] == '-') {
			l.pos++
		}
		if l.scanDigits() == 0 {
			return token{}, fmt.Errorf("%w: malformed exponent at offset %d", ErrSyntax, start)
		}
	}

	return token{kind: kind, text: l.input[start:l.pos], pos: start}, nil
}

func (l *lexer) scanDigits() int {
	start := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	return l.pos - start
}

func (l *lexer) scanIdent() token {
	start := l.pos
	for l.pos < len(l.input) && (isIdentStart(l.input[l.pos]) || isDigit(l.input[l.pos])) {
		l.pos++
	}
	text := l.input[start:l.pos]
	if text == "inf" || text == "nan" {
		return token{kind: tokFloat, text: text, pos: start}
	}
	return token{kind: tokIdent, text: text, pos: start}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
