package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidLiteral is returned when a quoted literal cannot be decoded
var ErrInvalidLiteral = errors.New("invalid string literal")

// QuoteString renders text as a reconstruction literal.
// Single quotes are preferred; double quotes are used when the text contains
// a single quote but no double quote. Printable unicode is kept as is.
func QuoteString(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var builder strings.Builder
	builder.Grow(len(s) + 2)
	builder.WriteRune(quote)

	for i, r := range s {
		switch {
		case r == utf8.RuneError && isInvalidByte(s[i:]):
			// Undecodable bytes map onto the low surrogates U+DC80..U+DCFF
			fmt.Fprintf(&builder, `\u%04x`, surrogateEscapeBase+rune(s[i]))
		case r == quote || r == '\\':
			builder.WriteByte('\\')
			builder.WriteRune(r)
		case r == '\t':
			builder.WriteString(`\t`)
		case r == '\n':
			builder.WriteString(`\n`)
		case r == '\r':
			builder.WriteString(`\r`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&builder, `\x%02x`, r)
		case r < 0x7f || unicode.IsPrint(r):
			builder.WriteRune(r)
		case r <= 0xff:
			fmt.Fprintf(&builder, `\x%02x`, r)
		case r <= 0xffff:
			fmt.Fprintf(&builder, `\u%04x`, r)
		default:
			fmt.Fprintf(&builder, `\U%08x`, r)
		}
	}

	builder.WriteRune(quote)
	return builder.String()
}

// surrogateEscapeBase offsets raw bytes 0x80..0xff into the low surrogate range,
// which no valid rune of a Go string can occupy
const surrogateEscapeBase = 0xdc00

func isInvalidByte(s string) bool {
	_, size := utf8.DecodeRuneInString(s)
	return size == 1
}

// UnquoteString decodes a literal produced by QuoteString.
// Either quote style is accepted.
func UnquoteString(lit string) (string, error) {
	if len(lit) < 2 {
		return "", fmt.Errorf("%w: %q is too short", ErrInvalidLiteral, lit)
	}
	quote := lit[0]
	if (quote != '\'' && quote != '"') || lit[len(lit)-1] != quote {
		return "", fmt.Errorf("%w: %q is not quoted", ErrInvalidLiteral, lit)
	}

	body := lit[1 : len(lit)-1]
	var builder strings.Builder
	builder.Grow(len(body))

	for i := 0; i < len(body); {
		c := body[i]
		if c == quote {
			return "", fmt.Errorf("%w: unescaped quote at offset %d", ErrInvalidLiteral, i+1)
		}
		if c != '\\' {
			r, size := utf8.DecodeRuneInString(body[i:])
			if r == utf8.RuneError && size == 1 {
				builder.WriteByte(body[i])
			} else {
				builder.WriteRune(r)
			}
			i += size
			continue
		}

		if i+1 >= len(body) {
			return "", fmt.Errorf("%w: dangling backslash", ErrInvalidLiteral)
		}
		escape := body[i+1]
		i += 2

		switch escape {
		case '\\', '\'', '"':
			builder.WriteByte(escape)
		case 'n':
			builder.WriteByte('\n')
		case 'r':
			builder.WriteByte('\r')
		case 't':
			builder.WriteByte('\t')
		case 'a':
			builder.WriteByte('\a')
		case 'b':
			builder.WriteByte('\b')
		case 'f':
			builder.WriteByte('\f')
		case 'v':
			builder.WriteByte('\v')
		case 'x', 'u', 'U':
			width := 2
			if escape == 'u' {
				width = 4
			} else if escape == 'U' {
				width = 8
			}
			if i+width > len(body) {
				return "", fmt.Errorf("%w: truncated \\%c escape", ErrInvalidLiteral, escape)
			}
			code, err := strconv.ParseUint(body[i:i+width], 16, 32)
			if err != nil || code > unicode.MaxRune {
				return "", fmt.Errorf("%w: bad \\%c escape %q", ErrInvalidLiteral, escape, body[i:i+width])
			}
			switch {
			case escape == 'u' && code >= surrogateEscapeBase+0x80 && code <= surrogateEscapeBase+0xff:
				builder.WriteByte(byte(code - surrogateEscapeBase))
			case code >= 0xd800 && code <= 0xdfff:
				return "", fmt.Errorf("%w: lone surrogate \\%c%s", ErrInvalidLiteral, escape, body[i:i+width])
			default:
				builder.WriteRune(rune(code))
			}
			i += width
		default:
			return "", fmt.Errorf("%w: unknown escape \\%c", ErrInvalidLiteral, escape)
		}
	}

	return builder.String(), nil
}

// FormatFloat renders f as the shortest decimal that parses back to the same
// value. Integral values keep a trailing ".0" so they still read as floats.
// Exponent notation is used below 1e-4 and from 1e16 upwards.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	if exp := decimalExponent(f); exp < -4 || exp >= 16 {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func decimalExponent(f float64) int {
	s := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(s[strings.IndexByte(s, 'e')+1:])
	if err != nil {
		return 0
	}
	return exp
}
