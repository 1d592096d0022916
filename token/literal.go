package token

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// splitLiteral splits line content into a leading literal and the rest,
// treating a quoted span ("..." with backslash escapes) as opaque. With
// key set, an unquoted '=' also delimits the literal; an unquoted ';'
// always does (it anchors a trailing comment).
func splitLiteral(in string, key bool) (before, after string) {
	if !strings.HasPrefix(in, `"`) {
		return splitUnquoted(in, key)
	}
	esc := false
	for i := 1; i < len(in); i++ {
		c := in[i]
		if c == '"' && !esc {
			rest, after := splitUnquoted(in[i+1:], key)
			return in[:i+1] + rest, after
		}
		esc = c == '\\' && !esc
	}
	// unterminated quote: pass through, decoding reports the error
	return in, ""
}

func splitUnquoted(in string, key bool) (before, after string) {
	if key {
		before, after, found := strings.Cut(in, "=")
		if found {
			return strings.TrimRight(before, " \t"), strings.TrimLeft(after, " \t")
		}
	}
	if i := strings.IndexByte(in, ';'); i >= 0 {
		return strings.TrimRight(in[:i], " \t"), in[i:]
	}
	return strings.TrimRight(in, " \t"), ""
}

// decodeLiteral decodes a key or value literal. Bare literals pass through
// unchanged. Quoted literals are unescaped; on failure the best-effort
// decoding is returned along with the error.
func decodeLiteral(in string) (string, error) {
	if !strings.HasPrefix(in, `"`) {
		return in, nil
	}
	end := -1
	esc := false
	for i := 1; i < len(in); i++ {
		c := in[i]
		if c == '"' && !esc {
			end = i
			break
		}
		esc = c == '\\' && !esc
	}
	if end < 0 {
		return "", ErrUnclosedQuote
	}
	if end != len(in)-1 {
		return "", ErrCharactersAfterQuote
	}
	return unescape(in[1:end])
}

// unescape decodes backslash escapes in the body of a quoted literal. The
// first bad escape is reported; later text is still decoded so callers get
// a usable best-effort value.
func unescape(body string) (string, error) {
	var b strings.Builder
	var firstErr error
	bad := func(esc string, err error) {
		if firstErr == nil {
			firstErr = fmt.Errorf("%w: %s", err, esc)
		}
		b.WriteString(esc)
	}
	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(body) {
			bad(body[i:], ErrInvalidEscape)
			break
		}
		switch body[i+1] {
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case '"', '\\':
			b.WriteByte(body[i+1])
			i += 2
		case '{':
			j := strings.IndexByte(body[i+2:], '}')
			if j < 0 {
				bad(body[i:], ErrInvalidEscape)
				i = len(body)
				break
			}
			hex := body[i+2 : i+2+j]
			esc := body[i : i+2+j+1]
			i += 2 + j + 1
			if len(hex) == 0 || len(hex) > 8 {
				bad(esc, ErrInvalidEscape)
				break
			}
			cp, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				bad(esc, ErrInvalidEscape)
				break
			}
			if !utf8.ValidRune(rune(cp)) {
				// surrogate or beyond U+10FFFF
				bad(esc, ErrInvalidCodepoint)
				break
			}
			b.WriteRune(rune(cp))
		default:
			_, sz := utf8.DecodeRuneInString(body[i+1:])
			bad(body[i:i+1+sz], ErrInvalidEscape)
			i += 1 + sz
		}
	}
	return b.String(), firstErr
}

func requiresQuote(r rune) bool {
	return r <= 0x1f || r == ';' || r == '='
}

// NeedsQuote reports whether a literal must be quoted to survive a
// lex/decode round trip.
func NeedsQuote(s string) bool {
	if len(s) == 0 {
		return true
	}
	if s[0] == '"' || s[0] == ' ' || s[0] == '\t' || s[len(s)-1] == ' ' || s[len(s)-1] == '\t' {
		return true
	}
	return strings.ContainsFunc(s, requiresQuote)
}

// Quote returns the quoted, escaped form of s.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '"':
			b.WriteString(`\"`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case unicode.IsControl(r):
			fmt.Fprintf(&b, `\{%02X}`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
