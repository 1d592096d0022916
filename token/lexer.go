package token

import (
	"strings"
)

// Lexer produces the raw token sequence for a document: one pull cursor
// over physical lines, maintaining the indentation stack and the multiline
// block collector. The output is not normalized; use [Stream] for the
// validated sequence.
type Lexer struct {
	lines *lineScanner
	queue []Token
	stack []string

	mlit mlitState
	done bool
}

// mlitState tracks an open """ block. Until the first content line is seen
// prefix is empty; sectionIndent is the indentation of the line that opened
// the block's section.
type mlitState struct {
	active        bool
	sectionIndent string
	prefix        string
	value         strings.Builder
	started       bool
	hintLine      int
	valueLine     int
}

func (m *mlitState) reset() {
	m.active = false
	m.started = false
	m.prefix = ""
	m.value.Reset()
}

func NewLexer(d []byte) *Lexer {
	return &Lexer{
		lines: newLineScanner(d),
		stack: []string{""},
	}
}

// Next returns the next raw token. It returns false once the document is
// exhausted and all pending multiline state has been flushed.
func (l *Lexer) Next() (Token, bool) {
	for len(l.queue) == 0 {
		if !l.lexLine() {
			return Token{}, false
		}
	}
	t := l.queue[0]
	l.queue = l.queue[1:]
	return t, true
}

func (l *Lexer) emit(t Token) {
	l.queue = append(l.queue, t)
}

func (l *Lexer) lexLine() bool {
	if l.done {
		return false
	}
	lno, line, ok := l.lines.next()
	if !ok {
		l.done = true
		l.flushMultiline()
		return len(l.queue) > 0
	}

	text := string(line)
	rest := strings.TrimLeft(text, " \t")
	indent := text[:len(text)-len(rest)]

	if l.mlit.active && !l.multilineLine(lno, text, indent, rest) {
		return true
	}

	if rest == "" {
		return true
	}

	if comment, found := strings.CutPrefix(rest, ";"); found {
		l.emit(Token{Type: TComment, Line: lno, Content: comment})
		return true
	}

	top := l.stack[len(l.stack)-1]
	for !strings.HasPrefix(indent, top) {
		l.stack = l.stack[:len(l.stack)-1]
		l.emit(Token{Type: TOutdent, Line: lno})
		top = l.stack[len(l.stack)-1]
	}
	if indent != top {
		l.stack = append(l.stack, indent)
		l.emit(Token{Type: TIndent, Line: lno})
	}

	if item, found := strings.CutPrefix(rest, "="); found {
		l.emit(Token{Type: TListItem, Line: lno})
		rest = strings.TrimLeft(item, " \t")
	} else {
		key, value := splitLiteral(rest, true)
		decoded, err := decodeLiteral(key)
		tok := Token{Type: TMapKey, Line: lno, Content: decoded}
		if err != nil {
			tok.Err = NewError(err, lno)
		}
		l.emit(tok)
		rest = strings.TrimLeft(value, " \t")
		rest = strings.TrimPrefix(rest, "=")
		rest = strings.TrimLeft(rest, " \t")
	}

	if comment, found := strings.CutPrefix(rest, ";"); found {
		l.emit(Token{Type: TComment, Line: lno, Content: comment})
		return true
	}

	if hint, found := strings.CutPrefix(rest, `"""`); found {
		hint, rest := splitLiteral(hint, false)
		l.emit(Token{Type: TMultilineHint, Line: lno, Content: hint})
		l.mlit.reset()
		l.mlit.active = true
		l.mlit.hintLine = lno
		l.mlit.sectionIndent = l.stack[len(l.stack)-1]
		if comment, found := strings.CutPrefix(rest, ";"); found {
			l.emit(Token{Type: TComment, Line: lno, Content: comment})
		}
		return true
	}

	value, rest := splitLiteral(rest, false)
	if value != "" {
		decoded, err := decodeLiteral(value)
		tok := Token{Type: TScalar, Line: lno, Content: decoded}
		if err != nil {
			tok.Err = NewError(err, lno)
		}
		l.emit(tok)
	}
	if comment, found := strings.CutPrefix(rest, ";"); found {
		l.emit(Token{Type: TComment, Line: lno, Content: comment})
	}
	return true
}

// multilineLine feeds one physical line to the open multiline block. It
// returns true when the line terminates the block and must be re-processed
// as a normal line.
func (l *Lexer) multilineLine(lno int, text, indent, rest string) bool {
	m := &l.mlit
	if !m.started {
		if rest == "" {
			return false
		}
		if strings.HasPrefix(indent, m.sectionIndent) && indent != m.sectionIndent {
			m.prefix = indent
			m.value.WriteString(rest)
			m.valueLine = lno
			m.started = true
			return false
		}
		// first content line is not more indented than the section
		l.emit(Token{
			Type: TMultilineScalar,
			Line: m.hintLine,
			Err:  NewError(ErrMissingMultiline, m.hintLine),
		})
		m.reset()
		return true
	}
	if body, found := strings.CutPrefix(text, m.prefix); found {
		m.value.WriteString("\n")
		m.value.WriteString(body)
		return false
	}
	if rest == "" {
		m.value.WriteString("\n")
		return false
	}
	l.emit(Token{
		Type:    TMultilineScalar,
		Line:    m.valueLine,
		Content: strings.TrimRight(m.value.String(), " \t\r\n"),
	})
	m.reset()
	return true
}

func (l *Lexer) flushMultiline() {
	m := &l.mlit
	if !m.active {
		return
	}
	if m.started {
		l.emit(Token{
			Type:    TMultilineScalar,
			Line:    m.valueLine,
			Content: strings.TrimRight(m.value.String(), " \t\r\n"),
		})
	} else {
		l.emit(Token{
			Type: TMultilineScalar,
			Line: m.hintLine,
			Err:  NewError(ErrMissingMultiline, m.hintLine),
		})
	}
	m.reset()
}
