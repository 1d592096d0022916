package token

import "bytes"

// lineScanner splits a document into physical lines, normalizing \r\n, \r
// and \n terminators. It always yields at least one line, and yields a
// final empty line when the document ends in a newline. Forward-only.
type lineScanner struct {
	d    []byte
	off  int
	line int
	done bool
}

func newLineScanner(d []byte) *lineScanner {
	return &lineScanner{d: d}
}

func (s *lineScanner) next() (int, []byte, bool) {
	if s.done {
		return 0, nil, false
	}
	s.line++
	rest := s.d[s.off:]
	i := bytes.IndexAny(rest, "\r\n")
	if i < 0 {
		s.done = true
		return s.line, rest, true
	}
	text := rest[:i]
	if rest[i] == '\r' && i+1 < len(rest) && rest[i+1] == '\n' {
		i++
	}
	s.off += i + 1
	return s.line, text, true
}
