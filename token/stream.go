package token

type sectionKind int

const (
	sectionUnset sectionKind = iota
	sectionList
	sectionMap
)

type frame struct {
	kind       sectionKind
	keyPending bool
}

// Stream is the validated token cursor. It pulls from a raw [Lexer] and
// enforces the structural invariants of the format: Indent/Outdent pairs
// are balanced (synthesizing closing Outdents at end of input), every key
// or list item is followed by exactly one value token (synthesizing
// TNoValue), and a section established as a map or a list flags tokens of
// the other kind with [ErrUnexpectedMapKey] or [ErrUnexpectedListItem].
//
// Violations never stop the stream; the offending token is re-emitted with
// its Err set so consumers can report every problem in one pass.
type Stream struct {
	lx       *Lexer
	queue    []Token
	frames   []frame
	lastLine int
	done     bool
}

func NewStream(d []byte) *Stream {
	return &Stream{
		lx:       NewLexer(d),
		frames:   []frame{{}},
		lastLine: 1,
	}
}

func (s *Stream) Next() (Token, bool) {
	for len(s.queue) == 0 {
		if s.done {
			return Token{}, false
		}
		t, ok := s.lx.Next()
		if !ok {
			s.finish()
			continue
		}
		s.process(t)
	}
	t := s.queue[0]
	s.queue = s.queue[1:]
	return t, true
}

func (s *Stream) emit(t Token) {
	s.queue = append(s.queue, t)
}

func (s *Stream) process(t Token) {
	s.lastLine = t.Line
	switch t.Type {
	case TComment, TMultilineHint:
		s.emit(t)

	case TIndent:
		top := &s.frames[len(s.frames)-1]
		if !top.keyPending {
			// no key or item owns this section: synthesize an errored
			// key for it so the Indent stays paired with its Outdent
			s.emit(Token{
				Type: TMapKey,
				Line: t.Line,
				Err:  NewError(ErrUnexpectedIndent, t.Line),
			})
		}
		top.keyPending = false
		s.emit(t)
		s.frames = append(s.frames, frame{})

	case TOutdent:
		popped := s.frames[len(s.frames)-1]
		s.frames = s.frames[:len(s.frames)-1]
		if popped.keyPending {
			s.emit(Token{Type: TNoValue, Line: t.Line})
		}
		s.emit(t)

	case TListItem, TMapKey:
		top := &s.frames[len(s.frames)-1]
		if top.keyPending {
			s.emit(Token{Type: TNoValue, Line: t.Line})
		}
		kind := sectionMap
		conflict := ErrUnexpectedMapKey
		if t.Type == TListItem {
			kind = sectionList
			conflict = ErrUnexpectedListItem
		}
		if top.kind == sectionUnset {
			top.kind = kind
		} else if top.kind != kind && t.Err == nil {
			t.Err = NewError(conflict, t.Line)
		}
		top.keyPending = true
		s.emit(t)

	case TScalar, TMultilineScalar, TNoValue:
		s.frames[len(s.frames)-1].keyPending = false
		s.emit(t)
	}
}

// finish closes every still-open frame, innermost first, synthesizing the
// values and outdents the input was missing.
func (s *Stream) finish() {
	s.done = true
	for len(s.frames) > 1 {
		top := s.frames[len(s.frames)-1]
		s.frames = s.frames[:len(s.frames)-1]
		if top.keyPending {
			s.emit(Token{Type: TNoValue, Line: s.lastLine})
		}
		s.emit(Token{Type: TOutdent, Line: s.lastLine})
	}
	if s.frames[0].keyPending {
		s.frames[0].keyPending = false
		s.emit(Token{Type: TNoValue, Line: s.lastLine})
	}
}

// Tokenize returns the full validated token sequence for d. Prefer
// [NewStream] when the consumer may stop early.
func Tokenize(d []byte) []Token {
	s := NewStream(d)
	var toks []Token
	for {
		t, ok := s.Next()
		if !ok {
			return toks
		}
		toks = append(toks, t)
	}
}
