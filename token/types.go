package token

import (
	"fmt"
)

type TokenType int

const (
	TComment TokenType = iota
	TIndent
	TOutdent
	TMapKey
	TListItem
	TScalar
	TNoValue
	TMultilineHint
	TMultilineScalar
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TComment:         "TComment",
		TIndent:          "TIndent",
		TOutdent:         "TOutdent",
		TMapKey:          "TMapKey",
		TListItem:        "TListItem",
		TScalar:          "TScalar",
		TNoValue:         "TNoValue",
		TMultilineHint:   "TMultilineHint",
		TMultilineScalar: "TMultilineScalar",
	}[t]
}

// Token is one element of the lexed sequence. Line is 1-based. Content is
// the decoded text for TMapKey, TScalar, TMultilineScalar, TMultilineHint
// and TComment; it is empty for the structural types. Err is non-nil when
// the token was produced from malformed input; Content then holds the
// best-effort decoding.
type Token struct {
	Type    TokenType
	Line    int
	Content string
	Err     *Error
}

func (t *Token) Info() string {
	if t.Err != nil {
		return fmt.Sprintf("%s line %d (%s)", t.Type, t.Line, t.Err.Err)
	}
	return fmt.Sprintf("%s line %d", t.Type, t.Line)
}

// Error is a tokenization error attached to the token it was found on.
type Error struct {
	Err  error
	Line int
}

func NewError(e error, line int) *Error {
	return &Error{Err: e, Line: line}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d", e.Err.Error(), e.Line)
}
