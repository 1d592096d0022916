package token

import "errors"

var (
	ErrUnclosedQuote        = errors.New("unclosed quotes")
	ErrCharactersAfterQuote = errors.New("characters after quotes")
	ErrInvalidEscape        = errors.New("invalid escape code")
	ErrInvalidCodepoint     = errors.New("invalid codepoint")
	ErrUnexpectedIndent     = errors.New("unexpected indent")
	ErrUnexpectedListItem   = errors.New("unexpected list item")
	ErrUnexpectedMapKey     = errors.New("unexpected map key")
	ErrMissingMultiline     = errors.New("missing multiline value")
)
