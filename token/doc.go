// Package token provides tokenization support for the Nest format.
//
// [Tokenize] is a function for tokenizing bytes into a validated token
// sequence.
//
// [NewStream] provides the same sequence as a pull cursor, normalized so
// that [TIndent] and [TOutdent] are always paired, every key or list item
// is followed by exactly one value token, and sections never mix map keys
// with list items without being flagged.
//
// Tokenization never fails: malformed input produces tokens carrying a
// non-nil [Token.Err] and the rest of the document is still tokenized.
package token
