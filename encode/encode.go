package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/nest-format/go-nest/ir"
	"github.com/nest-format/go-nest/token"
)

type encState struct {
	indent int
	Color  func(ir.Type, ColorAttr, string) string
}

// Encode writes the canonical Nest encoding of node to w. The document
// root must be a map or a list; scalars and nulls have no document form of
// their own.
//
// Comments and original layout are not represented in the IR, so this is
// value serialization, not reformatting of source text.
func Encode(node *ir.Node, w io.Writer, opts ...Option) error {
	es := &encState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	switch node.Type {
	case ir.MapType, ir.ListType:
	default:
		return fmt.Errorf("%w: document root must be a map or list, got %s",
			ErrEncoding, node.Type)
	}
	return encodeSection(node, w, "", es)
}

// String returns the canonical encoding of node.
func String(node *ir.Node, opts ...Option) (string, error) {
	var b strings.Builder
	if err := Encode(node, &b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

func encodeSection(node *ir.Node, w io.Writer, indent string, es *encState) error {
	switch node.Type {
	case ir.MapType:
		for i, key := range node.Keys {
			lead := keyLiteral(key, es)
			assign := lead + " " + sep(es) + " "
			if err := encodeEntry(w, indent, lead, assign, node.Values[i], es); err != nil {
				return err
			}
		}
	case ir.ListType:
		marker := applyColor(es, ir.ListType, SepColor, "=")
		for _, v := range node.Values {
			if err := encodeEntry(w, indent, marker, marker+" ", v, es); err != nil {
				return err
			}
		}
	}
	return nil
}

// encodeEntry writes one entry line. lead stands alone (`key` or `=`) for
// null values and nested sections; assign precedes a scalar literal
// (`key = ` or `= `).
func encodeEntry(w io.Writer, indent, lead, assign string, v *ir.Node, es *encState) error {
	switch v.Type {
	case ir.NullType:
		// a key or item with no value reads back as null
		return writeString(w, indent+lead+"\n")
	case ir.ScalarType:
		if multilineOK(v.Scalar) {
			return writeMultiline(w, indent, assign, v.Scalar, es)
		}
		lit := applyColor(es, ir.ScalarType, ValueColor, scalarLiteral(v.Scalar))
		return writeString(w, indent+assign+lit+"\n")
	case ir.MapType, ir.ListType:
		if v.Len() == 0 {
			// the grammar cannot express an empty section; it reads
			// back as null
			return writeString(w, indent+lead+"\n")
		}
		if err := writeString(w, indent+lead+"\n"); err != nil {
			return err
		}
		return encodeSection(v, w, indent+strings.Repeat(" ", es.indent), es)
	default:
		return fmt.Errorf("%w: bad node type %d", ErrEncoding, v.Type)
	}
}

// multilineOK reports whether a scalar can be written as a """ block: it
// must contain a newline and survive prefix-stripping and the trailing
// whitespace trim unchanged.
func multilineOK(s string) bool {
	if !strings.Contains(s, "\n") || strings.Contains(s, "\r") {
		return false
	}
	if s != strings.TrimRight(s, " \t\r\n") {
		return false
	}
	for line := range strings.SplitSeq(s, "\n") {
		if line != "" && (line[0] == ' ' || line[0] == '\t') {
			return false
		}
	}
	return true
}

func writeMultiline(w io.Writer, indent, assign, s string, es *encState) error {
	open := indent + assign +
		applyColor(es, ir.ScalarType, LiteralMultiColor, `"""`) + "\n"
	if err := writeString(w, open); err != nil {
		return err
	}
	body := indent + strings.Repeat(" ", es.indent)
	for line := range strings.SplitSeq(s, "\n") {
		if line == "" {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
			continue
		}
		colored := applyColor(es, ir.ScalarType, LiteralMultiColor, line)
		if err := writeString(w, body+colored+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func sep(es *encState) string {
	return applyColor(es, ir.MapType, SepColor, "=")
}

func keyLiteral(key string, es *encState) string {
	return applyColor(es, ir.MapType, FieldColor, scalarLiteral(key))
}

func scalarLiteral(s string) string {
	if token.NeedsQuote(s) {
		return token.Quote(s)
	}
	return s
}

func applyColor(es *encState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
