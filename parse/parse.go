package parse

import (
	"strconv"

	"github.com/nest-format/go-nest/ir"
	"github.com/nest-format/go-nest/token"
)

// Parse builds the value tree for a document. Malformed input does not
// stop parsing: errored tokens contribute their best-effort content and
// the error stays on the token stream (use [Strict] to fail on the first
// one instead).
func Parse(d []byte, opts ...Option) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{s: token.NewStream(d), opts: pOpts}
	root, err := p.section()
	if err != nil {
		return nil, err
	}
	return p.transform("", root), nil
}

func ParseString(s string, opts ...Option) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	s    *token.Stream
	opts *parseOpts
}

func (p *parser) transform(key string, n *ir.Node) *ir.Node {
	if p.opts.transform == nil {
		return n
	}
	return p.opts.transform(key, n)
}

// section consumes tokens until the matching TOutdent or end of stream and
// returns the section's value: a map or a list depending on the first
// structural token seen, or an empty map for an empty document.
func (p *parser) section() (*ir.Node, error) {
	var result *ir.Node
	var pendingKey string

	store := func(v *ir.Node) {
		if result == nil {
			// the validated stream guarantees a key or item precedes
			// every value; this only trips on hand-fed token streams
			result = ir.NewMap()
		}
		if result.Type == ir.ListType {
			key := strconv.Itoa(len(result.Values))
			result.Append(p.transform(key, v))
			return
		}
		result.Set(pendingKey, p.transform(pendingKey, v))
	}

	for {
		t, ok := p.s.Next()
		if !ok {
			break
		}
		if t.Err != nil && p.opts.strict {
			return nil, t.Err
		}
		switch t.Type {
		case token.TComment, token.TMultilineHint:

		case token.TMapKey:
			if result == nil {
				result = ir.NewMap()
				result.Line = t.Line
			}
			pendingKey = t.Content

		case token.TListItem:
			if result == nil {
				result = ir.NewList()
				result.Line = t.Line
			}

		case token.TScalar, token.TMultilineScalar:
			store(&ir.Node{Type: ir.ScalarType, Scalar: t.Content, Line: t.Line})

		case token.TNoValue:
			store(&ir.Node{Type: ir.NullType, Line: t.Line})

		case token.TIndent:
			child, err := p.section()
			if err != nil {
				return nil, err
			}
			store(child)

		case token.TOutdent:
			if result == nil {
				return ir.NewMap(), nil
			}
			return result, nil
		}
	}
	if result == nil {
		return ir.NewMap(), nil
	}
	return result, nil
}
