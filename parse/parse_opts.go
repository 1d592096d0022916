package parse

import "github.com/nest-format/go-nest/ir"

// Transform is applied once per produced value, in document order. key is
// the map key or decimal list index the value is stored under, and "" for
// the document root. Children are transformed before the map or list
// holding them; the assembled container is then transformed itself.
//
// A transform may return its argument, a modified node, or a replacement;
// attach caller-typed payloads via [ir.Node.Any].
type Transform func(key string, node *ir.Node) *ir.Node

type parseOpts struct {
	transform Transform
	strict    bool
}

type Option func(*parseOpts)

func WithTransform(t Transform) Option {
	return func(o *parseOpts) { o.transform = t }
}

// Strict makes Parse return the first token error instead of building a
// best-effort tree. The default is tolerant: error surfacing is the
// caller's policy, not the parser's.
func Strict() Option {
	return func(o *parseOpts) { o.strict = true }
}
