// Package nest is the top level convenience API for working with nest
// documents. It wraps the parse, encode, eval, and gomap packages.
//
// # Related Packages
//
//   - [github.com/nest-format/go-nest/token]
//   - [github.com/nest-format/go-nest/ir]
//   - [github.com/nest-format/go-nest/parse]
//   - [github.com/nest-format/go-nest/encode]
//   - [github.com/nest-format/go-nest/eval]
//   - [github.com/nest-format/go-nest/gomap]
package nest

import (
	"io"

	"github.com/nest-format/go-nest/encode"
	"github.com/nest-format/go-nest/eval"
	"github.com/nest-format/go-nest/gomap"
	"github.com/nest-format/go-nest/ir"
	"github.com/nest-format/go-nest/parse"
)

// Tool bundles parsing with expression expansion against an
// environment.
type Tool struct {
	Env eval.Env

	// Strict makes Run fail on the first malformed line instead of
	// repairing the document.
	Strict bool
}

func DefaultTool() *Tool {
	return &Tool{
		Env: eval.Env{},
	}
}

// Run parses d, expanding expressions in scalar values as sections
// complete.
func (t *Tool) Run(d []byte) (*ir.Node, error) {
	opts := []parse.Option{parse.WithTransform(eval.Expand(t.Env))}
	if t.Strict {
		opts = append(opts, parse.Strict())
	}
	return parse.Parse(d, opts...)
}

// Parse parses a document, repairing malformed lines.
func Parse(d []byte) (*ir.Node, error) {
	return parse.Parse(d)
}

// Encode writes node to w in canonical form.
func Encode(node *ir.Node, w io.Writer) error {
	return encode.Encode(node, w)
}

// Marshal renders v as a document.
func Marshal(v any) ([]byte, error) {
	return gomap.Marshal(v)
}

// Unmarshal parses d and stores the result in the value pointed to
// by v.
func Unmarshal(d []byte, v any) error {
	return gomap.Unmarshal(d, v)
}
