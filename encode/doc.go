// Package encode encodes IR nodes to canonical Nest text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	})
//	err := encode.Encode(node, os.Stdout)
//
// The output always reparses to an equal tree (modulo empty maps and
// lists, which the grammar cannot express and which read back as null).
//
// # Related Packages
//
//   - github.com/nest-format/go-nest/ir - IR representation
//   - github.com/nest-format/go-nest/parse - Parse text to IR
package encode
