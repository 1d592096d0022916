// Package gomap converts between Go values and Nest IR nodes.
//
// [Marshal] and [Unmarshal] work like their encoding/json counterparts,
// using `nest:"name,omitempty"` struct tags (falling back to `json` tags,
// then to the snake_case field name). [ToIR] and [FromIR] expose the
// node-level halves.
//
// Nest scalars are untyped text, so numbers and booleans are written with
// their Go string form and parsed back per the target type.
//
// # Related Packages
//
//   - github.com/nest-format/go-nest/ir - IR representation
//   - github.com/nest-format/go-nest/parse - Parse text to IR
//   - github.com/nest-format/go-nest/encode - Encode IR to text
package gomap
