// Package ir is the value representation for parsed Nest documents.
//
// A document parses to a tree of [Node] values: scalars, nulls, ordered
// maps and lists. Scalars are opaque text; any typed interpretation
// belongs to the caller (see the parse package's transform option).
//
// # Related Packages
//
//   - github.com/nest-format/go-nest/parse - Parse text to nodes
//   - github.com/nest-format/go-nest/encode - Encode nodes to text
//   - github.com/nest-format/go-nest/gomap - Convert nodes to/from Go values
package ir
