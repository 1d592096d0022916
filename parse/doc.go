// Package parse builds document trees from nest input.
//
// Parsing consumes the validated token stream from the token package
// and produces [github.com/nest-format/go-nest/ir] nodes. Malformed
// input is repaired by default; [Strict] makes the first malformed
// line fatal. A [Transform] may rewrite values as their sections
// complete.
//
// # Related Packages
//
//   - [github.com/nest-format/go-nest/token]
//   - [github.com/nest-format/go-nest/ir]
//   - [github.com/nest-format/go-nest/encode]
package parse
