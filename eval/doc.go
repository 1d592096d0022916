// Package eval provides expression expansion for parsed documents.
//
// Scalars may embed $[...] expressions which are evaluated against an
// environment using expr-lang, and a scalar consisting of a single
// .[...] reference is replaced wholesale by its evaluation result.
// Expansion is exposed as a parse transform via [Expand].
//
// # Related Packages
//
//   - [github.com/nest-format/go-nest/ir]
//   - [github.com/nest-format/go-nest/parse]
package eval
