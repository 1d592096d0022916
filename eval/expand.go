package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/nest-format/go-nest/debug"
	"github.com/nest-format/go-nest/ir"
	"github.com/nest-format/go-nest/parse"
)

// Env is the evaluation environment for expressions.
type Env = map[string]any

// Expand returns a parse transform which evaluates expressions in
// scalar values against env.
//
// A scalar consisting entirely of a raw reference ".[expr]" is replaced
// by the evaluation result: strings become scalars, and structured
// results become maps or lists. Non-string results also carry the typed
// value, retrievable via (*ir.Node).ToAny.
//
// Any other scalar has its embedded "$[expr]" spans expanded in place.
// Scalars that fail to evaluate are left unchanged.
func Expand(env Env) parse.Transform {
	return func(key string, node *ir.Node) *ir.Node {
		if node == nil || node.Type != ir.ScalarType {
			return node
		}
		if raw := rawRef(node.Scalar); raw != "" {
			val, err := expr.Eval(raw, env)
			if err != nil {
				if debug.Expand() {
					debug.Logf("expand %q failed: %v\n", raw, err)
				}
				return node
			}
			repl := FromAny(val)
			repl.Line = node.Line
			return repl
		}
		xs, err := ExpandString(node.Scalar, env)
		if err != nil {
			return node
		}
		node.Scalar = xs
		return node
	}
}

// ExpandString expands $[...] and .[...] expressions in a string.
//
// Expressions are evaluated using expr-lang against the provided
// environment. Within expressions, backslash escaping is supported:
//   - \] → literal ] (does not close the expression)
//   - \\ → literal \
//   - \x → x (for any character x)
//
// If an expression is not closed with an unescaped ], the text is
// treated as a literal string rather than an expression.
func ExpandString(v string, env Env) (string, error) {
	if len(v) < 3 {
		return v, nil
	}
	exprStart := -1 // position of $ or . that starts the expression
	i := 0
	n := len(v)
	var outBuf []byte // accumulates the final output
	var keyBuf []byte // accumulates the current expression content (unescaped)

	for i < n-1 {
		c, next := v[i], v[i+1]
		i++
		switch c {
		case '$', '.':
			if next == '[' {
				exprStart = i - 1
				keyBuf = keyBuf[:0]
				i++
				continue
			}
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		case '\\':
			if exprStart != -1 {
				// backslash escapes the next character
				keyBuf = append(keyBuf, next)
				i++
				continue
			}
			outBuf = append(outBuf, c)
		case ']':
			if exprStart != -1 {
				out, err := evalToBytes(string(keyBuf), env)
				if err != nil {
					return "", err
				}
				outBuf = append(outBuf, out...)
				exprStart = -1
				continue
			}
			outBuf = append(outBuf, c)
		default:
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		}
	}

	if exprStart == -1 {
		outBuf = append(outBuf, v[n-1])
		return string(outBuf), nil
	}

	// Still inside expression at the last byte.
	if v[n-1] != ']' {
		// Not a valid expression, output literally.
		outBuf = append(outBuf, v[exprStart:n]...)
		return string(outBuf), nil
	}

	out, err := evalToBytes(string(keyBuf), env)
	if err != nil {
		return "", err
	}
	outBuf = append(outBuf, out...)
	return string(outBuf), nil
}

func evalToBytes(key string, env Env) ([]byte, error) {
	key = strings.TrimSpace(key)
	x, err := expr.Eval(key, env)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", key, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", key, x)
	}
	return anyToBytes(x)
}

func anyToBytes(v any) ([]byte, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(x), nil
	case int:
		return []byte(strconv.Itoa(x)), nil
	case int64:
		return []byte(strconv.FormatInt(x, 10)), nil
	case uint64:
		return []byte(strconv.FormatUint(x, 10)), nil
	case float64:
		return []byte(strconv.FormatFloat(x, 'f', -1, 64)), nil
	case bool:
		return []byte(strconv.FormatBool(x)), nil
	default:
		return []byte(fmt.Sprint(x)), nil
	}
}

// FromAny converts an evaluation result to an IR node. Non-string leaf
// values keep the typed result in the node's Any field.
func FromAny(v any) *ir.Node {
	switch x := v.(type) {
	case nil:
		return ir.Null()
	case string:
		return ir.FromString(x)
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, v := range x {
			m[k] = FromAny(v)
		}
		return ir.FromMap(m)
	case []any:
		vs := make([]*ir.Node, len(x))
		for i, v := range x {
			vs[i] = FromAny(v)
		}
		return ir.FromSlice(vs)
	default:
		out, _ := anyToBytes(v)
		node := ir.FromString(string(out))
		node.Any = v
		return node
	}
}

func rawRef(s string) string {
	if strings.HasPrefix(s, ".[") && strings.HasSuffix(s, "]") {
		return strings.TrimSpace(s[2 : len(s)-1])
	}
	return ""
}
