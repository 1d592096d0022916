package parse

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/nest-format/go-nest/ir"
	"github.com/nest-format/go-nest/token"
)

var ignoreLines = cmpopts.IgnoreFields(ir.Node{}, "Line")

type kv struct {
	k string
	v *ir.Node
}

// mkMap builds a map node with keys in the given order, the order a
// parse of the same document would produce.
func mkMap(kvs ...kv) *ir.Node {
	m := ir.NewMap()
	for _, kv := range kvs {
		m.Set(kv.k, kv.v)
	}
	return m
}

func mustParse(t *testing.T, in string, opts ...Option) *ir.Node {
	t.Helper()
	node, err := ParseString(in, opts...)
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return node
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		in   string
		want *ir.Node
	}{
		{
			in:   "a = b\n",
			want: ir.FromMap(map[string]*ir.Node{"a": ir.FromString("b")}),
		},
		{
			in:   "",
			want: ir.NewMap(),
		},
		{
			in:   "; only a comment\n",
			want: ir.NewMap(),
		},
		{
			in: "= b\n= c\n",
			want: ir.FromSlice([]*ir.Node{
				ir.FromString("b"),
				ir.FromString("c"),
			}),
		},
		{
			in:   "a\n",
			want: ir.FromMap(map[string]*ir.Node{"a": ir.Null()}),
		},
		{
			in: "servers\n  = one\n  = two\nport = 80\n",
			want: mkMap(
				kv{"servers", ir.FromSlice([]*ir.Node{
					ir.FromString("one"),
					ir.FromString("two"),
				})},
				kv{"port", ir.FromString("80")},
			),
		},
		{
			in: "a\n  b\n    c = d\n",
			want: ir.FromMap(map[string]*ir.Node{
				"a": ir.FromMap(map[string]*ir.Node{
					"b": ir.FromMap(map[string]*ir.Node{
						"c": ir.FromString("d"),
					}),
				}),
			}),
		},
		{
			// last writer wins for a repeated key
			in:   "a = 1\na = 2\n",
			want: ir.FromMap(map[string]*ir.Node{"a": ir.FromString("2")}),
		},
		{
			in: "text = \"\"\"\n  line one\n  line two\n",
			want: ir.FromMap(map[string]*ir.Node{
				"text": ir.FromString("line one\nline two"),
			}),
		},
		{
			in: "= \"\"\"\n c\n =\n",
			want: ir.FromSlice([]*ir.Node{
				ir.FromString("c\n="),
			}),
		},
		{
			in: "\"a = b\" = \"; c\"\n",
			want: ir.FromMap(map[string]*ir.Node{
				"a = b": ir.FromString("; c"),
			}),
		},
	}
	for _, tst := range tests {
		got := mustParse(t, tst.in)
		if d := cmp.Diff(tst.want, got, ignoreLines); d != "" {
			t.Errorf("parse %q: (-want +got):\n%s", tst.in, d)
		}
	}
}

func TestParseRepairs(t *testing.T) {
	tests := []struct {
		in   string
		want *ir.Node
	}{
		{
			// the unclosed quote keeps its best-effort (empty) value
			in:   "a = \"open\n",
			want: ir.FromMap(map[string]*ir.Node{"a": ir.FromString("")}),
		},
		{
			// unexpected indent hangs the section off a synthesized key
			in: "a = b\n  c = d\n",
			want: mkMap(
				kv{"a", ir.FromString("b")},
				kv{"", ir.FromMap(map[string]*ir.Node{"c": ir.FromString("d")})},
			),
		},
		{
			// missing multiline content reads as an empty scalar
			in: "a = \"\"\"\nb = c\n",
			want: ir.FromMap(map[string]*ir.Node{
				"a": ir.FromString(""),
				"b": ir.FromString("c"),
			}),
		},
	}
	for _, tst := range tests {
		got := mustParse(t, tst.in)
		if d := cmp.Diff(tst.want, got, ignoreLines); d != "" {
			t.Errorf("parse %q: (-want +got):\n%s", tst.in, d)
		}
	}
}

func TestParseStrict(t *testing.T) {
	tests := []struct {
		in string
		e  error
	}{
		{in: "a = \"open\n", e: token.ErrUnclosedQuote},
		{in: "a = \"x\" y\n", e: token.ErrCharactersAfterQuote},
		{in: "a = \"\\q\"\n", e: token.ErrInvalidEscape},
		{in: "a = \"\\{D800}\"\n", e: token.ErrInvalidCodepoint},
		{in: "a = b\n  c = d\n", e: token.ErrUnexpectedIndent},
		{in: "= a\nb = c\n", e: token.ErrUnexpectedMapKey},
		{in: "a = b\n= c\n", e: token.ErrUnexpectedListItem},
		{in: "a = \"\"\"\nb = c\n", e: token.ErrMissingMultiline},
	}
	for _, tst := range tests {
		_, err := ParseString(tst.in, Strict())
		if !errors.Is(err, tst.e) {
			t.Errorf("strict parse %q: got %v, want %v", tst.in, err, tst.e)
		}
		if _, err := ParseString(tst.in); err != nil {
			t.Errorf("tolerant parse %q: unexpected error %v", tst.in, err)
		}
	}
}

func TestParseLines(t *testing.T) {
	node := mustParse(t, "a = b\nc\n  d = e\n")
	if node.Line != 1 {
		t.Errorf("root line: got %d, want 1", node.Line)
	}
	// a section's line is that of its first entry
	inner := node.Get("c")
	if inner == nil || inner.Line != 3 {
		t.Fatalf("inner section line: got %+v, want line 3", inner)
	}
	if v := inner.Get("d"); v == nil || v.Line != 3 {
		t.Errorf("inner value line: got %+v, want line 3", v)
	}
}

func TestParseTransform(t *testing.T) {
	// rewrite duration-like scalars under timeout keys into millisecond
	// counts carried in Any
	durations := func(key string, node *ir.Node) *ir.Node {
		if node.Type != ir.ScalarType || key != "timeout" {
			return node
		}
		secs, err := strconv.Atoi(strings.TrimSuffix(node.Scalar, "s"))
		if err != nil {
			return node
		}
		node.Any = secs * 1000
		return node
	}
	node := mustParse(t, "timeout = 3s\nname = web\n", WithTransform(durations))
	if got := node.Get("timeout").ToAny(); got != 3000 {
		t.Errorf("timeout: got %#v, want 3000", got)
	}
	if got := node.Get("name").ToAny(); got != "web" {
		t.Errorf("name: got %#v, want %q", got, "web")
	}
}

func TestParseTransformKeys(t *testing.T) {
	var keys []string
	spy := func(key string, node *ir.Node) *ir.Node {
		if node.Type == ir.ScalarType || key == "" {
			keys = append(keys, key)
		}
		return node
	}
	mustParse(t, "a = x\nitems\n  = y\n  = z\n", WithTransform(spy))
	want := []string{"a", "0", "1", ""}
	if d := cmp.Diff(want, keys); d != "" {
		t.Errorf("transform keys (-want +got):\n%s", d)
	}
}

func TestParseTransformReplaces(t *testing.T) {
	upper := func(key string, node *ir.Node) *ir.Node {
		if node.Type != ir.ScalarType {
			return node
		}
		return ir.FromString(strings.ToUpper(node.Scalar))
	}
	node := mustParse(t, "a = x\nb\n  c = y\n", WithTransform(upper))
	want := ir.FromMap(map[string]*ir.Node{
		"a": ir.FromString("X"),
		"b": ir.FromMap(map[string]*ir.Node{"c": ir.FromString("Y")}),
	})
	if d := cmp.Diff(want, node, ignoreLines); d != "" {
		t.Errorf("transform replace (-want +got):\n%s", d)
	}
}
