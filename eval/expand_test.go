package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/nest-format/go-nest/ir"
	"github.com/nest-format/go-nest/parse"
)

func TestExpandString(t *testing.T) {
	env := Env{
		"name":     "web",
		"replicas": 3,
		"nested":   map[string]any{"port": 8080},
	}
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "$[name]", want: "web"},
		{in: "host-$[name]-0", want: "host-web-0"},
		{in: "$[replicas]", want: "3"},
		{in: "$[replicas * 2]", want: "6"},
		{in: "$[nested.port]", want: "8080"},
		{in: ".[name]", want: "web"},
		{in: "$[name]$[replicas]", want: "web3"},
		// escaped ] stays inside the expression
		{in: `$[ "a\]b" ]`, want: "a]b"},
		// an unclosed expression is literal text
		{in: "$[name", want: "$[name"},
		{in: "a$b", want: "a$b"},
		{in: "", want: ""},
		{in: "$", want: "$"},
	}
	for _, tst := range tests {
		got, err := ExpandString(tst.in, env)
		if err != nil {
			t.Errorf("ExpandString(%q): %v", tst.in, err)
			continue
		}
		if got != tst.want {
			t.Errorf("ExpandString(%q): got %q, want %q", tst.in, got, tst.want)
		}
	}
}

func TestExpandStringError(t *testing.T) {
	if _, err := ExpandString("$[nope + 1]", Env{}); err == nil {
		t.Errorf("expected evaluation error")
	}
}

var ignoreLines = cmpopts.IgnoreFields(ir.Node{}, "Line")

func TestExpandTransform(t *testing.T) {
	env := Env{
		"name":     "web",
		"replicas": 3,
		"ports":    []any{"80", "443"},
	}
	in := "service = $[name]\nreplicas = .[replicas]\nports = .[ports]\nuntouched = x\n"
	node, err := parse.ParseString(in, parse.WithTransform(Expand(env)))
	if err != nil {
		t.Fatal(err)
	}
	if got := node.Get("service").Scalar; got != "web" {
		t.Errorf("service: got %q, want %q", got, "web")
	}
	replicas := node.Get("replicas")
	if replicas.Scalar != "3" {
		t.Errorf("replicas scalar: got %q, want %q", replicas.Scalar, "3")
	}
	if got := replicas.ToAny(); got != 3 {
		t.Errorf("replicas payload: got %#v, want 3", got)
	}
	wantPorts := ir.FromSlice([]*ir.Node{ir.FromString("80"), ir.FromString("443")})
	if d := cmp.Diff(wantPorts, node.Get("ports"), ignoreLines); d != "" {
		t.Errorf("ports (-want +got):\n%s", d)
	}
	if got := node.Get("untouched").Scalar; got != "x" {
		t.Errorf("untouched: got %q, want %q", got, "x")
	}
}

func TestExpandTransformBadExpr(t *testing.T) {
	// scalars that fail to evaluate pass through unchanged
	node, err := parse.ParseString("a = .[nope + 1]\n", parse.WithTransform(Expand(Env{})))
	if err != nil {
		t.Fatal(err)
	}
	if got := node.Get("a").Scalar; got != ".[nope + 1]" {
		t.Errorf("got %q, want the original reference", got)
	}
}

func TestFromAny(t *testing.T) {
	tests := []struct {
		in   any
		want *ir.Node
	}{
		{in: nil, want: ir.Null()},
		{in: "s", want: ir.FromString("s")},
		{
			in: map[string]any{"a": "1"},
			want: ir.FromMap(map[string]*ir.Node{
				"a": ir.FromString("1"),
			}),
		},
		{
			in:   []any{"x", nil},
			want: ir.FromSlice([]*ir.Node{ir.FromString("x"), ir.Null()}),
		},
	}
	for _, tst := range tests {
		got := FromAny(tst.in)
		if d := cmp.Diff(tst.want, got, ignoreLines); d != "" {
			t.Errorf("FromAny(%#v) (-want +got):\n%s", tst.in, d)
		}
	}
	n := FromAny(42)
	if n.Scalar != "42" || n.Any != 42 {
		t.Errorf("FromAny(42): got %+v", n)
	}
}
