package gomap

import (
	"errors"
	"net/netip"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type server struct {
	Name    string
	Port    int
	Tags    []string          `nest:"tags,omitempty"`
	Labels  map[string]string `json:"labels,omitempty"`
	Replica *replica
	Skip    string `nest:"-"`
}

type replica struct {
	Count    int
	ReadOnly bool `nest:"read_only"`
}

func TestMarshal(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{
			name: "struct",
			v: server{
				Name: "web",
				Port: 80,
				Tags: []string{"a", "b"},
				Skip: "not me",
			},
			want: "name = web\nport = 80\ntags\n  = a\n  = b\nreplica\n",
		},
		{
			name: "nested struct",
			v: server{
				Name:    "db",
				Port:    5432,
				Replica: &replica{Count: 3, ReadOnly: true},
			},
			want: "name = db\nport = 5432\nreplica\n  count = 3\n  read_only = true\n",
		},
		{
			name: "map keys sort",
			v:    map[string]int{"b": 2, "a": 1},
			want: "a = 1\nb = 2\n",
		},
		{
			name: "text marshaler",
			v:    map[string]netip.Addr{"host": netip.MustParseAddr("10.0.0.1")},
			want: "host = 10.0.0.1\n",
		},
		{
			name: "quoted values",
			v:    map[string]string{"note": "a; b", "empty": ""},
			want: "empty = \"\"\nnote = \"a; b\"\n",
		},
	}
	for _, tst := range tests {
		d, err := Marshal(tst.v)
		if err != nil {
			t.Errorf("%s: %v", tst.name, err)
			continue
		}
		if string(d) != tst.want {
			t.Errorf("%s: got %q, want %q", tst.name, d, tst.want)
		}
	}
}

func TestMarshalError(t *testing.T) {
	if _, err := Marshal(map[string]any{"ch": make(chan int)}); !errors.Is(err, ErrMarshal) {
		t.Errorf("got %v, want ErrMarshal", err)
	}
}

func TestUnmarshalStruct(t *testing.T) {
	in := "name = web\nport = 8080\ntags\n  = x\nreplica\n  count = 2\n  read_only = true\n"
	var got server
	if err := Unmarshal([]byte(in), &got); err != nil {
		t.Fatal(err)
	}
	want := server{
		Name:    "web",
		Port:    8080,
		Tags:    []string{"x"},
		Replica: &replica{Count: 2, ReadOnly: true},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestUnmarshalFieldMatching(t *testing.T) {
	// snake_case names and exact field names both match
	type pair struct {
		MaxSize int
		Other   string
	}
	var got pair
	if err := Unmarshal([]byte("max_size = 5\nOther = x\n"), &got); err != nil {
		t.Fatal(err)
	}
	if got.MaxSize != 5 || got.Other != "x" {
		t.Errorf("got %+v", got)
	}
}

func TestUnmarshalMapAndSlice(t *testing.T) {
	var m map[string][]int
	if err := Unmarshal([]byte("a\n  = 1\n  = 2\nb\n  = 3\n"), &m); err != nil {
		t.Fatal(err)
	}
	want := map[string][]int{"a": {1, 2}, "b": {3}}
	if d := cmp.Diff(want, m); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestUnmarshalAny(t *testing.T) {
	var v any
	if err := Unmarshal([]byte("a = b\nlist\n  = x\nnone\n"), &v); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"a":    "b",
		"list": []any{"x"},
		"none": nil,
	}
	if d := cmp.Diff(want, v); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		v    any
	}{
		{name: "unknown field", in: "nope = 1\n", v: &server{}},
		{name: "bad int", in: "port = x\n", v: &server{}},
		{name: "scalar for struct", in: "replica = 3\n", v: &server{}},
	}
	for _, tst := range tests {
		if err := Unmarshal([]byte(tst.in), tst.v); !errors.Is(err, ErrUnmarshal) {
			t.Errorf("%s: got %v, want ErrUnmarshal", tst.name, err)
		}
	}
	// malformed input fails before decoding begins
	var s server
	if err := Unmarshal([]byte("a = \"open\n"), &s); err == nil {
		t.Errorf("malformed input: expected an error")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	orig := server{
		Name:   "rt",
		Port:   443,
		Tags:   []string{"x", "y"},
		Labels: map[string]string{"env": "prod"},
	}
	d, err := Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}
	var got server
	if err := Unmarshal(d, &got); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(orig, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Name", "name"},
		{"MaxSize", "max_size"},
		{"HTTPServer", "h_t_t_p_server"},
		{"A", "a"},
	}
	for _, tst := range tests {
		if got := toSnakeCase(tst.in); got != tst.want {
			t.Errorf("toSnakeCase(%q): got %q, want %q", tst.in, got, tst.want)
		}
	}
}
