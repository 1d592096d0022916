package gomap

import (
	"strings"

	"github.com/nest-format/go-nest/encode"
	"github.com/nest-format/go-nest/parse"
)

// Marshal renders v as a document.
func Marshal(v any) ([]byte, error) {
	node, err := ToIR(v)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	if err := encode.Encode(node, &sb); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

// Unmarshal parses d and stores the result in the value pointed to by v.
func Unmarshal(d []byte, v any) error {
	node, err := parse.Parse(d, parse.Strict())
	if err != nil {
		return err
	}
	return FromIR(node, v)
}
