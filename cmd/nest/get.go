package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nest-format/go-nest/encode"
	"github.com/nest-format/go-nest/ir"
	"github.com/nest-format/go-nest/parse"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path argument", cli.ErrUsage)
	}
	path := args[0]
	return eachInput(args[1:], func(name string, d []byte) error {
		node, err := parse.Parse(d, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		res, err := getPath(node, path)
		if err != nil {
			return err
		}
		if res.Type == ir.ScalarType {
			fmt.Fprintln(cc.Out, res.Scalar)
			return nil
		}
		if res.Type == ir.NullType {
			return nil
		}
		return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
	})
}

// getPath resolves a dotted path such as "servers.0.host" against node.
// Map sections resolve by key, list sections by decimal index.
func getPath(node *ir.Node, path string) (*ir.Node, error) {
	cur := node
	for part := range strings.SplitSeq(path, ".") {
		switch cur.Type {
		case ir.MapType:
			next := cur.Get(part)
			if next == nil {
				return nil, fmt.Errorf("no key %q at line %d", part, cur.Line)
			}
			cur = next
		case ir.ListType:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(cur.Values) {
				return nil, fmt.Errorf("no index %q at line %d", part, cur.Line)
			}
			cur = cur.Values[i]
		default:
			return nil, fmt.Errorf("cannot descend into %s at line %d", cur.Type, cur.Line)
		}
	}
	return cur, nil
}
