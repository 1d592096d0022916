package main

import (
	"github.com/nest-format/go-nest/encode"
	"github.com/nest-format/go-nest/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(args, func(_ string, d []byte) error {
		node, err := parse.Parse(d, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		return encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...)
	})
}
