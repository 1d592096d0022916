package main

import (
	"encoding/json"
	"fmt"

	"github.com/nest-format/go-nest/encode"
	"github.com/nest-format/go-nest/parse"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func (cfg *ConvertConfig) fmtOpt(cc *cli.Context, a string) (any, error) {
	switch a {
	case "nest", "n":
		cfg.OutFormat = "nest"
	case "json", "j":
		cfg.OutFormat = "json"
	case "yaml", "y":
		cfg.OutFormat = "yaml"
	default:
		return nil, fmt.Errorf("%w: unknown format %q", cli.ErrUsage, a)
	}
	return cfg.OutFormat, nil
}

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(args, func(_ string, d []byte) error {
		node, err := parse.Parse(d, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		switch cfg.OutFormat {
		case "json":
			enc := json.NewEncoder(cc.Out)
			enc.SetIndent("", "  ")
			return enc.Encode(node.ToAny())
		case "yaml":
			out, err := yaml.Marshal(node.ToAny())
			if err != nil {
				return err
			}
			_, err = cc.Out.Write(out)
			return err
		default:
			return encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...)
		}
	})
}
