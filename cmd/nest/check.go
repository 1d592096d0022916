package main

import (
	"fmt"

	"github.com/nest-format/go-nest/token"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	bad := 0
	err = eachInput(args, func(name string, d []byte) error {
		toks := token.Tokenize(d)
		if cfg.Tokens {
			token.PrintTokens(cc.Out, toks, name)
		}
		for _, t := range toks {
			if t.Err == nil {
				continue
			}
			bad++
			fmt.Fprintf(cc.Out, "%s: %s\n", name, t.Err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if bad > 0 {
		return fmt.Errorf("%d malformed lines", bad)
	}
	return nil
}
