package main

import (
	"fmt"
	"strings"

	"github.com/nest-format/go-nest/encode"
	"github.com/nest-format/go-nest/parse"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	a, err := canonical(cfg, args[0])
	if err != nil {
		return err
	}
	b, err := canonical(cfg, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	dmp := diffmatchpatch.New()
	ra, rb, lines := dmp.DiffLinesToRunes(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(ra, rb, false), lines)
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			printLines(cc, "-", d.Text)
		case diffmatchpatch.DiffInsert:
			printLines(cc, "+", d.Text)
		case diffmatchpatch.DiffEqual:
			printLines(cc, " ", d.Text)
		}
	}
	return nil
}

func printLines(cc *cli.Context, prefix, text string) {
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		fmt.Fprintf(cc.Out, "%s %s\n", prefix, line)
	}
}

// canonical parses a file and re-encodes it so the diff ignores
// formatting differences.
func canonical(cfg *DiffConfig, file string) (string, error) {
	d, err := readInput(file)
	if err != nil {
		return "", err
	}
	node, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return "", err
	}
	return encode.String(node)
}
