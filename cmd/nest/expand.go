package main

import (
	"fmt"
	"strings"

	"github.com/nest-format/go-nest/encode"
	"github.com/nest-format/go-nest/eval"
	"github.com/nest-format/go-nest/parse"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func expand(cfg *ExpandConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Expand.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := append(cfg.parseOpts(), parse.WithTransform(eval.Expand(cfg.Env)))
	return eachInput(args, func(_ string, d []byte) error {
		node, err := parse.Parse(d, opts...)
		if err != nil {
			return err
		}
		return encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...)
	})
}

func (cfg *ExpandConfig) envOpt(cc *cli.Context, a string) (any, error) {
	if err := envFunc(cfg.Env, a); err != nil {
		return nil, err
	}
	return 0, nil
}

// envFunc sets a dotted path in env to a value parsed as yaml, so that
// -e replicas=3 yields an int and -e name=web a string.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
