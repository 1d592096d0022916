package token

import (
	"fmt"
	"io"
)

func PrintTokens(w io.Writer, toks []Token, msg string) {
	fmt.Fprintf(w, "%s tokens:\n", msg)
	for i := range toks {
		t := &toks[i]
		if t.Err != nil {
			fmt.Fprintf(w, "\t%d %s `%s` (%s)\n", t.Line, t.Type, t.Content, t.Err.Err)
			continue
		}
		fmt.Fprintf(w, "\t%d %s `%s`\n", t.Line, t.Type, t.Content)
	}
}
