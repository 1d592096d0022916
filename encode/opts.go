package encode

type Option func(*encState)

// Indent sets the number of spaces per nesting level (default 2).
func Indent(n int) Option {
	return func(es *encState) {
		if n > 0 {
			es.indent = n
		}
	}
}

func EncodeColors(c *Colors) Option {
	return func(es *encState) { es.Color = c.Color }
}
