package parse

type ParseOption func(*parseOpts)

type parseOpts struct {
	keepSpace bool
}

// KeepSpace retains character data exactly as read instead of trimming it.
func KeepSpace(v bool) ParseOption {
	return func(o *parseOpts) { o.keepSpace = v }
}
