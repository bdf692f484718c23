package ipspatch

type config struct {
	lenientHeader bool
	grownBounds   bool
}

type FuncOption func(*config)

// WithLenientHeader skips the five header bytes without checking that they
// spell "PATCH".
func WithLenientHeader() FuncOption {
	return func(o *config) {
		o.lenientHeader = true
	}
}

// WithGrownBounds checks overwrites against the current output length rather
// than the length of the original input, allowing records to rewrite data
// appended by earlier records.
func WithGrownBounds() FuncOption {
	return func(o *config) {
		o.grownBounds = true
	}
}

func newConfig(o []FuncOption) config {
	var cfg config
	for _, f := range o {
		f(&cfg)
	}
	return cfg
}
