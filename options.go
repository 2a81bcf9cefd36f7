package xicon

// Option configures encoding and generation.
//
// Example:
//
//	png, err := xicon.Encode(48, xicon.WithPolicy(xicon.PolicyGradient))
type Option func(*options)

type options struct {
	policy     Policy
	compressor Compressor
	center     Color
	edge       Color
	workers    int
}

func defaultOptions() options {
	return options{
		policy:     PolicyGlyph,
		compressor: ZlibCompressor{},
		center:     GradientCenter,
		edge:       GradientEdge,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPolicy selects the icon design.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithCompressor replaces the zlib compressor. A nil compressor restores
// the default.
func WithCompressor(c Compressor) Option {
	return func(o *options) {
		if c == nil {
			c = ZlibCompressor{}
		}
		o.compressor = c
	}
}

// WithLevel uses the default compressor at the given zlib level
// (-2 to 9, 0 meaning the library default).
func WithLevel(level int) Option {
	return func(o *options) {
		o.compressor = ZlibCompressor{Level: level}
	}
}

// WithGradient overrides the endpoints of PolicyGradient.
func WithGradient(center, edge Color) Option {
	return func(o *options) {
		o.center = center
		o.edge = edge
	}
}

// WithWorkers lets a Generator encode up to n sizes concurrently. Files are
// still written one at a time in the requested order. n <= 1 keeps
// generation sequential.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
