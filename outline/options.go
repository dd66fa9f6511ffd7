package outline

// Default generator settings.
const (
	// DefaultFontSize is the em size in pixels used for outlines.
	DefaultFontSize = 72.0

	// DefaultCacheSize is the number of parsed fonts kept per Generator.
	DefaultCacheSize = 8

	// DefaultFill and DefaultStroke are the presentation attributes written
	// on the generated path element.
	DefaultFill   = "red"
	DefaultStroke = "black"
)

// Option configures a Generator.
type Option func(*generatorOptions)

type generatorOptions struct {
	backend   string
	size      float64
	cacheSize int
	paint     paint
}

func defaultOptions() generatorOptions {
	return generatorOptions{
		backend:   DefaultBackend,
		size:      DefaultFontSize,
		cacheSize: DefaultCacheSize,
		paint:     paint{fill: DefaultFill, stroke: DefaultStroke},
	}
}

// WithBackend selects the font parsing backend by registered name.
// Unknown names surface as ErrUnknownBackend from FetchOutline.
func WithBackend(name string) Option {
	return func(o *generatorOptions) {
		if name != "" {
			o.backend = name
		}
	}
}

// WithFontSize sets the em size in pixels. Non-positive sizes are ignored.
func WithFontSize(size float64) Option {
	return func(o *generatorOptions) {
		if size > 0 {
			o.size = size
		}
	}
}

// WithCacheSize sets how many parsed fonts are cached.
// Zero disables eviction.
func WithCacheSize(n int) Option {
	return func(o *generatorOptions) {
		if n >= 0 {
			o.cacheSize = n
		}
	}
}

// WithPaint sets the fill and stroke attributes of the path element.
// Empty values omit the attribute.
func WithPaint(fill, stroke string) Option {
	return func(o *generatorOptions) {
		o.paint = paint{fill: fill, stroke: stroke}
	}
}
