package maestro

// Layout defaults.
const (
	// DefaultFanAngle is the rotation step between neighbouring fan cards, in degrees.
	DefaultFanAngle = 5.0

	// DefaultFanRadius is the radius of the fan arc in pixels. Large values
	// give a shallow arc.
	DefaultFanRadius = 2000.0

	// DefaultAlbumPadding is the gap between and around album cells in pixels.
	DefaultAlbumPadding = 20

	// AlbumAspectBias widens album grids: columns = ceil(sqrt(bias * n)).
	AlbumAspectBias = 1.35
)

// Option configures a Renderer during creation.
//
// Example:
//
//	r := maestro.New(catalog, portraits,
//	    maestro.WithFanAngle(4),
//	    maestro.WithAlbumPadding(12),
//	)
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	workers      int
	batchLimit   int
	fanAngle     float64
	fanRadius    float64
	albumPadding int
	modifier     string
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		workers:      0, // GOMAXPROCS
		batchLimit:   0, // one goroutine per card
		fanAngle:     DefaultFanAngle,
		fanRadius:    DefaultFanRadius,
		albumPadding: DefaultAlbumPadding,
		modifier:     DefaultModifier,
	}
}

// WithWorkers sets the size of the pixel worker pool.
// Zero or less uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithBatchLimit caps how many cards of one fan or album render at once.
// Zero or less renders every card of a batch concurrently.
func WithBatchLimit(n int) Option {
	return func(o *options) {
		o.batchLimit = n
	}
}

// WithFanAngle sets the angle between neighbouring fan cards in degrees.
func WithFanAngle(degrees float64) Option {
	return func(o *options) {
		o.fanAngle = degrees
	}
}

// WithFanRadius sets the fan arc radius in pixels.
func WithFanRadius(r float64) Option {
	return func(o *options) {
		o.fanRadius = r
	}
}

// WithAlbumPadding sets the album cell padding in pixels.
// Negative values are treated as zero.
func WithAlbumPadding(px int) Option {
	return func(o *options) {
		o.albumPadding = max(px, 0)
	}
}

// WithModifier sets the layer name prefix selected by CardRequest.Modifier,
// such as "kindled" or "glow".
func WithModifier(name string) Option {
	return func(o *options) {
		o.modifier = name
	}
}
