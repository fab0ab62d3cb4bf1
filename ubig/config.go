package ubig

// Config holds the word-count thresholds that select between the
// schoolbook, Karatsuba, and Toom-Cook 3-way regimes for multiplication
// and squaring. These are tuning knobs, not correctness parameters: any
// threshold ordering (0 < KaratsubaThreshold <= ToomCookThreshold, and
// likewise for the squaring pair) yields the same results, just at
// different speeds. Exposing them as a runtime Config — rather than
// compile-time constants — makes it possible to force the Karatsuba or
// Toom-Cook code paths in tests with small inputs.
type Config struct {
	// KaratsubaThreshold is the word count at or above which Multiply
	// switches from schoolbook to Karatsuba multiplication.
	KaratsubaThreshold int
	// ToomCookThreshold is the word count at or above which Multiply
	// switches from Karatsuba to Toom-Cook 3-way multiplication.
	ToomCookThreshold int
	// SquareKaratsubaThreshold is KaratsubaThreshold's counterpart for
	// Square.
	SquareKaratsubaThreshold int
	// SquareToomThreshold is ToomCookThreshold's counterpart for Square.
	SquareToomThreshold int
	// BurnikelZieglerThreshold is the divisor word count at or above
	// which DivMod switches from Knuth's algorithm D to a
	// Burnikel-Ziegler recursive division.
	BurnikelZieglerThreshold int
}

// Option configures a Config.
type Option func(*Config)

// WithKaratsubaThreshold overrides the multiply schoolbook/Karatsuba
// crossover.
func WithKaratsubaThreshold(n int) Option {
	return func(c *Config) { c.KaratsubaThreshold = n }
}

// WithToomCookThreshold overrides the multiply Karatsuba/Toom-Cook
// crossover.
func WithToomCookThreshold(n int) Option {
	return func(c *Config) { c.ToomCookThreshold = n }
}

// WithSquareKaratsubaThreshold overrides the squaring schoolbook/Karatsuba
// crossover.
func WithSquareKaratsubaThreshold(n int) Option {
	return func(c *Config) { c.SquareKaratsubaThreshold = n }
}

// WithSquareToomThreshold overrides the squaring Karatsuba/Toom-Cook
// crossover.
func WithSquareToomThreshold(n int) Option {
	return func(c *Config) { c.SquareToomThreshold = n }
}

// WithBurnikelZieglerThreshold overrides the division algorithm-D/
// Burnikel-Ziegler crossover.
func WithBurnikelZieglerThreshold(n int) Option {
	return func(c *Config) { c.BurnikelZieglerThreshold = n }
}

// DefaultConfig returns the thresholds used when no Config is supplied
// explicitly: 80 words for multiply's Karatsuba crossover, 240 for its
// Toom-Cook crossover, and matching values for squaring; these mirror the
// typical crossovers named in spec.md §4.B.
func DefaultConfig() Config {
	return Config{
		KaratsubaThreshold:       80,
		ToomCookThreshold:        240,
		SquareKaratsubaThreshold: 80,
		SquareToomThreshold:      240,
		BurnikelZieglerThreshold: 240,
	}
}

// NewConfig builds a Config starting from DefaultConfig and applying opts
// in order.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

var defaultConfig = DefaultConfig()

// SetDefaultConfig replaces the package-level default Config used by
// Multiply, Square, and DivMod. It is meant for tests that need to force
// a particular algorithm regime; production callers should leave the
// default alone or use the *Config variants directly.
func SetDefaultConfig(cfg Config) {
	defaultConfig = cfg
}
