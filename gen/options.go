package gen

// DefaultSeed seeds generators when no WithSeed option is given; a fixed
// default keeps even unconfigured calls reproducible.
const DefaultSeed int64 = 1

// Option configures a generator call. Use with Sparse/Acyclic(n, p, opts...).
type Option func(*Options)

// Options holds the resolved generator parameters.
type Options struct {
	// Seed seeds the sampling RNG.
	Seed int64

	// SelfLoops admits u→u edge trials. Acyclic ignores it: a DAG cannot
	// carry self-loops.
	SelfLoops bool
}

// DefaultOptions returns the deterministic defaults: DefaultSeed, no
// self-loops.
func DefaultOptions() Options {
	return Options{
		Seed:      DefaultSeed,
		SelfLoops: false,
	}
}

// WithSeed returns an Option that seeds the sampling RNG.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithSelfLoops returns an Option that admits self-loop trials.
func WithSelfLoops() Option {
	return func(o *Options) {
		o.SelfLoops = true
	}
}
