package align

// config holds the resolved set of Option values for one alignment call.
type config struct {
	table  bool
	rowcol bool
	stats  bool

	// pinScheme/pinWidth let tests and the CLI force a specific kernel
	// instantiation instead of automatic dispatch + escalation.
	pinScheme    Scheme
	pinSchemeSet bool
	pinWidth     Width
	pinWidthSet  bool
}

// Option configures optional output or pins a specific kernel
// instantiation on an align.NW/SG/SW call.
type Option func(*config)

// WithTable requests the full DP score table in the result.
func WithTable() Option {
	return func(c *config) { c.table = true }
}

// WithRowCol requests the final row and column of the DP table instead
// of the full table.
func WithRowCol() Option {
	return func(c *config) { c.rowcol = true }
}

// WithStats requests match/similar/length statistics alongside the
// score.
func WithStats() Option {
	return func(c *config) { c.stats = true }
}

// WithScheme pins the vectorization scheme, bypassing automatic
// selection. Intended for tests that need to exercise a specific
// scheme rather than whatever the dispatcher would pick.
func WithScheme(s Scheme) Option {
	return func(c *config) {
		c.pinScheme = s
		c.pinSchemeSet = true
	}
}

// WithWidth pins the lane bit width, bypassing saturation escalation.
// Intended for tests that need to force e.g. an 8-bit kernel to
// observe saturation behavior directly.
func WithWidth(w Width) Option {
	return func(c *config) {
		c.pinWidth = w
		c.pinWidthSet = true
	}
}

func resolveConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
