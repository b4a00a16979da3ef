package qlt

// Record is one decoded QLT row. Descriptive fields are carried verbatim;
// the repetition fields stay raw strings and are never evaluated here.
type Record struct {
	Use   string
	Layer string
	Diam  string
	Depth string

	RepQty string
	RepX   string
	RepY   string

	// Exprs holds every coordinate expression in file order: the primary
	// x, y, z followed by any further (x_i, y_i, z_i) groups. Intended to
	// be a multiple of three; empty entries occur in real files and are a
	// known grouping hazard.
	Exprs []string
}

// Triple is one fully resolved feature location.
type Triple struct {
	X float64
	Y float64
	Z float64
}
