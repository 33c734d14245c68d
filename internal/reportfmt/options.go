package reportfmt

// PrettyOpts configures human-readable rendering of a report.
type PrettyOpts struct {
	// Color enables ANSI colors for glyphs and headers.
	Color bool
	// Quiet drops ok and info findings, keeping advisories, errors and the
	// summary.
	Quiet bool
}

// JSONOpts configures machine-readable rendering of a report.
type JSONOpts struct {
	// Indent pretty-prints the JSON document.
	Indent bool
}
