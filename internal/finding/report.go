package finding

import (
	"fortio.org/safecast"
)

// Report accumulates findings in emission order, up to a fixed cap on
// non-error findings.
type Report struct {
	items []Finding
	max   uint16
}

// NewReport creates a Report that holds at most max findings.
// Non-positive or oversized caps fall back to DefaultMaxFindings.
func NewReport(max int) *Report {
	capped, err := safecast.Conv[uint16](max)
	if err != nil || capped == 0 {
		capped = DefaultMaxFindings
	}
	return &Report{
		items: make([]Finding, 0, capped),
		max:   capped,
	}
}

// DefaultMaxFindings bounds a report when no explicit cap is given.
const DefaultMaxFindings = 500

// Add appends a finding. The cap only bounds ok, info and warning findings;
// an error finding is always retained so that the cap can never flip the
// verdict or hide an error from the rendered report.
// Returns false when the finding was dropped because the cap was reached.
func (r *Report) Add(f Finding) bool {
	if f.Severity != SevError && len(r.items) >= int(r.max) {
		return false
	}
	r.items = append(r.items, f)
	return true
}

// Append adds every finding in fs, in order.
func (r *Report) Append(fs []Finding) {
	for _, f := range fs {
		r.Add(f)
	}
}

func (r *Report) Len() int {
	return len(r.items)
}

// Items returns a read-only view of the accumulated findings.
// Callers must not modify the returned slice.
func (r *Report) Items() []Finding {
	return r.items
}

// ErrorCount returns the number of error-severity findings.
func (r *Report) ErrorCount() int {
	n := 0
	for i := range r.items {
		if r.items[i].Severity == SevError {
			n++
		}
	}
	return n
}

// HasErrors reports whether the verdict is a failure.
func (r *Report) HasErrors() bool {
	return r.ErrorCount() > 0
}

// Errors returns the error-severity findings in emission order.
func (r *Report) Errors() []Finding {
	var out []Finding
	for _, f := range r.items {
		if f.Severity == SevError {
			out = append(out, f)
		}
	}
	return out
}
