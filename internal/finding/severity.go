package finding

// Severity defines the weight of a finding.
type Severity uint8

const (
	// SevOK is a positive confirmation that a check passed.
	SevOK Severity = iota
	// SevInfo is an observational notice that never affects the verdict.
	SevInfo
	// SevWarning is a non-blocking advisory.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevOK:
		return "OK"
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Glyph returns the single-character marker used in terminal reports.
func (s Severity) Glyph() string {
	switch s {
	case SevOK:
		return "✓"
	case SevInfo:
		return "ℹ"
	case SevWarning:
		return "!"
	case SevError:
		return "✗"
	}
	return "?"
}
