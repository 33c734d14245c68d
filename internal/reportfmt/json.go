package reportfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"wristcheck/internal/finding"
)

// FindingJSON is one finding in machine-readable form.
type FindingJSON struct {
	Severity string `json:"severity"`
	Source   string `json:"source"`
	Message  string `json:"message"`
}

// ReportJSON is the root structure of the JSON output.
type ReportJSON struct {
	Project  string        `json:"project"`
	Findings []FindingJSON `json:"findings"`
	Errors   int           `json:"errors"`
	Passed   bool          `json:"passed"`
}

// BuildReportJSON converts a report into its JSON document form.
func BuildReportJSON(project string, report *finding.Report) ReportJSON {
	out := ReportJSON{
		Project:  project,
		Findings: make([]FindingJSON, 0, report.Len()),
		Errors:   report.ErrorCount(),
		Passed:   !report.HasErrors(),
	}
	for _, f := range report.Items() {
		out.Findings = append(out.Findings, FindingJSON{
			Severity: f.Severity.String(),
			Source:   string(f.Source),
			Message:  f.Message,
		})
	}
	return out
}

// JSON writes the report as a single JSON document.
func JSON(w io.Writer, project string, report *finding.Report, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	if opts.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(BuildReportJSON(project, report)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
