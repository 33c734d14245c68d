// Package driver sequences the validators over one project directory and
// owns the overall control flow of a validation run.
package driver

import (
	"os"
	"path/filepath"

	"wristcheck/internal/finding"
	"wristcheck/internal/heuristics"
	"wristcheck/internal/manifest"
	"wristcheck/internal/srctree"
)

// Options configure a validation run.
type Options struct {
	// MaxFindings caps the report; zero means finding.DefaultMaxFindings.
	MaxFindings int
}

// Result is the outcome of one validation run.
type Result struct {
	// ProjectPath is the resolved project directory.
	ProjectPath string
	// Report holds every finding in emission order.
	Report *finding.Report
	// Fatal is set when the project path was unusable and no validator ran.
	Fatal bool
}

// Passed reports the verdict: pass iff the report holds no error findings.
func (r *Result) Passed() bool {
	return !r.Report.HasErrors()
}

// checks is the fixed battery of validators, run unconditionally in order.
// Each is a pure function of the project snapshot; a short-circuit inside
// one validator never skips the later ones.
var checks = []func(root string) []finding.Finding{
	srctree.CheckStructure,
	manifest.Validate,
	srctree.CheckSources,
	func(root string) []finding.Finding {
		return heuristics.Scan(srctree.CSources(root))
	},
	srctree.CheckResources,
}

// Validate runs the full validation battery with default options.
func Validate(path string) *Result {
	return ValidateWithOptions(path, Options{})
}

// ValidateWithOptions walks the project at path and returns the accumulated
// report. A nonexistent or non-directory path is fatal: the result carries a
// single error finding and no validator runs.
func ValidateWithOptions(path string, opts Options) *Result {
	max := opts.MaxFindings
	if max <= 0 {
		max = finding.DefaultMaxFindings
	}
	report := finding.NewReport(max)

	resolved := path
	if abs, err := filepath.Abs(path); err == nil {
		resolved = abs
	}
	res := &Result{ProjectPath: resolved, Report: report}

	st, err := os.Stat(resolved)
	if err != nil {
		report.Add(finding.Error(finding.SourceProject, "Project path does not exist: %s", resolved))
		res.Fatal = true
		return res
	}
	if !st.IsDir() {
		report.Add(finding.Error(finding.SourceProject, "Path is not a directory"))
		res.Fatal = true
		return res
	}

	for _, check := range checks {
		report.Append(check(resolved))
	}
	return res
}
