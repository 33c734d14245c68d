// Package reportfmt renders a validation report for terminals and machines.
// Rendering is a pure function over the report data; it never re-inspects
// the project, which keeps repeated runs byte-identical.
package reportfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"wristcheck/internal/finding"
)

// sectionHeaders announce each validator's findings, in the phrasing the
// report has always used.
var sectionHeaders = map[finding.Source]string{
	finding.SourceStructure:  "Checking file structure...",
	finding.SourceManifest:   "Validating package.json...",
	finding.SourceSourceTree: "Checking source structure...",
	finding.SourceHeuristics: "Analyzing C source code...",
	finding.SourceResources:  "Checking resources...",
}

func severityColor(sev finding.Severity) *color.Color {
	switch sev {
	case finding.SevOK:
		return color.New(color.FgGreen)
	case finding.SevInfo:
		return color.New(color.FgBlue)
	case finding.SevWarning:
		return color.New(color.FgYellow)
	case finding.SevError:
		return color.New(color.FgRed)
	}
	return color.New()
}

func styled(c *color.Color, enabled bool, s string) string {
	// Per-instance override so rendering ignores terminal auto-detection and
	// stays deterministic.
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

// Pretty writes the line-oriented report: a title, one glyph-tagged line per
// finding grouped under its validator's header, and a summary with the total
// error count.
func Pretty(w io.Writer, project string, report *finding.Report, opts PrettyOpts) {
	bold := color.New(color.Bold)

	fmt.Fprintf(w, "%s\n", styled(bold, opts.Color, "Validating Pebble Watchface Project"))
	fmt.Fprintf(w, "Project: %s\n", project)

	var last finding.Source
	for _, f := range report.Items() {
		if opts.Quiet && (f.Severity == finding.SevOK || f.Severity == finding.SevInfo) {
			continue
		}
		if f.Source != last {
			if header, ok := sectionHeaders[f.Source]; ok {
				fmt.Fprintf(w, "\n%s\n", styled(color.New(color.Bold), opts.Color, header))
			}
			last = f.Source
		}
		glyph := styled(severityColor(f.Severity), opts.Color, f.Severity.Glyph())
		fmt.Fprintf(w, "  %s %s\n", glyph, f.Message)
	}

	sum := color.New(color.Bold)
	fmt.Fprintf(w, "\n%s\n", styled(sum, opts.Color, "Summary"))

	errs := report.Errors()
	if len(errs) > 0 {
		red := color.New(color.FgRed)
		fmt.Fprintf(w, "%s\n", styled(red, opts.Color, fmt.Sprintf("Found %d error(s)", len(errs))))
		for _, f := range errs {
			fmt.Fprintf(w, "  • %s\n", f.Message)
		}
		return
	}

	green := color.New(color.FgGreen)
	fmt.Fprintf(w, "%s\n", styled(green, opts.Color, "All validations passed!"))
	fmt.Fprintf(w, "\nNext steps:\n")
	fmt.Fprintf(w, "  1. cd %s\n", project)
	fmt.Fprintf(w, "  2. pebble build\n")
	fmt.Fprintf(w, "  3. pebble install --emulator basalt\n")
}
