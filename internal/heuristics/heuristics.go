// Package heuristics applies textual pattern checks to native source files.
//
// Every check is a substring test over the raw file text, not semantic
// analysis: the acquire/release pairing rule, for instance, only detects an
// acquire token with no release token anywhere in the same file. It cannot
// see conditional paths or cross-file pairing. That limitation is deliberate;
// upgrading to real parsing would change which projects pass.
package heuristics

import (
	"os"
	"path/filepath"
	"strings"

	"wristcheck/internal/finding"
)

const frameworkInclude = "#include <pebble.h>"

// cleanupPairs are the acquire/release call pairs checked independently of
// each other.
var cleanupPairs = []struct {
	acquire string
	release string
}{
	{"window_create", "window_destroy"},
	{"gpath_create", "gpath_destroy"},
}

// Scan runs the pattern checks over every file in files, in order.
// A read failure on one file becomes a warning for that file and never
// aborts the scan of the rest.
func Scan(files []string) []finding.Finding {
	var out []finding.Finding
	for _, path := range files {
		out = append(out, scanFile(path)...)
	}
	return out
}

func scanFile(path string) []finding.Finding {
	var out []finding.Finding
	src := finding.SourceHeuristics
	name := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return append(out, finding.Warning(src, "Could not analyze %s: %v", name, err))
	}
	content := string(data)

	if !strings.Contains(content, frameworkInclude) {
		out = append(out, finding.Warning(src, "%s: Missing %s", name, frameworkInclude))
	}

	if strings.Contains(content, "int main") {
		out = append(out, finding.OK(src, "%s: Has main() function", name))
	} else if name == "main.c" {
		out = append(out, finding.Warning(src, "%s: No main() function found", name))
	}

	// Inadvisable on the watch hardware, not incorrect.
	if strings.Contains(content, "float ") || strings.Contains(content, "double ") {
		out = append(out, finding.Warning(src, "%s: Uses floating point (not recommended)", name))
	}

	if strings.Contains(content, "malloc(") || strings.Contains(content, "calloc(") {
		out = append(out, finding.Info(src, "%s: Uses dynamic memory allocation", name))
	}

	for _, pair := range cleanupPairs {
		if strings.Contains(content, pair.acquire) && !strings.Contains(content, pair.release) {
			out = append(out, finding.Warning(src, "%s: %s without %s", name, pair.acquire, pair.release))
		}
	}
	return out
}
