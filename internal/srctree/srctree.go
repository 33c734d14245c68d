// Package srctree checks the conventional file and directory layout of a
// watchface project: required files at the root, the src/ tree, and the
// optional resources/ tree.
package srctree

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"wristcheck/internal/finding"
	"wristcheck/internal/manifest"
)

// Conventional names at the project root.
const (
	SourceDir    = "src"
	ResourcesDir = "resources"
	BuildScript  = "wscript"
	AppInfoFile  = "appinfo.json"
	MainSource   = "main.c"
)

// ListFiles walks dir recursively and returns every file whose extension is
// in exts, sorted for deterministic output. Hidden directories and common
// build folders are skipped.
func ListFiles(dir string, exts ...string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if len(name) > 1 && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if name == "build" || name == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		ext := filepath.Ext(path)
		for _, want := range exts {
			if ext == want {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CSources returns the project's native source files in sorted order, or nil
// when the source root does not exist.
func CSources(root string) []string {
	src := filepath.Join(root, SourceDir)
	if st, err := os.Stat(src); err != nil || !st.IsDir() {
		return nil
	}
	files, err := ListFiles(src, ".c")
	if err != nil {
		return nil
	}
	return files
}

// CheckStructure verifies the conventional files at the project root.
// package.json and wscript are required; appinfo.json is a legacy optional
// companion whose absence is merely noted.
func CheckStructure(root string) []finding.Finding {
	var out []finding.Finding
	src := finding.SourceStructure

	required := []string{manifest.Filename, BuildScript}
	for _, name := range required {
		if _, err := os.Stat(filepath.Join(root, name)); err == nil {
			out = append(out, finding.OK(src, "%s exists", name))
		} else {
			out = append(out, finding.Error(src, "%s not found", name))
		}
	}

	if _, err := os.Stat(filepath.Join(root, AppInfoFile)); err == nil {
		out = append(out, finding.OK(src, "%s exists", AppInfoFile))
	} else {
		out = append(out, finding.Info(src, "%s not found (optional)", AppInfoFile))
	}
	return out
}

// CheckSources verifies the src/ tree: native sources first, script sources
// as a fallback, an error when neither exists. A missing src/ short-circuits
// this check only; other validators still run.
func CheckSources(root string) []finding.Finding {
	var out []finding.Finding
	src := finding.SourceSourceTree

	srcDir := filepath.Join(root, SourceDir)
	if st, err := os.Stat(srcDir); err != nil || !st.IsDir() {
		return append(out, finding.Error(src, "%s/ directory not found", SourceDir))
	}

	cSources, err := ListFiles(srcDir, ".c")
	if err != nil {
		return append(out, finding.Error(src, "failed to scan %s/: %v", SourceDir, err))
	}
	if len(cSources) > 0 {
		out = append(out, finding.OK(src, "Found %d C source file(s)", len(cSources)))
		hasMain := false
		for _, f := range cSources {
			if filepath.Base(f) == MainSource {
				hasMain = true
				break
			}
		}
		if hasMain {
			out = append(out, finding.OK(src, "%s found", MainSource))
		} else {
			out = append(out, finding.Warning(src, "No %s found (uncommon)", MainSource))
		}
		return out
	}

	jsSources, err := ListFiles(srcDir, ".js")
	if err != nil {
		return append(out, finding.Error(src, "failed to scan %s/: %v", SourceDir, err))
	}
	if len(jsSources) > 0 {
		return append(out, finding.OK(src, "Found %d JavaScript source file(s)", len(jsSources)))
	}
	return append(out, finding.Error(src, "No source files found (no .c or .js files)"))
}

// CheckResources inspects the optional resources/ tree. The check is purely
// observational and never fails validation.
func CheckResources(root string) []finding.Finding {
	var out []finding.Finding
	src := finding.SourceResources

	resDir := filepath.Join(root, ResourcesDir)
	if st, err := os.Stat(resDir); err != nil || !st.IsDir() {
		return append(out, finding.Info(src, "No %s/ directory (using system fonts only)", ResourcesDir))
	}
	out = append(out, finding.OK(src, "%s/ directory exists", ResourcesDir))

	if fonts, err := ListFiles(resDir, ".ttf", ".otf"); err == nil && len(fonts) > 0 {
		out = append(out, finding.Info(src, "Found %d custom font(s)", len(fonts)))
	}
	if images, err := ListFiles(resDir, ".png", ".pbi"); err == nil && len(images) > 0 {
		out = append(out, finding.Info(src, "Found %d image resource(s)", len(images)))
	}
	return out
}
