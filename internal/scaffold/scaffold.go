// Package scaffold creates new watchface projects with the conventional
// layout: manifest, build script, gitignore and an entry-point source file.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"wristcheck/internal/manifest"
	"wristcheck/internal/srctree"
)

// Template selects the entry-point source scaffolded into a new project.
type Template string

const (
	// TemplateAnimated is a C watchface with a timer-driven canvas; the
	// default.
	TemplateAnimated Template = "animated"
	// TemplateStatic is a C watchface that only redraws on the minute tick.
	TemplateStatic Template = "static"
	// TemplateRockyJS is a JavaScript watchface.
	TemplateRockyJS Template = "rockyjs"
)

// Options configure project creation.
type Options struct {
	// Name is the package name; defaults to the target directory basename.
	Name string
	// DisplayName is shown on the watch; defaults to Name.
	DisplayName string
	// Author goes into the manifest.
	Author string
	// Template picks the entry-point variant; empty means TemplateAnimated.
	Template Template
	// UUID overrides the generated identifier; used by tests.
	UUID string
}

// Result lists what Create produced.
type Result struct {
	Root    string
	Name    string
	UUID    string
	Created []string
}

// Slugify converts a project name to a valid package slug.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")
	return s
}

// Create scaffolds a watchface project at target, creating the directory if
// needed. It refuses to touch a directory that already holds a manifest.
func Create(target string, opts Options) (*Result, error) {
	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", target)
	}

	manifestPath := manifest.Path(target)
	if _, err := os.Stat(manifestPath); err == nil {
		return nil, fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	name := opts.Name
	if name == "" {
		name = filepath.Base(target)
	}
	name = Slugify(name)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "my-watchface"
	}
	display := opts.DisplayName
	if display == "" {
		display = name
	}
	author := opts.Author
	if author == "" {
		author = "Pebble Developer"
	}
	id := opts.UUID
	if id == "" {
		id = uuid.NewString()
	}

	res := &Result{Root: target, Name: name, UUID: id}
	write := func(rel, body string) error {
		path := filepath.Join(target, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(rel), err)
		}
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", rel, err)
		}
		res.Created = append(res.Created, rel)
		return nil
	}

	manifestBody, err := buildManifest(name, display, author, id)
	if err != nil {
		return nil, err
	}
	if err := write(manifest.Filename, manifestBody); err != nil {
		return nil, err
	}
	if err := write(srctree.BuildScript, wscriptTemplate); err != nil {
		return nil, err
	}
	if err := write(".gitignore", gitignoreTemplate); err != nil {
		return nil, err
	}
	switch opts.Template {
	case TemplateRockyJS:
		if err := write("src/pkjs/index.js", rockyJSTemplate); err != nil {
			return nil, err
		}
	case TemplateStatic:
		if err := write("src/c/main.c", staticCTemplate); err != nil {
			return nil, err
		}
	case TemplateAnimated, "":
		if err := write("src/c/main.c", animatedCTemplate); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown template %q", opts.Template)
	}
	return res, nil
}
