package scaffold

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wristcheck/internal/driver"
	"wristcheck/internal/finding"
	"wristcheck/internal/manifest"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My Watchface", "my-watchface"},
		{"castle_watch", "castle-watch"},
		{"  Beach Face  ", "beach-face"},
		{"simple", "simple"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCreateProducesValidProject(t *testing.T) {
	target := filepath.Join(t.TempDir(), "sunrise-face")
	res, err := Create(target, Options{Author: "tester"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.Name != "sunrise-face" {
		t.Fatalf("name = %q", res.Name)
	}
	if !manifest.ValidUUID(res.UUID) {
		t.Fatalf("generated uuid %q is not well-formed", res.UUID)
	}
	for _, rel := range []string{"package.json", "wscript", ".gitignore", "src/c/main.c"} {
		if _, err := os.Stat(filepath.Join(target, filepath.FromSlash(rel))); err != nil {
			t.Fatalf("missing %s: %v", rel, err)
		}
	}

	// The scaffold must pass its own validation with zero errors and zero
	// warnings.
	vres := driver.Validate(target)
	if !vres.Passed() {
		t.Fatalf("scaffolded project failed validation: %v", vres.Report.Errors())
	}
	for _, f := range vres.Report.Items() {
		if f.Severity == finding.SevWarning {
			t.Fatalf("scaffolded project produced warning: %q", f.Message)
		}
	}
}

func TestCreateTemplates(t *testing.T) {
	cases := []struct {
		name     string
		template Template
		entry    string
		marker   string
	}{
		{"default is animated", Template(""), "src/c/main.c", "app_timer_register"},
		{"animated", TemplateAnimated, "src/c/main.c", "gpath_create"},
		{"static", TemplateStatic, "src/c/main.c", "tick_timer_service_subscribe"},
		{"rockyjs", TemplateRockyJS, "src/pkjs/index.js", "require('rocky')"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			target := filepath.Join(t.TempDir(), "face")
			if _, err := Create(target, Options{Template: tc.template}); err != nil {
				t.Fatalf("Create: %v", err)
			}
			body, err := os.ReadFile(filepath.Join(target, filepath.FromSlash(tc.entry)))
			if err != nil {
				t.Fatalf("missing entry point: %v", err)
			}
			if !strings.Contains(string(body), tc.marker) {
				t.Fatalf("entry point %s does not contain %q", tc.entry, tc.marker)
			}

			vres := driver.Validate(target)
			if !vres.Passed() {
				t.Fatalf("scaffolded project failed validation: %v", vres.Report.Errors())
			}
			for _, f := range vres.Report.Items() {
				if f.Severity == finding.SevWarning {
					t.Fatalf("scaffolded project produced warning: %q", f.Message)
				}
			}
		})
	}
}

func TestCreateRejectsUnknownTemplate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "face")
	if _, err := Create(target, Options{Template: Template("spinny")}); err == nil {
		t.Fatalf("Create must reject an unknown template")
	}
}

func TestCreateEscapesManifestStrings(t *testing.T) {
	target := filepath.Join(t.TempDir(), "quote-face")
	author := `J "Q" Developer \ Co`
	if _, err := Create(target, Options{Author: author}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	m, err := manifest.Load(manifest.Path(target))
	if err != nil {
		t.Fatalf("scaffolded manifest does not parse: %v", err)
	}
	var got string
	if err := json.Unmarshal(m.Author, &got); err != nil {
		t.Fatalf("author field: %v", err)
	}
	if got != author {
		t.Fatalf("author = %q, want %q", got, author)
	}

	if vres := driver.Validate(target); !vres.Passed() {
		t.Fatalf("scaffolded project failed validation: %v", vres.Report.Errors())
	}
}

func TestCreateRefusesExistingProject(t *testing.T) {
	target := t.TempDir()
	if _, err := Create(target, Options{}); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if _, err := Create(target, Options{}); err == nil {
		t.Fatalf("second Create must refuse an initialized directory")
	}
}
