package driver

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"wristcheck/internal/finding"
)

const validManifest = `{
  "name": "test-face",
  "author": "tester",
  "version": "1.0.0",
  "pebble": {
    "displayName": "Test Face",
    "uuid": "a1b2c3d4-e5f6-7890-abcd-ef0123456789",
    "sdkVersion": "3",
    "targetPlatforms": ["basalt"],
    "watchapp": {"watchface": true}
  }
}`

const validMainC = `#include <pebble.h>

static Window *s_window;

static void init(void) {
  s_window = window_create();
}

static void deinit(void) {
  window_destroy(s_window);
}

int main(void) {
  init();
  app_event_loop();
  deinit();
}
`

// newProject lays down a minimal valid watchface project.
func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"package.json": validManifest,
		"wscript":      "# build script\n",
		"src/c/main.c": validMainC,
	}
	for name, body := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return root
}

func rewrite(t *testing.T, root, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, filepath.FromSlash(name)), []byte(body), 0o600); err != nil {
		t.Fatalf("rewrite %s: %v", name, err)
	}
}

func warnings(res *Result) []string {
	var out []string
	for _, f := range res.Report.Items() {
		if f.Severity == finding.SevWarning {
			out = append(out, f.Message)
		}
	}
	return out
}

func TestValidateCleanProjectPasses(t *testing.T) {
	res := Validate(newProject(t))
	if !res.Passed() {
		t.Fatalf("clean project must pass, errors: %v", res.Report.Errors())
	}
	if res.Fatal {
		t.Fatalf("clean project must not be fatal")
	}
	foundResourceInfo := false
	for _, f := range res.Report.Items() {
		if f.Severity == finding.SevInfo && strings.Contains(f.Message, "No resources/ directory") {
			foundResourceInfo = true
		}
	}
	if !foundResourceInfo {
		t.Fatalf("missing resources info finding: %v", res.Report.Items())
	}
}

func TestValidateNonexistentPathIsFatal(t *testing.T) {
	res := Validate(filepath.Join(t.TempDir(), "missing"))
	if !res.Fatal {
		t.Fatalf("nonexistent path must be fatal")
	}
	if res.Report.Len() != 1 {
		t.Fatalf("fatal run must hold exactly one finding: %v", res.Report.Items())
	}
	if res.Report.Items()[0].Severity != finding.SevError {
		t.Fatalf("fatal finding must be an error")
	}
}

func TestValidateFileAsPathIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	res := Validate(path)
	if !res.Fatal || res.Report.Len() != 1 {
		t.Fatalf("file path must yield a single fatal finding: %v", res.Report.Items())
	}
	if res.Report.Items()[0].Message != "Path is not a directory" {
		t.Fatalf("message = %q", res.Report.Items()[0].Message)
	}
}

func TestValidateRunsAllValidatorsDespiteShortCircuit(t *testing.T) {
	// Remove the manifest: the manifest validator short-circuits, but the
	// source-tree, heuristics and resources validators still run.
	root := newProject(t)
	if err := os.Remove(filepath.Join(root, "package.json")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	res := Validate(root)
	sources := make(map[finding.Source]bool)
	for _, f := range res.Report.Items() {
		sources[f.Source] = true
	}
	for _, want := range []finding.Source{
		finding.SourceStructure,
		finding.SourceManifest,
		finding.SourceSourceTree,
		finding.SourceHeuristics,
		finding.SourceResources,
	} {
		if !sources[want] {
			t.Fatalf("validator %q did not run: %v", want, res.Report.Items())
		}
	}
}

func TestValidateWatchfaceFalseYieldsSingleWarning(t *testing.T) {
	root := newProject(t)
	rewrite(t, root, "package.json",
		strings.Replace(validManifest, `{"watchface": true}`, `{"watchface": false}`, 1))
	res := Validate(root)
	if !res.Passed() {
		t.Fatalf("watchface=false must still pass, errors: %v", res.Report.Errors())
	}
	warns := warnings(res)
	if len(warns) != 1 || !strings.Contains(warns[0], "watchface") {
		t.Fatalf("warnings = %v, want exactly one referencing the watchface flag", warns)
	}
}

func TestValidateUnmatchedAcquireYieldsSingleWarning(t *testing.T) {
	root := newProject(t)
	rewrite(t, root, "src/c/main.c",
		strings.Replace(validMainC, "  window_destroy(s_window);\n", "", 1))
	res := Validate(root)
	if !res.Passed() {
		t.Fatalf("unmatched pair is advisory only, errors: %v", res.Report.Errors())
	}
	warns := warnings(res)
	if len(warns) != 1 || warns[0] != "main.c: window_create without window_destroy" {
		t.Fatalf("warnings = %v, want exactly the unmatched pair", warns)
	}
}

func TestValidateTinyFindingsCapKeepsVerdict(t *testing.T) {
	// A findings cap smaller than the number of passing checks must still
	// surface every error: exit status follows error findings alone.
	root := newProject(t)
	rewrite(t, root, "package.json", `{"version": "1.0.0"}`)
	if err := os.RemoveAll(filepath.Join(root, "src")); err != nil {
		t.Fatalf("remove src: %v", err)
	}
	res := ValidateWithOptions(root, Options{MaxFindings: 2})
	if res.Passed() {
		t.Fatalf("project with missing manifest fields and no src/ must fail, report: %v", res.Report.Items())
	}
	if res.Report.ErrorCount() == 0 {
		t.Fatalf("error findings were dropped by the cap: %v", res.Report.Items())
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	root := newProject(t)
	first := Validate(root)
	second := Validate(root)
	if !reflect.DeepEqual(first.Report.Items(), second.Report.Items()) {
		t.Fatalf("two runs over an unchanged project differ:\n%v\n%v",
			first.Report.Items(), second.Report.Items())
	}
}

func TestValidateFixedEmissionOrder(t *testing.T) {
	res := Validate(newProject(t))
	var order []finding.Source
	for _, f := range res.Report.Items() {
		if len(order) == 0 || order[len(order)-1] != f.Source {
			order = append(order, f.Source)
		}
	}
	want := []finding.Source{
		finding.SourceStructure,
		finding.SourceManifest,
		finding.SourceSourceTree,
		finding.SourceHeuristics,
		finding.SourceResources,
	}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("validator order = %v, want %v", order, want)
	}
}
