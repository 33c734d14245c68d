package manifest

import (
	"encoding/json"
	"errors"
	"os"
	"regexp"

	"wristcheck/internal/finding"
)

// uuidPattern is the canonical 8-4-4-4-12 hyphenated hex form, matched
// case-insensitively.
var uuidPattern = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// ValidPlatforms is the fixed set of recognised target hardware variants.
var ValidPlatforms = map[string]bool{
	"aplite":  true,
	"basalt":  true,
	"chalk":   true,
	"diorite": true,
	"emery":   true,
}

// ValidUUID reports whether s is a well-formed watchface UUID.
func ValidUUID(s string) bool {
	return uuidPattern.MatchString(s)
}

// Validate locates and checks the manifest of the project rooted at root.
//
// A missing or unparseable manifest yields a single error finding and no
// further checks. Once the document decodes, every field check runs
// regardless of earlier failures; the severity split distinguishes "build
// will fail" (error) from "build will succeed but behavior may be
// unintended" (warning). When no check produced an error, a trailing OK
// finding confirms the manifest is valid.
func Validate(root string) []finding.Finding {
	var out []finding.Finding
	src := finding.SourceManifest

	path := Path(root)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return append(out, finding.Error(src, "%s not found", Filename))
		}
		return append(out, finding.Error(src, "failed to stat %s: %v", Filename, err))
	}

	m, err := Load(path)
	if err != nil {
		return append(out, finding.Error(src, "%v", err))
	}

	errBefore := func() int {
		n := 0
		for _, f := range out {
			if f.Severity == finding.SevError {
				n++
			}
		}
		return n
	}

	if !present(m.Name) {
		out = append(out, finding.Error(src, "%s: Missing required field: name", Filename))
	}
	if m.Pebble == nil {
		out = append(out, finding.Error(src, "%s: Missing required field: pebble", Filename))
	} else {
		out = append(out, validatePebble(m.Pebble)...)
	}

	if errBefore() == 0 {
		out = append(out, finding.OK(src, "%s is valid", Filename))
	}
	return out
}

func validatePebble(cfg *AppConfig) []finding.Finding {
	var out []finding.Finding
	src := finding.SourceManifest

	if !present(cfg.UUID) {
		out = append(out, finding.Error(src, "%s: Missing pebble.uuid", Filename))
	} else {
		var uuid string
		if err := json.Unmarshal(cfg.UUID, &uuid); err != nil || !ValidUUID(uuid) {
			out = append(out, finding.Error(src, "%s: Invalid UUID format", Filename))
		}
	}

	if !present(cfg.DisplayName) {
		out = append(out, finding.Error(src, "%s: Missing pebble.displayName", Filename))
	}

	if !present(cfg.SDKVersion) {
		out = append(out, finding.Warning(src, "pebble.sdkVersion not specified (will use default)"))
	}

	if !present(cfg.Watchapp) {
		out = append(out, finding.Error(src, "%s: Missing pebble.watchapp configuration", Filename))
	} else if wf := cfg.WatchfaceFlag(); wf != true {
		// Not an error: a non-watchface app is a valid, if unusual, configuration.
		out = append(out, finding.Warning(src, "pebble.watchapp.watchface is not true (not marked as watchface)"))
	}

	for _, p := range cfg.TargetPlatforms {
		name, ok := p.(string)
		if !ok || !ValidPlatforms[name] {
			out = append(out, finding.Error(src, "%s: Invalid target platform: %v", Filename, p))
		}
	}
	if len(cfg.TargetPlatforms) == 0 {
		out = append(out, finding.Warning(src, "No target platforms specified (will build for all)"))
	}

	return out
}
