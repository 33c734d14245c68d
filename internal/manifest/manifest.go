// Package manifest loads and schema-checks the package.json manifest of a
// Pebble watchface project, including the embedded "pebble" configuration
// block.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Filename is the manifest's fixed name at the project root.
const Filename = "package.json"

// Manifest is the parsed package.json document. Fields that only need a
// presence check are kept as json.RawMessage so that "key absent" and
// "key set to a zero value" stay distinguishable after decoding.
type Manifest struct {
	Name    json.RawMessage `json:"name"`
	Author  json.RawMessage `json:"author"`
	Version json.RawMessage `json:"version"`
	Pebble  *AppConfig      `json:"pebble"`
}

// AppConfig is the platform-specific "pebble" sub-document.
type AppConfig struct {
	UUID            json.RawMessage `json:"uuid"`
	DisplayName     json.RawMessage `json:"displayName"`
	SDKVersion      json.RawMessage `json:"sdkVersion"`
	EnableMultiJS   json.RawMessage `json:"enableMultiJS"`
	TargetPlatforms []any           `json:"targetPlatforms"`
	Watchapp        json.RawMessage `json:"watchapp"`
}

type watchappConfig struct {
	Watchface any `json:"watchface"`
}

// Path returns the manifest location for a project root.
func Path(root string) string {
	return filepath.Join(root, Filename)
}

// Load reads and decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", Filename, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%s has invalid JSON: %w", Filename, err)
	}
	return &m, nil
}

// present reports whether a key was set in the manifest JSON. A key
// explicitly set to null counts as absent: a null name, uuid or watchapp
// carries no usable value, so it is reported as a missing field rather
// than crashing or passing a later type check.
func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

// WatchfaceFlag returns the decoded pebble.watchapp.watchface value, or nil
// when the watchapp block is absent or not an object.
func (c *AppConfig) WatchfaceFlag() any {
	if !present(c.Watchapp) {
		return nil
	}
	var wa watchappConfig
	if err := json.Unmarshal(c.Watchapp, &wa); err != nil {
		return nil
	}
	return wa.Watchface
}
