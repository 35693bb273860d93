package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	m "namespacer.dev/pkg/namespacer/internal/model"
)

// ManifestAdapter encapsulates package-manifest parsing so the domain layer can
// validate the export map without knowing the manifest encoding.
type ManifestAdapter interface {
	// ExportKeys returns the keys of the manifest's "exports" object in sorted
	// order. A manifest without an exports object yields no keys.
	ExportKeys(path m.Path) ([]string, error)
}

// PackageJSONAdapter reads npm package.json manifests.
type PackageJSONAdapter struct {
	fs SourceFSAdapter
}

// NewPackageJSONAdapter constructs a PackageJSONAdapter reading through fs.
func NewPackageJSONAdapter(fs SourceFSAdapter) *PackageJSONAdapter {
	return &PackageJSONAdapter{fs: fs}
}

// ExportKeys implements ManifestAdapter.
func (a *PackageJSONAdapter) ExportKeys(path m.Path) ([]string, error) {
	data, err := a.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var manifest struct {
		Exports json.RawMessage `json:"exports"`
	}

	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}

	trimmed := bytes.TrimSpace(manifest.Exports)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, nil
	}

	var exports map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &exports); err != nil {
		return nil, fmt.Errorf("decode exports of %s: %w", path, err)
	}

	keys := make([]string, 0, len(exports))
	for key := range exports {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys, nil
}
