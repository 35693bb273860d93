package adapter

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	m "namespacer.dev/pkg/namespacer/internal/model"
)

// SymbolMapStore persists the symbol map artifact shared by generate-map and
// rewrite. Save replaces the artifact wholesale; there is no incremental update.
type SymbolMapStore interface {
	SaveSymbolMap(path m.Path, symbols m.SymbolMap) error
	LoadSymbolMap(path m.Path) (m.SymbolMap, error)
}

// FileSymbolMapStore stores the symbol map as JSON, as YAML when the artifact
// path ends in .yaml or .yml, or as TOML for .toml. Every encoding sorts keys
// so the file diffs cleanly between regenerations.
type FileSymbolMapStore struct {
	fs SourceFSAdapter
}

// NewFileSymbolMapStore constructs a FileSymbolMapStore writing through fs.
func NewFileSymbolMapStore(fs SourceFSAdapter) *FileSymbolMapStore {
	return &FileSymbolMapStore{fs: fs}
}

// SaveSymbolMap encodes symbols and writes them atomically to path.
func (s *FileSymbolMapStore) SaveSymbolMap(path m.Path, symbols m.SymbolMap) error {
	if symbols == nil {
		symbols = m.SymbolMap{}
	}

	var (
		data []byte
		err  error
	)

	switch formatOf(path) {
	case formatYAML:
		data, err = yaml.Marshal(map[string]string(symbols))
	case formatTOML:
		data, err = toml.Marshal(map[string]string(symbols))
	default:
		data, err = json.MarshalIndent(map[string]string(symbols), "", "  ")
		data = append(data, '\n')
	}

	if err != nil {
		return fmt.Errorf("encode symbol map: %w", err)
	}

	if err := s.fs.WriteFile(path, data); err != nil {
		return fmt.Errorf("write symbol map %s: %w", path, err)
	}

	return nil
}

// LoadSymbolMap reads and decodes the artifact at path. A missing file is
// returned as an error wrapping fs.ErrNotExist.
func (s *FileSymbolMapStore) LoadSymbolMap(path m.Path) (m.SymbolMap, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	symbols := map[string]string{}

	switch formatOf(path) {
	case formatYAML:
		err = yaml.Unmarshal(data, &symbols)
	case formatTOML:
		err = toml.Unmarshal(data, &symbols)
	default:
		err = json.Unmarshal(data, &symbols)
	}

	if err != nil {
		return nil, fmt.Errorf("decode symbol map %s: %w", path, err)
	}

	return m.SymbolMap(symbols), nil
}

type symbolMapFormat int

const (
	formatJSON symbolMapFormat = iota
	formatYAML
	formatTOML
)

func formatOf(path m.Path) symbolMapFormat {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		return formatYAML
	case ".toml":
		return formatTOML
	default:
		return formatJSON
	}
}
