package poem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a poem collection.
type File struct {
	Poems []Record `yaml:"poems" json:"poems"`
}

// LoadFile reads poems from a YAML or JSON file. The format is chosen by the
// file extension; anything other than .json is treated as YAML.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading poem file: %w", err)
	}

	poems, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return poems, nil
}

// Parse decodes a poem collection. Both a `poems:` list and a single bare
// record are accepted.
func Parse(data []byte, ext string) ([]Record, error) {
	unmarshal := yaml.Unmarshal
	if strings.EqualFold(ext, ".json") {
		unmarshal = json.Unmarshal
	}

	var file File
	if err := unmarshal(data, &file); err == nil && len(file.Poems) > 0 {
		return file.Poems, nil
	}

	var single Record
	if err := unmarshal(data, &single); err != nil {
		return nil, err
	}
	if single.Title == "" && single.Content == "" {
		return nil, fmt.Errorf("no poems found")
	}
	return []Record{single}, nil
}

// SaveFile writes poems as a YAML collection.
func SaveFile(path string, poems []Record) error {
	out, err := yaml.Marshal(&File{Poems: poems})
	if err != nil {
		return fmt.Errorf("marshaling poems: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing poem file: %w", err)
	}
	return nil
}
