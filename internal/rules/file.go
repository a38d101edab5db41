package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tableFile is the on-disk shape of a rule table. Rules are a YAML
// sequence, never a map: mapping keys would lose declaration order.
type tableFile struct {
	Rules []Rule `yaml:"rules"`
}

// Load reads a rule table from a YAML file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}
	t, err := NewTable(f.Rules)
	if err != nil {
		return nil, fmt.Errorf("validating rules: %w", err)
	}
	return t, nil
}

// Save writes a rule table to a YAML file.
func Save(path string, t *Table) error {
	data, err := yaml.Marshal(tableFile{Rules: t.Rules()})
	if err != nil {
		return fmt.Errorf("marshaling rules: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}
	return nil
}
