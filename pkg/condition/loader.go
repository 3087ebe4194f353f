package condition

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// conditionFile is the on-disk YAML shape consumed by the authoring
// CLI and tests. Production renders receive condition rows already
// fetched by the dispatch service; this loader exists for tooling.
type conditionFile struct {
	Conditions []Condition `yaml:"conditions"`
}

// LoadFile reads a YAML condition list. Rows that omit an id are
// assigned a generated UUID so downstream tooling can reference them.
func LoadFile(path string) ([]Condition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read conditions file: %w", err)
	}
	return LoadBytes(data)
}

// LoadBytes parses a YAML condition list from memory.
func LoadBytes(data []byte) ([]Condition, error) {
	// Accept both the keyed form ("conditions:") and a bare top-level
	// list.
	var file conditionFile
	keyedErr := yaml.Unmarshal(data, &file)
	if keyedErr != nil || file.Conditions == nil {
		var list []Condition
		if err := yaml.Unmarshal(data, &list); err == nil {
			file.Conditions = list
		} else if keyedErr != nil {
			return nil, fmt.Errorf("parse conditions: %w", keyedErr)
		}
	}

	for i := range file.Conditions {
		if file.Conditions[i].ID == "" {
			file.Conditions[i].ID = uuid.New().String()
		}
	}

	return file.Conditions, nil
}
