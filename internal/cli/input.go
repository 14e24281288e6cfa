package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// decodeFile reads a YAML or JSON document into out. JSON is accepted
// because it is a subset of YAML.
func decodeFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
