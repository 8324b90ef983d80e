package frozen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML document (JSON is accepted as a YAML subset) and wraps it.
// An empty document yields a nil scalar.
func Parse(data []byte) (Value, error) {
	var decoded any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return Wrap(decoded), nil
}

// Load reads and parses the file at path.
func Load(path string) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, fmt.Errorf("frozen: read %s: %w", path, err)
	}
	v, err := Parse(data)
	if err != nil {
		return Value{}, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}
