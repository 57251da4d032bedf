package dictionary

import (
	"gopkg.in/yaml.v3"
)

// yamlFormat parses YAML dictionaries. Nested mappings become nesting
// levels directly.
type yamlFormat struct{}

func (yamlFormat) Name() string { return "yaml" }

func (yamlFormat) Parse(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return normalize(raw)
}
