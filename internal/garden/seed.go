package garden

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Plants []Entry `yaml:"plants"`
}

// Seed returns the built-in demonstration inventory entries, parsed from
// the embedded seed document in declaration order.
func Seed() ([]Entry, error) {
	var sf seedFile
	if err := yaml.Unmarshal(seedYAML, &sf); err != nil {
		return nil, fmt.Errorf("parse garden seed: %w", err)
	}
	return sf.Plants, nil
}
