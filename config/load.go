package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the on-disk YAML shape: a single file with top-level
// env and reward sections.
type document struct {
	Env    Env    `yaml:"env"`
	Reward Reward `yaml:"reward"`
}

// Load reads and parses path, returning the environment and reward
// configuration. Missing sections fall back to DefaultEnv/
// DefaultReward field-by-field, since yaml.Unmarshal only overwrites
// fields present in the document.
func Load(path string) (*Env, *Reward, error) {
	doc := document{Env: DefaultEnv(), Reward: DefaultReward()}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("config: Load: %w", err)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("config: Load: %w", err)
	}
	if err := doc.Env.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config: Load: %w", err)
	}
	return &doc.Env, &doc.Reward, nil
}
