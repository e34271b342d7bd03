package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// scrapeConfig mirrors the command flags so a curation run can be kept as
// a YAML file next to the assets and replayed later.
type scrapeConfig struct {
	Categories []string `yaml:"categories"`
	Include    []string `yaml:"include"`
	Exclude    []string `yaml:"exclude"`
	ExcludeExt []string `yaml:"exclude_ext"`
	Limit      int      `yaml:"limit"`
	Out        string   `yaml:"out"`
}

// defaultLimit applies when neither the config file nor the -limit flag
// sets one.
const defaultLimit = 50

// resolveConfig loads the optional YAML file and lets explicitly set
// flags override its fields. Zero-valued flags mean "not set".
func resolveConfig(path, category, out string, limit int, include, exclude, excludeExt string) (*scrapeConfig, error) {
	cfg := &scrapeConfig{Limit: defaultLimit}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if category != "" {
		cfg.Categories = splitList(category)
	}
	if out != "" {
		cfg.Out = out
	}
	if limit > 0 {
		cfg.Limit = limit
	}
	if include != "" {
		cfg.Include = splitList(include)
	}
	if exclude != "" {
		cfg.Exclude = splitList(exclude)
	}
	if excludeExt != "" {
		cfg.ExcludeExt = splitList(excludeExt)
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
