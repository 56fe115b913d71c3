// Package conf reads the YAML model configuration shared by the tagging
// commands.
package conf

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

const (
	DEFAULT_RARE_TOKEN     = "_RARE_"
	DEFAULT_RARE_THRESHOLD = 5
)

type Rare struct {
	Threshold float64 `yaml:"threshold"`
	Token     string  `yaml:"replacement"`
}

type Conf struct {
	Tags    []string `yaml:"tags"`
	Rare    Rare     `yaml:"rare"`
	Workers int      `yaml:"workers"`
}

// Default is the configuration used when no file is given.
func Default() *Conf {
	return &Conf{
		Rare: Rare{
			Threshold: DEFAULT_RARE_THRESHOLD,
			Token:     DEFAULT_RARE_TOKEN,
		},
	}
}

func Read(reader io.Reader) (*Conf, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse conf: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func ReadFile(filename string) (*Conf, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}

// SetTags replaces the configured tags with a comma separated list.
// An empty list leaves the configuration untouched.
func (c *Conf) SetTags(list string) {
	if len(strings.TrimSpace(list)) == 0 {
		return
	}
	fields := strings.Split(list, ",")
	tags := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); len(f) > 0 {
			tags = append(tags, f)
		}
	}
	c.Tags = tags
}

func (c *Conf) Validate() error {
	if c.Rare.Threshold < 0 {
		return fmt.Errorf("rare threshold must be non-negative, got %v", c.Rare.Threshold)
	}
	if len(c.Rare.Token) == 0 {
		return fmt.Errorf("rare replacement token must not be empty")
	}
	if strings.ContainsAny(c.Rare.Token, " \t") {
		return fmt.Errorf("rare replacement token %q contains whitespace", c.Rare.Token)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	seen := make(map[string]bool, len(c.Tags))
	for _, tag := range c.Tags {
		if seen[tag] {
			return fmt.Errorf("duplicate tag %q", tag)
		}
		seen[tag] = true
	}
	return nil
}
