package ingest

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultFallback = "Other"

var ErrNoCategories = errors.New("ingest: rules define no categories")

//go:embed rules.yaml
var defaultRules []byte

// CategoryRule maps a category to the keywords that select it.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

type RuleSet struct {
	Fallback   string         `yaml:"fallback"`
	Categories []CategoryRule `yaml:"categories"`
}

// Categorizer assigns the first category whose keyword occurs in a title,
// matching case-insensitively in rule order.
type Categorizer struct {
	rules    []CategoryRule
	fallback string
}

func NewCategorizer(rs RuleSet) (*Categorizer, error) {
	if len(rs.Categories) == 0 {
		return nil, ErrNoCategories
	}
	c := &Categorizer{fallback: rs.Fallback}
	if c.fallback == "" {
		c.fallback = DefaultFallback
	}
	for i, r := range rs.Categories {
		if strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("ingest: category %d has no name", i)
		}
		kw := make([]string, 0, len(r.Keywords))
		for _, k := range r.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				kw = append(kw, k)
			}
		}
		c.rules = append(c.rules, CategoryRule{Name: r.Name, Keywords: kw})
	}
	return c, nil
}

func ParseRules(data []byte) (RuleSet, error) {
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return RuleSet{}, fmt.Errorf("ingest: parse rules: %w", err)
	}
	return rs, nil
}

// DefaultRules returns the built-in keyword table.
func DefaultRules() RuleSet {
	rs, err := ParseRules(defaultRules)
	if err != nil {
		panic(err)
	}
	return rs
}

func DefaultCategorizer() *Categorizer {
	c, err := NewCategorizer(DefaultRules())
	if err != nil {
		panic(err)
	}
	return c
}

// LoadRules reads a rule table from a YAML file. An empty path yields the defaults.
func LoadRules(path string) (*Categorizer, error) {
	if path == "" {
		return DefaultCategorizer(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: read rules %s: %w", path, err)
	}
	rs, err := ParseRules(data)
	if err != nil {
		return nil, err
	}
	return NewCategorizer(rs)
}

func (c *Categorizer) Categorize(title string) string {
	t := strings.ToLower(title)
	for _, r := range c.rules {
		for _, k := range r.Keywords {
			if strings.Contains(t, k) {
				return r.Name
			}
		}
	}
	return c.fallback
}
