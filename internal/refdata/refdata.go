// Package refdata holds the static tables the bot answers from: the glossary,
// learning resources, sector leaders, the investment roadmap and the feature
// manual. Tables are parsed once and never modified afterwards.
package refdata

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"MarketAsk/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed refdata.yaml
var embedded []byte

// Resource levels.
const (
	LevelBeginners    = "beginners"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Term is one glossary entry. Term is stored lower-case.
type Term struct {
	Term       string `yaml:"term"`
	Definition string `yaml:"definition"`
}

// Sector groups the leading tickers of one industry. Name is stored lower-case.
type Sector struct {
	Name    string   `yaml:"name"`
	Tickers []string `yaml:"tickers"`
}

// Step is one investment roadmap step.
type Step struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Feature is one entry of the user manual.
type Feature struct {
	Name        string       `yaml:"name"`
	Icon        string       `yaml:"icon"`
	Intent      model.Intent `yaml:"intent"`
	Description string       `yaml:"description"`
	Examples    []string     `yaml:"examples"`
}

type tables struct {
	Glossary  []Term              `yaml:"glossary"`
	Resources map[string][]string `yaml:"resources"`
	Sectors   []Sector            `yaml:"sectors"`
	Roadmap   []Step              `yaml:"roadmap"`
	Features  []Feature           `yaml:"features"`
}

// Store is the read-only reference data. Accessors return copies.
type Store struct {
	t tables
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// Default returns the process-wide store parsed from the embedded tables.
// It panics if the embedded file is invalid, which the package tests rule out.
func Default() *Store {
	defaultOnce.Do(func() {
		s, err := Load(embedded)
		if err != nil {
			panic(fmt.Sprintf("refdata: embedded tables: %v", err))
		}
		defaultStore = s
	})
	return defaultStore
}

// Load parses and validates reference tables from YAML.
func Load(data []byte) (*Store, error) {
	var t tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse refdata: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &Store{t: t}, nil
}

func (t *tables) validate() error {
	for i, g := range t.Glossary {
		if g.Term == "" || g.Definition == "" {
			return fmt.Errorf("glossary[%d]: term and definition are required", i)
		}
		if g.Term != strings.ToLower(g.Term) {
			return fmt.Errorf("glossary[%d]: term %q must be lower-case", i, g.Term)
		}
	}
	for _, level := range []string{LevelBeginners, LevelIntermediate, LevelAdvanced} {
		if len(t.Resources[level]) == 0 {
			return fmt.Errorf("resources: level %q is empty", level)
		}
	}
	for i, s := range t.Sectors {
		if s.Name == "" || s.Name != strings.ToLower(s.Name) {
			return fmt.Errorf("sectors[%d]: name %q must be non-empty lower-case", i, s.Name)
		}
		if len(s.Tickers) == 0 {
			return fmt.Errorf("sectors[%d]: %s has no tickers", i, s.Name)
		}
	}
	for i, f := range t.Features {
		switch f.Intent {
		case model.IntentStockPrice, model.IntentChart, model.IntentCompare, model.IntentFinancialTerms,
			model.IntentPrediction, model.IntentTopCompanies, model.IntentLearningResources, model.IntentInvestmentRoadmap:
		default:
			return fmt.Errorf("features[%d]: %s has unknown intent %q", i, f.Name, f.Intent)
		}
	}
	return nil
}

// FindTerm returns the first glossary term contained in lower.
func (s *Store) FindTerm(lower string) (Term, bool) {
	for _, g := range s.t.Glossary {
		if strings.Contains(lower, g.Term) {
			return g, true
		}
	}
	return Term{}, false
}

// Glossary returns every term in declared order.
func (s *Store) Glossary() []Term {
	return append([]Term(nil), s.t.Glossary...)
}

// Resources returns the resources for a level, nil for an unknown level.
func (s *Store) Resources(level string) []string {
	return append([]string(nil), s.t.Resources[level]...)
}

// FindSector returns the first sector whose name is contained in lower.
func (s *Store) FindSector(lower string) (Sector, bool) {
	for _, sec := range s.t.Sectors {
		if strings.Contains(lower, sec.Name) {
			return copySector(sec), true
		}
	}
	return Sector{}, false
}

// Sectors returns every sector in declared order.
func (s *Store) Sectors() []Sector {
	out := make([]Sector, len(s.t.Sectors))
	for i, sec := range s.t.Sectors {
		out[i] = copySector(sec)
	}
	return out
}

// Roadmap returns the roadmap steps in order.
func (s *Store) Roadmap() []Step {
	return append([]Step(nil), s.t.Roadmap...)
}

// Features returns the manual entries in order.
func (s *Store) Features() []Feature {
	out := make([]Feature, len(s.t.Features))
	for i, f := range s.t.Features {
		f.Examples = append([]string(nil), f.Examples...)
		out[i] = f
	}
	return out
}

// Examples returns every example query of the manual in order.
func (s *Store) Examples() []string {
	var out []string
	for _, f := range s.t.Features {
		out = append(out, f.Examples...)
	}
	return out
}

func copySector(s Sector) Sector {
	s.Tickers = append([]string(nil), s.Tickers...)
	return s
}
