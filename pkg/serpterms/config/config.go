package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/serpterms/pkg/serpterms/ingest"
	"github.com/cognicore/serpterms/pkg/serpterms/internalerr"
	"github.com/cognicore/serpterms/pkg/serpterms/prompt"
	"github.com/cognicore/serpterms/pkg/serpterms/questions"
	"github.com/cognicore/serpterms/pkg/serpterms/rank"
	"github.com/cognicore/serpterms/pkg/serpterms/tiers"
)

// Weights mirrors rank.Weights in YAML form.
type Weights struct {
	Frequency float64 `yaml:"frequency"`
	Title     float64 `yaml:"title"`
	Snippet   float64 `yaml:"snippet"`
}

// Policy holds every threshold, cap and weight of the analysis.
type Policy struct {
	Letters        string  `yaml:"letters"`
	MinTokenLength int     `yaml:"min_token_length"`
	Weights        Weights `yaml:"weights"`
	MaxTerms       int     `yaml:"max_terms"`

	MustHaveRatio   float64 `yaml:"must_have_ratio"`
	ShouldHaveRatio float64 `yaml:"should_have_ratio"`
	TierCap         int     `yaml:"tier_cap"`

	HeadingCap    int `yaml:"heading_cap"`
	QuestionCap   int `yaml:"question_cap"`
	TermDetailCap int `yaml:"term_detail_cap"`
	PromptListCap int `yaml:"prompt_list_cap"`
}

// DefaultPolicy returns the stock German policy.
func DefaultPolicy() Policy {
	w := rank.DefaultWeights()
	return Policy{
		Letters:         ingest.DefaultLetters,
		MinTokenLength:  ingest.DefaultMinTokenLength,
		Weights:         Weights{Frequency: w.Frequency, Title: w.Title, Snippet: w.Snippet},
		MaxTerms:        rank.DefaultLimit,
		MustHaveRatio:   tiers.DefaultMustHaveRatio,
		ShouldHaveRatio: tiers.DefaultShouldHaveRatio,
		TierCap:         tiers.DefaultCap,
		HeadingCap:      5,
		QuestionCap:     questions.DefaultCap,
		TermDetailCap:   15,
		PromptListCap:   prompt.DefaultListCap,
	}
}

// Validate checks the policy for values the engine cannot work with.
func (p Policy) Validate() error {
	if p.MinTokenLength < 1 {
		return fmt.Errorf("%w: min_token_length must be at least 1, got %d", internalerr.ErrInvalidConfig, p.MinTokenLength)
	}
	if p.Weights.Frequency < 0 || p.Weights.Title < 0 || p.Weights.Snippet < 0 {
		return fmt.Errorf("%w: weights must not be negative", internalerr.ErrInvalidConfig)
	}
	if p.MustHaveRatio <= 0 || p.MustHaveRatio > 1 {
		return fmt.Errorf("%w: must_have_ratio must be in (0,1], got %v", internalerr.ErrInvalidConfig, p.MustHaveRatio)
	}
	if p.ShouldHaveRatio <= 0 || p.ShouldHaveRatio >= p.MustHaveRatio {
		return fmt.Errorf("%w: should_have_ratio must be in (0,must_have_ratio), got %v", internalerr.ErrInvalidConfig, p.ShouldHaveRatio)
	}
	caps := []struct {
		name string
		v    int
	}{
		{"max_terms", p.MaxTerms},
		{"tier_cap", p.TierCap},
		{"heading_cap", p.HeadingCap},
		{"question_cap", p.QuestionCap},
		{"term_detail_cap", p.TermDetailCap},
		{"prompt_list_cap", p.PromptListCap},
	}
	for _, c := range caps {
		if c.v < 1 {
			return fmt.Errorf("%w: %s must be at least 1, got %d", internalerr.ErrInvalidConfig, c.name, c.v)
		}
	}
	return nil
}

// LoadPolicy reads a YAML policy. Keys missing from the file keep their
// default values.
func LoadPolicy(path string) (Policy, error) {
	p := DefaultPolicy()

	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}

	return &sl, nil
}
