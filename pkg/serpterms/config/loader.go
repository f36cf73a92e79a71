package config

import (
	"fmt"

	"github.com/cognicore/serpterms/pkg/serpterms/stoplist"
)

// Loader loads all configuration files and constructs components
type Loader struct {
	PolicyPath   string
	StoplistPath string
}

// Components holds all loaded configuration components
type Components struct {
	Policy   Policy
	Stoplist *stoplist.Manager
}

// Load reads all configuration files and returns initialized components.
// Empty paths fall back to the default policy and the German stoplist.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{Policy: DefaultPolicy()}

	if l.PolicyPath != "" {
		p, err := LoadPolicy(l.PolicyPath)
		if err != nil {
			return nil, fmt.Errorf("load policy: %w", err)
		}
		comp.Policy = p
	}

	if l.StoplistPath != "" {
		sl, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Stoplist = stoplist.NewManager(sl.Terms)
	} else {
		comp.Stoplist = stoplist.NewGerman()
	}

	return comp, nil
}
