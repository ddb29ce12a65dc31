package app

import (
	"github.com/pkg/errors"

	"lifelab/internal/core"
	"lifelab/internal/pattern"
	"lifelab/internal/sim"
)

// NewSession builds the simulation context described by the config: rule
// preset or B/S notation, topology, dimensions, and the initial board
// content (a stamped built-in pattern, or a random fill).
func NewSession(cfg *Config) (*sim.Session, error) {
	rules, ok := core.LookupRule(cfg.Rule)
	if !ok {
		parsed, err := core.ParseRule(cfg.Rule)
		if err != nil {
			return nil, errors.Wrapf(err, "rule %q is neither a preset nor B/S notation", cfg.Rule)
		}
		rules = parsed
	}

	topo, err := core.ParseTopology(cfg.Topology)
	if err != nil {
		return nil, err
	}

	s := sim.New(sim.Options{
		Rows:     cfg.Rows,
		Cols:     cfg.Cols,
		Rules:    rules,
		Topology: topo,
		Density:  cfg.Density,
		Seed:     cfg.Seed,
	})

	if cfg.Pattern != "" {
		p, ok := pattern.Lookup(cfg.Pattern)
		if !ok {
			return nil, errors.Errorf("unknown pattern %q (have %v)", cfg.Pattern, pattern.Names())
		}
		s.Stamp(p.Offsets)
	} else {
		s.Randomize()
	}
	return s, nil
}
