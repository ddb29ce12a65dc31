package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"
)

// Config represents the startup parameters for the simulator.
type Config struct {
	Rows     int     `json:"rows"`
	Cols     int     `json:"cols"`
	Scale    int     `json:"scale"`
	TPS      int     `json:"tps"`
	Seed     int64   `json:"seed"`
	Density  float64 `json:"density"`
	Rule     string  `json:"rule"`
	Topology string  `json:"topology"`
	Pattern  string  `json:"pattern"`

	File string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:     120,
		Cols:     160,
		Scale:    4,
		TPS:      10,
		Seed:     42,
		Density:  0.25,
		Rule:     "conway",
		Topology: "wrap",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random fill")
	fs.Float64Var(&c.Density, "density", c.Density, "random fill density in [0,1]")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule preset name or B/S notation, e.g. B3/S23")
	fs.StringVar(&c.Topology, "topology", c.Topology, "edge behavior: wrap or bounded")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern to stamp instead of a random fill")
	fs.StringVar(&c.File, "config", c.File, "optional JSON config file")
}

// Resolve loads the optional JSON config file and then re-asserts every
// flag the user set explicitly, so precedence is flags > file > defaults.
// Call after fs has been parsed.
func (c *Config) Resolve(fs *flag.FlagSet) error {
	if c.File == "" {
		return nil
	}
	fromFlags := *c
	data, err := os.ReadFile(c.File)
	if err != nil {
		return errors.Wrapf(err, "read config %s", c.File)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %s", c.File)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			c.Rows = fromFlags.Rows
		case "cols":
			c.Cols = fromFlags.Cols
		case "scale":
			c.Scale = fromFlags.Scale
		case "tps":
			c.TPS = fromFlags.TPS
		case "seed":
			c.Seed = fromFlags.Seed
		case "density":
			c.Density = fromFlags.Density
		case "rule":
			c.Rule = fromFlags.Rule
		case "topology":
			c.Topology = fromFlags.Topology
		case "pattern":
			c.Pattern = fromFlags.Pattern
		}
	})
	return nil
}
