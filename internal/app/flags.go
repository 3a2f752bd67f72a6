package app

import (
	"flag"
	"strings"

	"cellscape/internal/params"
	"cellscape/internal/scenario"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one assignment.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters shared by the CLI and the
// viewer.
type Config struct {
	Scenario  string
	Params    string
	Overrides KVList
	Seed      int64
	LogLevel  string
	LogFormat string
	Scale     int
	TPS       int
	PassRate  int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scenario: "chemotaxis", Seed: -1, LogLevel: "info", LogFormat: "text", Scale: 1, TPS: 30, PassRate: 10}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "scenario to run ("+strings.Join(scenario.Names(), ", ")+")")
	fs.StringVar(&c.Params, "params", c.Params, "optional TOML file of named parameters")
	fs.Var(&c.Overrides, "set", "parameter override in key=value form (repeatable)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed; negative keeps random_seed from parameters")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per micron in the viewer")
	fs.IntVar(&c.TPS, "tps", c.TPS, "viewer ticks per second")
	fs.IntVar(&c.PassRate, "pass-rate", c.PassRate, "viewer confinement passes per second while running; 0 runs one per tick")
}

// Resolve layers the scenario defaults, the parameter file, the overrides
// and the seed flag, in that order.
func (c *Config) Resolve(s scenario.Scenario) (*params.Set, error) {
	p := s.DefaultParams()
	if c.Params != "" {
		file, err := params.LoadFile(c.Params)
		if err != nil {
			return nil, err
		}
		p.Merge(file)
	}
	for _, kv := range c.Overrides {
		if err := p.Override(kv); err != nil {
			return nil, err
		}
	}
	if c.Seed >= 0 {
		p.SetInt("random_seed", int(c.Seed))
	}
	return p, nil
}
