// Package config loads training configurations from YAML and turns them
// into a wired network.Network.
//
// A file describes the training parameters and the topology, either as a
// named builder or as an explicit node list:
//
//	trials: 100
//	path_length: 10
//	reinforcement: 0.1
//	goal: 12
//	seed: 42
//	topology:
//	  kind: ladder
//	  n: 20
//
//	# or
//	nodes:
//	  - {id: 0, neighbors: [1, 2]}
//	  - {id: 1, neighbors: []}
//	  - {id: 2, neighbors: []}
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/walknet/network"
)

// Sentinel errors for configuration handling.
var (
	// ErrInvalidConfig is returned when a configuration fails validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownTopology is returned for an unrecognised topology kind.
	ErrUnknownTopology = errors.New("config: unknown topology kind")
)

// Topology kinds understood by Build.
const (
	KindWorkshop     = "workshop"
	KindLadder       = "ladder"
	KindPath         = "path"
	KindCycle        = "cycle"
	KindStar         = "star"
	KindComplete     = "complete"
	KindRandomSparse = "random_sparse"
)

// Kinds lists every topology kind in display order.
var Kinds = []string{KindWorkshop, KindLadder, KindPath, KindCycle, KindStar, KindComplete, KindRandomSparse}

// Config is the on-disk training description.
type Config struct {
	Trials        int     `yaml:"trials"`
	PathLength    int     `yaml:"path_length"`
	Reinforcement float64 `yaml:"reinforcement"`
	Start         int     `yaml:"start"`

	// Goal is optional; nil means no goal.
	Goal *int `yaml:"goal,omitempty"`

	// Seed drives both the walk sampler and random topologies.
	Seed int64 `yaml:"seed"`

	Topology *Topology `yaml:"topology,omitempty"`
	Nodes    []Node    `yaml:"nodes,omitempty"`
}

// Topology selects a builder constructor.
type Topology struct {
	Kind string  `yaml:"kind"`
	N    int     `yaml:"n,omitempty"`
	P    float64 `yaml:"p,omitempty"`
}

// Node is one explicit node declaration.
type Node struct {
	ID        int   `yaml:"id"`
	Neighbors []int `yaml:"neighbors"`
}

// Default returns the reference training parameters on the workshop graph.
func Default() *Config {
	return &Config{
		Trials:        network.DefaultTrials,
		PathLength:    network.DefaultPathLength,
		Reinforcement: network.DefaultReinforcement,
		Start:         network.DefaultStart,
		Seed:          1,
		Topology:      &Topology{Kind: KindWorkshop},
	}
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default() and validates the result. Unknown
// fields are rejected. The workshop topology applies only when the file
// names neither a topology nor a node list.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	cfg.Topology = nil

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if cfg.Topology == nil && len(cfg.Nodes) == 0 {
		cfg.Topology = &Topology{Kind: KindWorkshop}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks parameter ranges and that exactly one topology source is set.
func (c *Config) Validate() error {
	switch {
	case c.Trials < 0:
		return fmt.Errorf("%w: trials=%d < 0", ErrInvalidConfig, c.Trials)
	case c.PathLength < 0:
		return fmt.Errorf("%w: path_length=%d < 0", ErrInvalidConfig, c.PathLength)
	case c.Reinforcement < 0:
		return fmt.Errorf("%w: reinforcement=%g < 0", ErrInvalidConfig, c.Reinforcement)
	case c.Topology != nil && len(c.Nodes) > 0:
		return fmt.Errorf("%w: topology and nodes are mutually exclusive", ErrInvalidConfig)
	case c.Topology == nil && len(c.Nodes) == 0:
		return fmt.Errorf("%w: one of topology or nodes is required", ErrInvalidConfig)
	}

	if c.Topology != nil {
		known := false
		for _, k := range Kinds {
			if c.Topology.Kind == k {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("%w: %q", ErrUnknownTopology, c.Topology.Kind)
		}
	}

	seen := make(map[int]struct{}, len(c.Nodes))
	for _, n := range c.Nodes {
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("%w: node %d declared twice", ErrInvalidConfig, n.ID)
		}
		seen[n.ID] = struct{}{}
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
