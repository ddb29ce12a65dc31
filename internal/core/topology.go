package core

import "github.com/pkg/errors"

// Topology selects how neighbor coordinates behave at the grid edges.
type Topology uint8

const (
	// Wrap treats the grid as a torus: out-of-range neighbor coordinates
	// wrap via modulo to the opposite edge.
	Wrap Topology = iota
	// Bounded excludes out-of-range neighbors from the count entirely;
	// edge cells simply have smaller neighborhoods.
	Bounded
)

// String returns the topology identifier.
func (t Topology) String() string {
	if t == Bounded {
		return "bounded"
	}
	return "wrap"
}

// ParseTopology maps a config string onto a Topology.
func ParseTopology(s string) (Topology, error) {
	switch s {
	case "wrap", "torus":
		return Wrap, nil
	case "bounded", "plane":
		return Bounded, nil
	}
	return Wrap, errors.Errorf("topology %q: want wrap or bounded", s)
}
