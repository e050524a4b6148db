// Package scenario loads demo scenarios for the hexwalk tool from YAML.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danneu/hexgrid/hex"
)

// Coord is the YAML form of an axial point.
type Coord struct {
	Q int `yaml:"q"`
	R int `yaml:"r"`
}

// Point converts the YAML coordinate to a hex.Point.
func (c Coord) Point() hex.Point { return hex.Point{Q: c.Q, R: c.R} }

// Terrain controls the noise-derived movement costs used by the demo.
type Terrain struct {
	Seed            int64   `yaml:"seed"`
	Frequency       float64 `yaml:"frequency"`
	ImpassableAbove float64 `yaml:"impassable_above"` // noise above this is a wall
}

// Scenario describes one demo run: the grid, the endpoints, and the
// obstacle layout.
type Scenario struct {
	Radius    int     `yaml:"radius"`
	Start     Coord   `yaml:"start"`
	Goal      Coord   `yaml:"goal"`
	MaxSteps  int     `yaml:"max_steps"`
	Obstacles []Coord `yaml:"obstacles"`
	Terrain   Terrain `yaml:"terrain"`
}

// Load reads a scenario from a YAML file, applies defaults, and validates.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}
	sc.applyDefaults()
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Default returns the scenario used when no file is given.
func Default() *Scenario {
	sc := &Scenario{
		Radius: 6,
		Start:  Coord{Q: -4, R: 2},
		Goal:   Coord{Q: 4, R: -1},
		Obstacles: []Coord{
			{Q: 0, R: 0}, {Q: 0, R: 1}, {Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 2, R: -2},
		},
		Terrain: Terrain{Seed: 7},
	}
	sc.applyDefaults()
	return sc
}

func (sc *Scenario) applyDefaults() {
	if sc.Radius == 0 {
		sc.Radius = 6
	}
	if sc.MaxSteps == 0 {
		sc.MaxSteps = 2 * sc.Radius
	}
	if sc.Terrain.Frequency == 0 {
		sc.Terrain.Frequency = 0.35
	}
	if sc.Terrain.ImpassableAbove == 0 {
		sc.Terrain.ImpassableAbove = 0.8
	}
}

func (sc *Scenario) validate() error {
	if sc.Radius < 0 {
		return fmt.Errorf("radius must be non-negative, got %d", sc.Radius)
	}
	if d := hex.Distance(hex.Point{}, sc.Start.Point()); d > sc.Radius {
		return fmt.Errorf("start (%d,%d) is outside the radius-%d grid", sc.Start.Q, sc.Start.R, sc.Radius)
	}
	if d := hex.Distance(hex.Point{}, sc.Goal.Point()); d > sc.Radius {
		return fmt.Errorf("goal (%d,%d) is outside the radius-%d grid", sc.Goal.Q, sc.Goal.R, sc.Radius)
	}
	return nil
}

// ObstacleSet collects the scenario's explicit obstacles into a hex.Set.
func (sc *Scenario) ObstacleSet() hex.Set {
	s := make(hex.Set, len(sc.Obstacles))
	for _, c := range sc.Obstacles {
		s.Add(c.Point())
	}
	return s
}
