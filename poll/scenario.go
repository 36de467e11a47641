package poll

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a recorded sequence of observed samples, one per tick.
// Replaying the same samples always produces the same edge reports.
type Scenario struct {
	Name    string `json:"name" yaml:"name"`
	Samples []bool `json:"samples" yaml:"samples"`
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read %s: %w", path, err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	return sc, nil
}

// Save writes the scenario as YAML.
func (sc Scenario) Save(path string) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// Run replays the samples through a fresh Loop and returns the reports of
// the ticks that observed an edge.
func (sc Scenario) Run() []Edge {
	var loop Loop
	var edges []Edge
	for _, sample := range sc.Samples {
		if e := loop.Step(sample); !e.None() {
			edges = append(edges, e)
		}
	}
	return edges
}
