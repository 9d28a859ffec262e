package scenario

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed scenarios/*.yaml
var builtinFS embed.FS

// Registry holds scenarios by ID
type Registry struct {
	mu        sync.RWMutex
	scenarios map[string]Scenario
}

// NewRegistry creates an empty scenario registry
func NewRegistry() *Registry {
	return &Registry{
		scenarios: make(map[string]Scenario),
	}
}

// NewBuiltinRegistry returns a registry preloaded with the embedded scenarios
func NewBuiltinRegistry() (*Registry, error) {
	r := NewRegistry()
	entries, err := fs.Glob(builtinFS, "scenarios/*.yaml")
	if err != nil {
		return nil, err
	}
	for _, name := range entries {
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read builtin scenario %s: %w", name, err)
		}
		sc, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("builtin scenario %s: %w", path.Base(name), err)
		}
		if err := r.Register(sc); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Parse decodes and validates a YAML (or JSON) scenario definition
func Parse(data []byte) (Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := Validate(sc); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

// LoadFile reads a scenario definition from disk
func LoadFile(filename string) (Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to read scenario file %s: %w", filename, err)
	}
	return Parse(data)
}

// Validate checks the structural rules every scenario must satisfy
func Validate(sc Scenario) error {
	if sc.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidScenario)
	}
	if len(sc.Steps) == 0 {
		return fmt.Errorf("%w: %s has no steps", ErrInvalidScenario, sc.ID)
	}
	for i, step := range sc.Steps {
		if !knownActions[step.Action] {
			return fmt.Errorf("%w: step %d: %w: %q", ErrInvalidScenario, i, ErrInvalidAction, step.Action)
		}
		if requiresTarget[step.Action] && step.Target == "" {
			return fmt.Errorf("%w: step %d (%s): %w: target", ErrInvalidScenario, i, step.Action, ErrMissingParameter)
		}
		for j, a := range step.Assertions {
			if a.Path == "" {
				return fmt.Errorf("%w: step %d assertion %d: %w: path", ErrInvalidScenario, i, j, ErrMissingParameter)
			}
		}
	}
	return nil
}

var knownActions = map[ActionType]bool{
	ActionPlant: true, ActionHarvest: true, ActionIrrigate: true, ActionFill: true,
	ActionFeed: true, ActionAdvance: true, ActionMove: true, ActionWalkTo: true,
	ActionFace: true, ActionSelectSeed: true, ActionCycleSeed: true, ActionDistrict: true,
	ActionReset: true, ActionBuy: true, ActionSell: true, ActionSellAll: true,
}

var requiresTarget = map[ActionType]bool{
	ActionWalkTo:     true,
	ActionFace:       true,
	ActionSelectSeed: true,
	ActionBuy:        true,
	ActionSell:       true,
}

// Register adds a scenario, replacing any with the same ID
func (r *Registry) Register(sc Scenario) error {
	if err := Validate(sc); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scenarios[sc.ID] = sc
	return nil
}

// Get retrieves a scenario by ID
func (r *Registry) Get(id string) (Scenario, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sc, ok := r.scenarios[id]
	return sc, ok
}

// List returns all scenarios ordered by ID
func (r *Registry) List() []Scenario {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Scenario, 0, len(r.scenarios))
	for _, sc := range r.scenarios {
		out = append(out, sc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Summaries returns brief descriptions of all scenarios
func (r *Registry) Summaries() []ScenarioSummary {
	scenarios := r.List()
	out := make([]ScenarioSummary, 0, len(scenarios))
	for i := range scenarios {
		out = append(out, scenarios[i].ToSummary())
	}
	return out
}
