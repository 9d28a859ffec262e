package scenario

// ActionType names the controller operation a step performs
type ActionType string

const (
	// Budgeted actions
	ActionPlant    ActionType = "plant"
	ActionHarvest  ActionType = "harvest"
	ActionIrrigate ActionType = "irrigate"
	ActionFill     ActionType = "fill"
	ActionFeed     ActionType = "feed"
	ActionAdvance  ActionType = "advance"

	// Free intents
	ActionMove       ActionType = "move"
	ActionWalkTo     ActionType = "walk_to"
	ActionFace       ActionType = "face"
	ActionSelectSeed ActionType = "select_seed"
	ActionCycleSeed  ActionType = "cycle_seed"
	ActionDistrict   ActionType = "district"
	ActionReset      ActionType = "reset"

	// Shop
	ActionBuy     ActionType = "buy"
	ActionSell    ActionType = "sell"
	ActionSellAll ActionType = "sell_all"
)

// Walk targets besides plot ids
const (
	TargetRiver = "river"
	TargetHen   = "hen"
)

// AssertionType defines the type of assertion
type AssertionType string

const (
	AssertEquals        AssertionType = "equals"
	AssertGreaterThan   AssertionType = "greater_than"
	AssertLessThan      AssertionType = "less_than"
	AssertContains      AssertionType = "contains"
	AssertNotEmpty      AssertionType = "not_empty"
	AssertEmpty         AssertionType = "empty"
	AssertTrue          AssertionType = "true"
	AssertFalse         AssertionType = "false"
	AssertBetween       AssertionType = "between"
	AssertErrorContains AssertionType = "error_contains"
)

// Scenario is a scripted play session replayed against a fresh game
type Scenario struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Seed        int64  `json:"seed" yaml:"seed"`
	Steps       []Step `json:"steps" yaml:"steps"`
}

// Step is a single operation plus the checks made after it.
// Target is the plot, item, seed, district, facing or walk target the action needs.
type Step struct {
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Action      ActionType  `json:"action" yaml:"action"`
	Target      string      `json:"target,omitempty" yaml:"target,omitempty"`
	DX          float64     `json:"dx,omitempty" yaml:"dx,omitempty"`
	DY          float64     `json:"dy,omitempty" yaml:"dy,omitempty"`
	DT          float64     `json:"dt,omitempty" yaml:"dt,omitempty"`
	Repeat      int         `json:"repeat,omitempty" yaml:"repeat,omitempty"`
	Assertions  []Assertion `json:"assertions,omitempty" yaml:"assertions,omitempty"`
}

// Times returns how often the action runs; zero means once
func (s Step) Times() int {
	if s.Repeat < 1 {
		return 1
	}
	return s.Repeat
}

// Assertion defines an expected outcome for a step.
// Paths start at "result" (the last operation outcome) or "snapshot".
type Assertion struct {
	Type   AssertionType `json:"type" yaml:"type"`
	Path   string        `json:"path" yaml:"path"`
	Value  interface{}   `json:"value,omitempty" yaml:"value,omitempty"`
	Min    interface{}   `json:"min,omitempty" yaml:"min,omitempty"`
	Max    interface{}   `json:"max,omitempty" yaml:"max,omitempty"`
	Reason string        `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// ScenarioSummary provides a brief overview of a scenario for listing
type ScenarioSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Seed        int64  `json:"seed"`
	StepCount   int    `json:"step_count"`
}

// ToSummary converts a Scenario to a ScenarioSummary
func (s *Scenario) ToSummary() ScenarioSummary {
	return ScenarioSummary{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Seed:        s.Seed,
		StepCount:   len(s.Steps),
	}
}
