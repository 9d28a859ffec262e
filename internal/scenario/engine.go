package scenario

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/osse101/Farmstead_Go/internal/catalog"
	"github.com/osse101/Farmstead_Go/internal/domain"
	"github.com/osse101/Farmstead_Go/internal/game"
	"github.com/osse101/Farmstead_Go/internal/logger"
	"github.com/osse101/Farmstead_Go/internal/weather"
)

// maxWalkMoves bounds a walk_to step; the scene diagonal fits in well under this
const maxWalkMoves = 20

// Runner is the part of the game controller a scenario drives
type Runner interface {
	Snapshot() *domain.Snapshot

	Plant(ctx context.Context, plotID string) game.Result
	Harvest(ctx context.Context, plotID string) game.Result
	Irrigate(ctx context.Context, plotID string) game.Result
	FillFromRiver(ctx context.Context) game.Result
	Feed(ctx context.Context, targetID string) game.Result
	AdvanceTurn(ctx context.Context) game.Result

	Move(ctx context.Context, dx, dy, dt float64) game.Result
	Face(ctx context.Context, dir domain.Facing) game.Result
	SelectSeed(ctx context.Context, seedID string) game.Result
	CycleSeed(ctx context.Context) game.Result
	SelectDistrict(ctx context.Context, name string) game.Result
	Reset(ctx context.Context) game.Result

	Buy(ctx context.Context, itemID string) game.Result
	Sell(ctx context.Context, itemID string) game.Result
	SellAll(ctx context.Context) game.Result
}

var _ Runner = (*game.Controller)(nil)

// Factory builds a fresh game for a scenario seed
type Factory func(seed int64) (Runner, error)

// ControllerFactory returns a Factory backed by the real game controller
func ControllerFactory(c *catalog.Catalog) Factory {
	return func(seed int64) (Runner, error) {
		return game.NewController(c, weather.NewSeededGenerator(seed))
	}
}

// Engine executes scenarios against fresh games
type Engine struct {
	registry *Registry
	factory  Factory
}

// NewEngine creates a new scenario execution engine
func NewEngine(registry *Registry, factory Factory) *Engine {
	return &Engine{
		registry: registry,
		factory:  factory,
	}
}

// Execute runs a registered scenario by ID
func (e *Engine) Execute(ctx context.Context, scenarioID string) (*ExecutionResult, error) {
	sc, ok := e.registry.Get(scenarioID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrScenarioNotFound, scenarioID)
	}
	return e.ExecuteScenario(ctx, sc)
}

// ExecuteScenario runs a scenario on a new game seeded from the scenario
func (e *Engine) ExecuteScenario(ctx context.Context, sc Scenario) (*ExecutionResult, error) {
	if err := Validate(sc); err != nil {
		return nil, err
	}
	runner, err := e.factory(sc.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create game for scenario %s: %w", sc.ID, err)
	}
	return e.Run(ctx, runner, sc)
}

// Run replays the scenario steps against runner, stopping at the first failed step
func (e *Engine) Run(ctx context.Context, runner Runner, sc Scenario) (*ExecutionResult, error) {
	log := logger.FromContext(ctx)
	result := NewExecutionResult(sc)

	for i, step := range sc.Steps {
		select {
		case <-ctx.Done():
			result.SetError(ctx.Err())
			result.Complete()
			return result, ctx.Err()
		default:
		}

		stepResult := e.executeStep(ctx, runner, step, i)
		result.AddStepResult(*stepResult)

		if !stepResult.Success {
			log.Debug("Scenario step failed", "scenario", sc.ID, "step", step.Name, "error", stepResult.Error)
			break
		}
	}

	result.FinalSnapshot = runner.Snapshot()
	result.Complete()

	log.Info("Scenario executed", "scenario", sc.ID, "success", result.Success,
		"steps", len(result.Steps), "duration_ms", result.DurationMS)
	return result, nil
}

// executeStep runs the step action Times() times and then checks its assertions
func (e *Engine) executeStep(ctx context.Context, runner Runner, step Step, index int) *StepResult {
	stepStart := time.Now()
	stepResult := NewStepResult(step.Name, index, step.Action)

	var last game.Result
	for n := 0; n < step.Times(); n++ {
		res, err := e.dispatch(ctx, runner, step)
		if err != nil {
			stepResult.SetError(NewStepErrorWithCause(step, index, "action failed", err))
			stepResult.SetDuration(stepStart)
			return stepResult
		}
		if res.Applied {
			stepResult.Applied++
		} else {
			stepResult.Rejected++
		}
		last = res
	}

	output, err := buildOutput(last, runner.Snapshot())
	if err != nil {
		stepResult.SetError(NewStepErrorWithCause(step, index, "failed to encode output", err))
		stepResult.SetDuration(stepStart)
		return stepResult
	}
	stepResult.Output = output

	for _, assertion := range step.Assertions {
		stepResult.AddAssertionResult(e.checkAssertion(assertion, output))
	}

	stepResult.SetDuration(stepStart)
	return stepResult
}

// dispatch performs one step action. Rejections come back in the Result;
// only malformed steps return an error.
func (e *Engine) dispatch(ctx context.Context, runner Runner, step Step) (game.Result, error) {
	switch step.Action {
	case ActionPlant:
		return runner.Plant(ctx, step.Target), nil
	case ActionHarvest:
		return runner.Harvest(ctx, step.Target), nil
	case ActionIrrigate:
		return runner.Irrigate(ctx, step.Target), nil
	case ActionFill:
		return runner.FillFromRiver(ctx), nil
	case ActionFeed:
		return runner.Feed(ctx, step.Target), nil
	case ActionAdvance:
		return runner.AdvanceTurn(ctx), nil
	case ActionMove:
		dt := step.DT
		if dt == 0 {
			dt = 1
		}
		return runner.Move(ctx, step.DX, step.DY, dt), nil
	case ActionWalkTo:
		return walkTo(ctx, runner, step.Target)
	case ActionFace:
		return runner.Face(ctx, domain.Facing(step.Target)), nil
	case ActionSelectSeed:
		return runner.SelectSeed(ctx, step.Target), nil
	case ActionCycleSeed:
		return runner.CycleSeed(ctx), nil
	case ActionDistrict:
		return runner.SelectDistrict(ctx, step.Target), nil
	case ActionReset:
		return runner.Reset(ctx), nil
	case ActionBuy:
		return runner.Buy(ctx, step.Target), nil
	case ActionSell:
		return runner.Sell(ctx, step.Target), nil
	case ActionSellAll:
		return runner.SellAll(ctx), nil
	default:
		return game.Result{}, fmt.Errorf("%w: %s", ErrInvalidAction, step.Action)
	}
}

// walkTo moves the player until its centre is well inside the target's reach
func walkTo(ctx context.Context, runner Runner, target string) (game.Result, error) {
	goal, reach, err := resolveTarget(runner.Snapshot(), target)
	if err != nil {
		return game.Result{}, err
	}

	res := game.Result{Applied: true, Version: runner.Snapshot().Version}
	for i := 0; i < maxWalkMoves; i++ {
		pc := runner.Snapshot().Player.Center()
		dx, dy := goal.X-pc.X, goal.Y-pc.Y
		dist := math.Hypot(dx, dy)
		if dist <= reach/2 {
			return res, nil
		}
		dt := math.Min(1, dist/domain.PlayerSpeed)
		res = runner.Move(ctx, dx/dist, dy/dist, dt)
		if !res.Applied {
			return res, nil
		}
	}
	return res, fmt.Errorf("%w: %s", ErrTargetUnreachable, target)
}

// resolveTarget returns the point to walk to and the reach radius around it
func resolveTarget(s *domain.Snapshot, target string) (domain.Position, float64, error) {
	switch target {
	case "":
		return domain.Position{}, 0, fmt.Errorf("%w: walk target", ErrMissingParameter)
	case TargetRiver:
		return domain.Position{X: domain.RiverX, Y: domain.RiverY}, domain.RiverRadius, nil
	case TargetHen:
		return domain.Position{X: domain.HenX, Y: domain.HenY}, domain.InteractRadius, nil
	}
	idx := s.FindPlot(target)
	if idx < 0 {
		return domain.Position{}, 0, fmt.Errorf("%w: %s", ErrTargetUnreachable, target)
	}
	return s.Plots[idx].Center(), domain.InteractRadius, nil
}

// buildOutput flattens the result and snapshot into the generic shape assertions walk
func buildOutput(res game.Result, snap *domain.Snapshot) (map[string]interface{}, error) {
	resultMap, err := toMap(res)
	if err != nil {
		return nil, err
	}
	snapshotMap, err := toMap(snap)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"result":   resultMap,
		"snapshot": snapshotMap,
	}, nil
}

func toMap(v interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// checkAssertion evaluates an assertion against the output
func (e *Engine) checkAssertion(assertion Assertion, output map[string]interface{}) AssertionResult {
	result := AssertionResult{
		Type:     assertion.Type,
		Path:     assertion.Path,
		Expected: assertion.Value,
		Reason:   assertion.Reason,
		Passed:   true,
	}

	actual, found := e.getValueByPath(assertion.Path, output)
	result.Actual = actual

	// Handle not found case based on assertion type
	if !found {
		if assertion.Type == AssertEmpty {
			return result
		}
		result.Passed = false
		result.Error = fmt.Sprintf("path '%s' not found", assertion.Path)
		return result
	}

	switch assertion.Type {
	case AssertEquals:
		result.Passed = e.valuesEqual(actual, assertion.Value)
		if !result.Passed {
			result.Error = fmt.Sprintf("expected %v, got %v", assertion.Value, actual)
		}

	case AssertGreaterThan:
		passed, err := e.compareNumeric(actual, assertion.Value, ">")
		result.Passed = passed
		if err != nil {
			result.Error = err.Error()
		}

	case AssertLessThan:
		passed, err := e.compareNumeric(actual, assertion.Value, "<")
		result.Passed = passed
		if err != nil {
			result.Error = err.Error()
		}

	case AssertBetween:
		passedMin, err1 := e.compareNumeric(actual, assertion.Min, ">=")
		passedMax, err2 := e.compareNumeric(actual, assertion.Max, "<=")
		result.Passed = passedMin && passedMax
		if err1 != nil || err2 != nil {
			result.Error = fmt.Sprintf("between comparison failed: min=%v, max=%v", err1, err2)
		}
		result.Expected = fmt.Sprintf("between %v and %v", assertion.Min, assertion.Max)

	case AssertContains:
		str, ok := actual.(string)
		expected, expectedOk := assertion.Value.(string)
		if !ok || !expectedOk {
			result.Passed = false
			result.Error = "contains assertion requires string values"
		} else {
			result.Passed = strings.Contains(str, expected)
			if !result.Passed {
				result.Error = fmt.Sprintf("'%s' does not contain '%s'", str, expected)
			}
		}

	case AssertNotEmpty:
		result.Passed = !e.isEmpty(actual)
		if !result.Passed {
			result.Error = "value is empty"
		}

	case AssertEmpty:
		result.Passed = e.isEmpty(actual)
		if !result.Passed {
			result.Error = fmt.Sprintf("expected empty, got %v", actual)
		}

	case AssertTrue:
		b, ok := actual.(bool)
		result.Passed = ok && b
		if !result.Passed {
			result.Error = fmt.Sprintf("expected true, got %v", actual)
		}

	case AssertFalse:
		b, ok := actual.(bool)
		result.Passed = ok && !b
		if !result.Passed {
			result.Error = fmt.Sprintf("expected false, got %v", actual)
		}

	case AssertErrorContains:
		str, ok := actual.(string)
		expected, expectedOk := assertion.Value.(string)
		if !ok || !expectedOk {
			result.Passed = false
			result.Error = "error_contains assertion requires string values"
		} else {
			result.Passed = strings.Contains(strings.ToLower(str), strings.ToLower(expected))
			if !result.Passed {
				result.Error = fmt.Sprintf("error '%s' does not contain '%s'", str, expected)
			}
		}

	default:
		result.Passed = false
		result.Error = fmt.Sprintf("unknown assertion type: %s", assertion.Type)
	}

	return result
}

// getValueByPath retrieves a value using dotted notation, e.g. "snapshot.plots.0.stage"
func (e *Engine) getValueByPath(path string, output map[string]interface{}) (interface{}, bool) {
	if path == "" {
		return nil, false
	}

	var current interface{} = output
	for _, part := range strings.Split(path, ".") {
		switch v := current.(type) {
		case map[string]interface{}:
			var ok bool
			current, ok = v[part]
			if !ok {
				return nil, false
			}
		case []interface{}:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(v) {
				return nil, false
			}
			current = v[idx]
		default:
			return nil, false
		}
	}

	return current, true
}

// valuesEqual compares two values for equality
func (e *Engine) valuesEqual(a, b interface{}) bool {
	aNum, aIsNum := e.toFloat64(a)
	bNum, bIsNum := e.toFloat64(b)
	if aIsNum && bIsNum {
		return aNum == bNum
	}

	return reflect.DeepEqual(a, b)
}

// compareNumeric compares two numeric values
func (e *Engine) compareNumeric(actual, expected interface{}, op string) (bool, error) {
	a, aOk := e.toFloat64(actual)
	b, bOk := e.toFloat64(expected)

	if !aOk || !bOk {
		return false, fmt.Errorf("cannot compare non-numeric values: %v, %v", actual, expected)
	}

	switch op {
	case ">":
		return a > b, nil
	case ">=":
		return a >= b, nil
	case "<":
		return a < b, nil
	case "<=":
		return a <= b, nil
	default:
		return false, fmt.Errorf("unknown comparison operator: %s", op)
	}
}

// toFloat64 converts a value to float64 if possible
func (e *Engine) toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// isEmpty checks if a value is empty
func (e *Engine) isEmpty(v interface{}) bool {
	if v == nil {
		return true
	}

	switch val := v.(type) {
	case string:
		return val == ""
	case []interface{}:
		return len(val) == 0
	case map[string]interface{}:
		return len(val) == 0
	default:
		return false
	}
}

// Registry returns the engine's scenario registry
func (e *Engine) Registry() *Registry {
	return e.registry
}
