package scenario

import (
	"errors"
	"fmt"
)

// Common errors for the scenario engine
var (
	// ErrScenarioNotFound indicates the requested scenario was not found
	ErrScenarioNotFound = errors.New("scenario not found")

	// ErrInvalidScenario indicates a scenario definition failed validation
	ErrInvalidScenario = errors.New("invalid scenario")

	// ErrInvalidAction indicates an invalid or unsupported action
	ErrInvalidAction = errors.New("invalid action")

	// ErrMissingParameter indicates a required parameter is missing
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrTargetUnreachable indicates a walk could not reach its target
	ErrTargetUnreachable = errors.New("target unreachable")
)

// StepError represents an error that occurred during step execution
type StepError struct {
	StepName  string
	StepIndex int
	Action    ActionType
	Message   string
	Err       error
}

func (e *StepError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("step %d '%s' (action: %s): %s: %v",
			e.StepIndex, e.StepName, e.Action, e.Message, e.Err)
	}
	return fmt.Sprintf("step %d '%s' (action: %s): %s",
		e.StepIndex, e.StepName, e.Action, e.Message)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// NewStepErrorWithCause creates a new StepError with a cause
func NewStepErrorWithCause(step Step, index int, message string, err error) *StepError {
	return &StepError{
		StepName:  step.Name,
		StepIndex: index,
		Action:    step.Action,
		Message:   message,
		Err:       err,
	}
}
