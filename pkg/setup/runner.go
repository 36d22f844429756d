package setup

import "context"

// StepStatus is the outcome of one step in a Runner pass.
type StepStatus struct {
	Step Step
	// Met reports whether the step was satisfied before any remediation.
	Met bool
	// Remediated reports whether Meet was invoked and succeeded.
	Remediated bool
	// Err holds the Meet failure for unmet steps; nil when Met is true
	// or when running in check-only mode.
	Err error
}

// Satisfied reports whether the step ended up satisfied.
func (s StepStatus) Satisfied() bool {
	return s.Met || s.Remediated
}

// Runner sequences setup steps in declaration order, synchronously.
// Steps are independent; no result is cached between runs.
type Runner struct {
	Steps []Step
	// CheckOnly skips Meet for unmet steps.
	CheckOnly bool
}

// Run checks every step against projectDir and returns one status per step,
// in order. Unmet steps are remediated through Meet unless CheckOnly is set.
func (r *Runner) Run(ctx context.Context, projectDir string) []StepStatus {
	statuses := make([]StepStatus, 0, len(r.Steps))
	for _, step := range r.Steps {
		status := StepStatus{Step: step, Met: step.IsMet(ctx, projectDir)}
		if !status.Met && !r.CheckOnly {
			status.Err = step.Meet(ctx, projectDir)
			status.Remediated = status.Err == nil
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// Unsatisfied counts steps that remain unsatisfied after a Run pass.
func Unsatisfied(statuses []StepStatus) int {
	count := 0
	for _, status := range statuses {
		if !status.Satisfied() {
			count++
		}
	}
	return count
}
