// Package validate turns untrusted tool arguments into normalized
// upstream payloads. Validators never panic and never throw: every
// check accumulates into a Result, and callers decide whether to abort.
package validate

import "fmt"

// Result is the uniform outcome of a validation pass.
type Result struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

func newResult() *Result {
	return &Result{Valid: true}
}

func (r *Result) errorf(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Merge folds another result into r; r stays valid only if both are.
func (r *Result) Merge(other *Result) {
	if !other.Valid {
		r.Valid = false
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}
