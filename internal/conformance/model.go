package conformance

// Severity classifies how serious a rule's findings are.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Violation describes one detected mismatch or structural error.
type Violation struct {
	WorkspaceViolation bool   `json:"workspaceViolation"`
	Message            string `json:"message"`
}

// Details holds the violations of a Result.
type Details struct {
	Violations []Violation `json:"violations"`
}

// Result is the outcome of one rule invocation.
type Result struct {
	Severity Severity `json:"severity"`
	Details  Details  `json:"details"`
}

// HasViolations reports whether the result contains any violation.
func (r Result) HasViolations() bool {
	return len(r.Details.Violations) > 0
}

func newResult(severity Severity, violations []Violation) Result {
	if violations == nil {
		violations = []Violation{}
	}
	return Result{Severity: severity, Details: Details{Violations: violations}}
}
