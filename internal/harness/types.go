package harness

// Trace event types.
const (
	EventBuild = "build"
	EventCheck = "check"
)

// TraceEvent records one harness step.
type TraceEvent struct {
	Type string `json:"type"` // "build" or "check"
	Seq  int64  `json:"seq"`

	// Build events.
	Members   []string   `json:"members,omitempty"`
	Recursive [][]string `json:"recursive,omitempty"`

	// Check events.
	Case   string `json:"case,omitempty"`
	Target string `json:"target,omitempty"`

	// Outcome is "ok"/"error" for builds and "accept"/"reject" for checks.
	Outcome string   `json:"outcome"`
	Errors  []string `json:"errors,omitempty"`
}

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if the build and every case matched expectations.
	Pass bool `json:"pass"`

	// Trace contains the build event and every check event in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains expectation failures.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds an expectation failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends an event.
func (r *Result) AddTrace(e TraceEvent) {
	r.Trace = append(r.Trace, e)
}
