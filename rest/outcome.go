package rest

// Kind is the three-way result of a REST call.
type Kind int

const (
	// KindValue means the call succeeded and produced a value.
	KindValue Kind = iota
	// KindEmpty means the call succeeded without content (202/204).
	KindEmpty
	// KindFailure means the call failed; Outcome.Err says why.
	KindFailure
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindEmpty:
		return "empty"
	default:
		return "failure"
	}
}

// Outcome describes how one call ended.
type Outcome struct {
	Kind Kind
	// StatusCode is the HTTP status, or 0 when no response arrived.
	StatusCode int
	// Notes are the diagnostics recorded during this call, in order.
	Notes []string
	// Err is set exactly when Kind is KindFailure.
	Err error
}

// OK reports whether the call succeeded, with or without a value.
func (o Outcome) OK() bool {
	return o.Kind != KindFailure
}

// Result is an Outcome plus the decoded value. Value is nil unless Kind is
// KindValue.
type Result[T any] struct {
	Outcome
	Value *T
}

func valueResult[T any](status int, notes []string, v *T) (*Result[T], error) {
	return &Result[T]{Outcome: Outcome{Kind: KindValue, StatusCode: status, Notes: notes}, Value: v}, nil
}

func emptyResult[T any](status int, notes []string) (*Result[T], error) {
	return &Result[T]{Outcome: Outcome{Kind: KindEmpty, StatusCode: status, Notes: notes}}, nil
}

func failedResult[T any](status int, notes []string, err error) (*Result[T], error) {
	return &Result[T]{Outcome: Outcome{Kind: KindFailure, StatusCode: status, Notes: notes, Err: err}}, err
}
