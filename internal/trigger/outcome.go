package trigger

// OutcomeKind enumerates the terminal states of one trigger request. The set
// is closed: writeOutcome switches over it exhaustively.
type OutcomeKind int

const (
	// OutcomeSucceeded means the event was parsed, routed and processed.
	OutcomeSucceeded OutcomeKind = iota

	// OutcomeMalformed means the wire input was not a valid CloudEvent.
	// The sender could correct and resubmit it.
	OutcomeMalformed

	// OutcomeUnknownType means the envelope was well formed but its type is
	// outside the routed set. Redelivery would not change the result, so the
	// event is acknowledged rather than rejected.
	OutcomeUnknownType

	// OutcomeFailed means parsing or processing failed unexpectedly. The
	// trigger infrastructure may retry delivery.
	OutcomeFailed
)

// Outcome is the result of classifying and dispatching one event.
type Outcome struct {
	Kind OutcomeKind

	// Details holds the parser's rejection reason for OutcomeMalformed,
	// and the offending type for OutcomeUnknownType.
	Details string

	// Err is set only for OutcomeFailed. It never reaches the response
	// body; writeOutcome logs it and replies with a generic message.
	Err error
}

func succeeded() Outcome {
	return Outcome{Kind: OutcomeSucceeded}
}

func malformed(details string) Outcome {
	return Outcome{Kind: OutcomeMalformed, Details: details}
}

func unknownType(eventType string) Outcome {
	return Outcome{Kind: OutcomeUnknownType, Details: eventType}
}

func failed(err error) Outcome {
	return Outcome{Kind: OutcomeFailed, Err: err}
}
