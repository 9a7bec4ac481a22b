package model

// SessionState is a node of the application state machine
type SessionState string

const (
	// StateIdle means no input file has been chosen yet
	StateIdle SessionState = "idle"

	// StateFileChosen means an input is set and nothing is running
	StateFileChosen SessionState = "file-chosen"

	// StateConverting means a worker owns the current job
	StateConverting SessionState = "converting"

	// StateConverted means the last job produced an output file
	StateConverted SessionState = "converted"

	// StateFailed means the last job or its validation failed
	StateFailed SessionState = "failed"
)

// String returns the string representation of SessionState
func (s SessionState) String() string {
	return string(s)
}

// IsActive returns true while a conversion is in flight
func (s SessionState) IsActive() bool {
	return s == StateConverting
}

// IsFinished returns true once a conversion has ended (converted or failed)
func (s SessionState) IsFinished() bool {
	return s == StateConverted || s == StateFailed
}
