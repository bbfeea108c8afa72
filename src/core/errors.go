package core

import (
	"fmt"
)

// A ConsistencyError indicates that already-resolved data handed to us by a
// collaborator violates an invariant we rely on (for example a repository
// whose mapping repeats an apparent name). It always means a bug upstream,
// never bad user input, so it is fatal and must not be silently repaired.
type ConsistencyError struct {
	msg string
}

// ConsistencyErrorf constructs a ConsistencyError with a formatted message.
func ConsistencyErrorf(format string, args ...interface{}) *ConsistencyError {
	return &ConsistencyError{msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (err *ConsistencyError) Error() string {
	return err.msg
}
