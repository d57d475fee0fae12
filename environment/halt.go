package environment

// HaltError is the non-recoverable error channel: a value known at
// circuit-construction time made an operation meaningless (e.g. division by
// a known-zero constant). It unwinds the current synthesis as a panic and is
// expected to terminate the process, or to be recovered only at test
// boundaries.
type HaltError struct {
	Message string
	Stack   string
}

func (e *HaltError) Error() string {
	return e.Message
}
