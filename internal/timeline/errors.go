package timeline

import "fmt"

// ConfigurationError reports invalid setup: an unregistered clip category
// or a malformed handle policy. Fatal at setup time, not recoverable
// mid-session.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "timeline: configuration: " + e.Reason
}

// GeometryError reports a malformed geometry (negative width or height)
// passed at construction time. During drags dimensions are clamped instead.
type GeometryError struct {
	Reason string
}

func (e *GeometryError) Error() string {
	return "timeline: geometry: " + e.Reason
}

// SessionOperationError wraps a failed call into the external editing
// session. Callers log it and surface a notification; clip state stays
// unchanged.
type SessionOperationError struct {
	Op  string
	Err error
}

func (e *SessionOperationError) Error() string {
	return fmt.Sprintf("timeline: session %s: %v", e.Op, e.Err)
}

func (e *SessionOperationError) Unwrap() error {
	return e.Err
}
