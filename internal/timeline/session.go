package timeline

import (
	"context"
	"time"
)

// Element is the session-side record a clip projects. The session owns
// the canonical media data; the timeline only mirrors it visually.
type Element struct {
	ID       string
	Label    string
	Kind     Kind
	Duration time.Duration
}

// Session is the external editing engine the timeline talks to for
// element-level operations. Failures are caught at the call site and
// logged, never propagated into clip state.
type Session interface {
	Element(ctx context.Context, id string) (Element, error)
	Elements(ctx context.Context) ([]Element, error)
	DeleteElements(ctx context.Context, ids []string) error
	DuplicateElement(ctx context.Context, id string) (Element, error)
}
