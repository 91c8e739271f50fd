// Package session provides an in-memory implementation of the editing
// session the timeline projects. In production the session lives in the
// external editing SDK; this implementation backs the editor shell and
// tests with the same contract.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/keagan/railcut/internal/timeline"
)

// Manager holds the canonical element records. It satisfies
// timeline.Session.
type Manager struct {
	logger   zerolog.Logger
	elements []timeline.Element
}

// NewManager creates an empty session manager.
func NewManager(logger zerolog.Logger) *Manager {
	return &Manager{
		logger:   logger.With().Str("component", "session").Logger(),
		elements: make([]timeline.Element, 0),
	}
}

// Import registers a new media element and returns its record.
func (m *Manager) Import(label string, kind timeline.Kind, duration time.Duration) timeline.Element {
	el := timeline.Element{
		ID:       uuid.NewString(),
		Label:    label,
		Kind:     kind,
		Duration: duration,
	}
	m.elements = append(m.elements, el)

	m.logger.Debug().
		Str("element", el.ID).
		Str("kind", kind.String()).
		Dur("duration", duration).
		Msg("element imported")

	return el
}

// Element retrieves one element by ID.
func (m *Manager) Element(ctx context.Context, id string) (timeline.Element, error) {
	for _, el := range m.elements {
		if el.ID == id {
			return el, nil
		}
	}
	return timeline.Element{}, fmt.Errorf("element %s not found", id)
}

// Elements returns all current elements.
func (m *Manager) Elements(ctx context.Context) ([]timeline.Element, error) {
	out := make([]timeline.Element, len(m.elements))
	copy(out, m.elements)
	return out, nil
}

// DeleteElements removes the given elements. Missing IDs fail the whole
// call so the timeline never drops a clip the session still holds.
func (m *Manager) DeleteElements(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if _, err := m.Element(ctx, id); err != nil {
			return err
		}
	}

	keep := m.elements[:0]
	for _, el := range m.elements {
		if !contains(ids, el.ID) {
			keep = append(keep, el)
		}
	}
	m.elements = keep
	return nil
}

// DuplicateElement copies an element under a fresh ID.
func (m *Manager) DuplicateElement(ctx context.Context, id string) (timeline.Element, error) {
	src, err := m.Element(ctx, id)
	if err != nil {
		return timeline.Element{}, err
	}

	dup := src
	dup.ID = uuid.NewString()
	m.elements = append(m.elements, dup)
	return dup, nil
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
