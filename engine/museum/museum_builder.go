package museum

import (
	"github.com/Carmen-Shannon/oxy-museum/engine/exhibit"
	"github.com/Carmen-Shannon/oxy-museum/engine/particle"
)

// MuseumBuilderOption is a functional option for configuring a Museum.
type MuseumBuilderOption func(m *museum)

// WithStyle sets the appearance handles and structural constants shared by every room.
//
// Parameters:
//   - style: the exhibit style
//
// Returns:
//   - MuseumBuilderOption: option function to apply
func WithStyle(style exhibit.Style) MuseumBuilderOption {
	return func(m *museum) {
		m.style = style
	}
}

// WithEmitterOptions configures the particle emitter of the Particles room.
func WithEmitterOptions(options ...particle.EmitterBuilderOption) MuseumBuilderOption {
	return func(m *museum) {
		m.emitterOptions = append(m.emitterOptions, options...)
	}
}

// WithTrackerOptions configures the containment tracker.
func WithTrackerOptions(options ...TrackerBuilderOption) MuseumBuilderOption {
	return func(m *museum) {
		m.trackerOptions = append(m.trackerOptions, options...)
	}
}
