// Package haptics defines the haptic feedback collaborator. Implementations
// are fire-and-forget: callers never observe failures.
package haptics

import "guestgate/internal/logging"

// Feedback emits haptic feedback signals. Light accompanies mode toggles,
// Medium accompanies the sign-up prompt.
type Feedback interface {
	Light()
	Medium()
}

// Noop discards all feedback. Used where no haptics bridge is attached.
type Noop struct{}

func (Noop) Light()  {}
func (Noop) Medium() {}

// Logged records feedback events to the haptics log category. It stands in
// for a platform haptics bridge on desktop builds.
type Logged struct{}

func (Logged) Light() {
	logging.Haptics("light feedback")
}

func (Logged) Medium() {
	logging.Haptics("medium feedback")
}

// New returns the feedback implementation for the given kind. Unknown kinds
// fall back to Noop.
func New(kind string) Feedback {
	switch kind {
	case "logged":
		return Logged{}
	default:
		return Noop{}
	}
}
