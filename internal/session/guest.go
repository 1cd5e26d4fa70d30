// Package session holds the guest-mode session state: one persisted flag,
// two transient UI fields, and the transitions between them.
//
// The store is owned by the UI presentation layer. All mutation must happen
// on the UI-owning goroutine; the store does no internal locking.
package session

import (
	"guestgate/internal/catalog"
	"guestgate/internal/haptics"
	"guestgate/internal/logging"
)

// guestModeKey is the settings key the persisted flag lives under.
const guestModeKey = "isGuestMode"

// Settings is the key-value persistence collaborator. The guest session is
// its sole writer for guestModeKey.
type Settings interface {
	GetBool(key string) (bool, error)
	SetBool(key string, value bool) error
}

// State is an immutable snapshot of the guest session, handed to observers
// after every transition.
type State struct {
	GuestMode         bool
	ShowSignUpPrompt  bool
	RestrictedFeature *catalog.Feature
}

// Store is the guest session state machine. Construct with NewStore;
// the zero value is not usable.
type Store struct {
	settings Settings
	feedback haptics.Feedback

	guestMode         bool
	showSignUpPrompt  bool
	restrictedFeature *catalog.Feature

	observers map[int]func(State)
	nextObs   int
}

// NewStore builds a guest session store, initializing the guest-mode flag
// from the persisted settings (absent key reads as false). A persistence
// read failure is logged and treated as false; construction never fails for
// that reason.
func NewStore(settings Settings, feedback haptics.Feedback) *Store {
	if feedback == nil {
		feedback = haptics.Noop{}
	}

	guestMode := false
	if settings != nil {
		v, err := settings.GetBool(guestModeKey)
		if err != nil {
			logging.Get(logging.CategorySession).Error("Failed to read persisted guest flag: %v", err)
		} else {
			guestMode = v
		}
	}

	logging.SessionDebug("Guest session initialized (guestMode=%v)", guestMode)

	return &Store{
		settings:  settings,
		feedback:  feedback,
		guestMode: guestMode,
		observers: make(map[int]func(State)),
	}
}

// Snapshot returns the current session state.
func (s *Store) Snapshot() State {
	return State{
		GuestMode:         s.guestMode,
		ShowSignUpPrompt:  s.showSignUpPrompt,
		RestrictedFeature: s.restrictedFeature,
	}
}

// IsGuestMode reports whether the app is browsing unauthenticated.
func (s *Store) IsGuestMode() bool {
	return s.guestMode
}

// ShowSignUpPrompt reports whether the sign-up prompt is visible.
func (s *Store) ShowSignUpPrompt() bool {
	return s.showSignUpPrompt
}

// RestrictedFeature returns the feature that triggered the sign-up prompt,
// or nil when no prompt is active.
func (s *Store) RestrictedFeature() *catalog.Feature {
	return s.restrictedFeature
}

// IsRestricted reports whether touching f is gated right now. Every feature
// is equally gated in guest mode; the parameter is kept so per-feature
// gating can be introduced without changing call sites.
func (s *Store) IsRestricted(f catalog.Feature) bool {
	return s.guestMode
}

// EnableGuestMode enters guest mode, clears any pending sign-up prompt,
// persists the flag, and signals light feedback.
func (s *Store) EnableGuestMode() {
	s.guestMode = true
	s.showSignUpPrompt = false
	s.restrictedFeature = nil
	s.persist()
	s.feedback.Light()
	logging.Session("Guest mode enabled")
	s.notify()
}

// DisableGuestMode leaves guest mode, clears any pending sign-up prompt,
// persists the flag, and signals light feedback.
func (s *Store) DisableGuestMode() {
	s.guestMode = false
	s.showSignUpPrompt = false
	s.restrictedFeature = nil
	s.persist()
	s.feedback.Light()
	logging.Session("Guest mode disabled")
	s.notify()
}

// PromptSignUp records that f was touched while restricted and raises the
// sign-up prompt with medium feedback. Does not persist anything.
func (s *Store) PromptSignUp(f catalog.Feature) {
	s.restrictedFeature = &f
	s.showSignUpPrompt = true
	s.feedback.Medium()
	logging.Session("Sign-up prompt raised for feature %s", f)
	s.notify()
}

// DismissSignUpPrompt hides the sign-up prompt and forgets the triggering
// feature. No persistence, no feedback.
func (s *Store) DismissSignUpPrompt() {
	s.showSignUpPrompt = false
	s.restrictedFeature = nil
	logging.SessionDebug("Sign-up prompt dismissed")
	s.notify()
}

// ResetGuestSession clears the transient prompt state. Identical in effect
// to DismissSignUpPrompt; kept as a separate entry point for reset paths.
func (s *Store) ResetGuestSession() {
	s.DismissSignUpPrompt()
}

// Subscribe registers an observer called with the post-transition state
// after every mutation. The returned function unsubscribes. Observers run
// synchronously on the mutating goroutine and must not mutate the store.
func (s *Store) Subscribe(fn func(State)) func() {
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	return func() {
		delete(s.observers, id)
	}
}

// persist flushes the guest-mode flag. Persistence is local storage and
// assumed available; a failure is logged and the in-memory state stands.
func (s *Store) persist() {
	if s.settings == nil {
		return
	}
	if err := s.settings.SetBool(guestModeKey, s.guestMode); err != nil {
		logging.Get(logging.CategorySession).Error("Failed to persist guest flag: %v", err)
	}
}

func (s *Store) notify() {
	snap := s.Snapshot()
	for _, fn := range s.observers {
		fn(snap)
	}
}
