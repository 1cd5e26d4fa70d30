package session

import "errors"

// memorySettings is an in-memory Settings double.
type memorySettings struct {
	values   map[string]bool
	setCalls int
	failGet  bool
	failSet  bool
}

func newMemorySettings() *memorySettings {
	return &memorySettings{values: make(map[string]bool)}
}

func (m *memorySettings) GetBool(key string) (bool, error) {
	if m.failGet {
		return false, errors.New("settings unavailable")
	}
	return m.values[key], nil
}

func (m *memorySettings) SetBool(key string, value bool) error {
	if m.failSet {
		return errors.New("settings unavailable")
	}
	m.setCalls++
	m.values[key] = value
	return nil
}

// recorderFeedback counts haptic signals.
type recorderFeedback struct {
	light  int
	medium int
}

func (r *recorderFeedback) Light()  { r.light++ }
func (r *recorderFeedback) Medium() { r.medium++ }
