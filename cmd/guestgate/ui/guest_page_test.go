package ui

import (
	"strings"
	"testing"

	"guestgate/internal/catalog"
	"guestgate/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

// The program root must satisfy tea.Model; pages stay concrete-typed.
var _ tea.Model = rootModel{}

func newTestModel(t *testing.T) GuestPageModel {
	t.Helper()
	store := session.NewStore(nil, nil)
	model := NewGuestPageModel(store, nil, NewStyles(DarkTheme()))
	model.SetSize(100, 30)
	return model
}

func TestGuestPageRendersCatalog(t *testing.T) {
	model := newTestModel(t)

	view := model.View()
	for _, f := range catalog.All() {
		title := catalog.Describe(f).Title
		if !strings.Contains(view, title) {
			t.Errorf("expected view to list %q", title)
		}
	}
	if strings.Contains(view, "[locked]") {
		t.Error("features should not be locked outside guest mode")
	}
}

func TestGuestPageToggleKey(t *testing.T) {
	model := newTestModel(t)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	view := model.View()
	if !strings.Contains(view, "[locked]") {
		t.Fatal("expected features to be locked in guest mode")
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	if strings.Contains(model.View(), "[locked]") {
		t.Fatal("expected features to unlock after toggling back")
	}
}

func TestGuestPagePromptAndDismiss(t *testing.T) {
	model := newTestModel(t)

	// Enter guest mode, then touch the first feature.
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	view := model.View()
	if !strings.Contains(view, "guest.prompt.title") {
		t.Fatal("expected sign-up prompt after touching a restricted feature")
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if strings.Contains(model.View(), "guest.prompt.title") {
		t.Fatal("expected prompt to disappear after esc")
	}
}

func TestGuestPageEnterDoesNothingWhenUnrestricted(t *testing.T) {
	model := newTestModel(t)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if strings.Contains(model.View(), "guest.prompt.title") {
		t.Fatal("prompt must not appear outside guest mode")
	}
}

func TestGuestPageCursorNavigation(t *testing.T) {
	model := newTestModel(t)

	if model.cursor != 0 {
		t.Fatalf("cursor starts at %d", model.cursor)
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	if model.cursor != 2 {
		t.Errorf("cursor = %d after two downs", model.cursor)
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	if model.cursor != 1 {
		t.Errorf("cursor = %d after up", model.cursor)
	}

	// Cursor clamps at both ends.
	for i := 0; i < 20; i++ {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if model.cursor != len(catalog.All())-1 {
		t.Errorf("cursor = %d, want last index", model.cursor)
	}
}

func TestRootModelDelegatesToPage(t *testing.T) {
	root := newRootModel(newTestModel(t))

	updated, _ := root.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	view := updated.View()
	if !strings.Contains(view, "[locked]") {
		t.Fatal("root model should carry the page's updated state")
	}

	// Quit propagates from the page through the adapter.
	_, cmd := updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command from q")
	}
}

// The feature list renders through the viewport, so it scrolls when the
// window is shorter than the catalog.
func TestGuestPageViewportClipsToHeight(t *testing.T) {
	model := newTestModel(t)
	model.SetSize(100, 7) // viewport gets 3 lines

	view := model.View()
	first := catalog.Describe(catalog.All()[0]).Title
	last := catalog.Describe(catalog.All()[len(catalog.All())-1]).Title
	if !strings.Contains(view, first) {
		t.Fatalf("expected first feature %q to be visible", first)
	}
	if strings.Contains(view, last) {
		t.Fatalf("expected last feature %q to be scrolled out of a 3-line viewport", last)
	}
}

func TestGuestPageStateMsg(t *testing.T) {
	store := session.NewStore(nil, nil)
	model := NewGuestPageModel(store, nil, NewStyles(LightTheme()))
	model.SetSize(100, 30)

	// Simulate an external mutation delivered through the observer hook.
	store.EnableGuestMode()
	model, _ = model.Update(stateMsg{state: store.Snapshot()})

	if !strings.Contains(model.View(), "[locked]") {
		t.Fatal("stateMsg should refresh the rendered state")
	}
}
