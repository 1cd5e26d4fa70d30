package ui

import (
	"fmt"
	"strings"

	"guestgate/internal/catalog"
	"guestgate/internal/i18n"
	"guestgate/internal/logging"
	"guestgate/internal/session"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// stateMsg carries a session snapshot pushed by the store's observer hook.
type stateMsg struct {
	state session.State
}

// GuestPageModel renders the guest session: the mode flag, the restricted
// feature catalog, and the sign-up prompt overlay.
type GuestPageModel struct {
	viewport viewport.Model
	store    *session.Store
	state    session.State
	features []catalog.Feature
	cursor   int

	translate catalog.TranslateFunc
	styles    Styles
	width     int
	height    int
}

// NewGuestPageModel creates the guest session page.
func NewGuestPageModel(store *session.Store, translate catalog.TranslateFunc, styles Styles) GuestPageModel {
	vp := viewport.New(80, 20)
	return GuestPageModel{
		viewport:  vp,
		store:     store,
		state:     store.Snapshot(),
		features:  catalog.All(),
		translate: translate,
		styles:    styles,
	}
}

// Init implements tea.Model.
func (m GuestPageModel) Init() tea.Cmd {
	return nil
}

// tr resolves a UI string, echoing the key when no translator is attached.
func (m GuestPageModel) tr(key string) string {
	if m.translate == nil {
		return key
	}
	return m.translate(key)
}

// SetSize updates the size of the viewport.
func (m *GuestPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h - 4 // Reserve space for header/footer
}

// Update handles messages.
func (m GuestPageModel) Update(msg tea.Msg) (GuestPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case stateMsg:
		m.state = msg.state

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "g":
			if m.state.GuestMode {
				m.store.DisableGuestMode()
			} else {
				m.store.EnableGuestMode()
			}
			m.state = m.store.Snapshot()
			logging.UIDebug("Guest mode toggled to %v", m.state.GuestMode)
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.features)-1 {
				m.cursor++
			}
		case "enter":
			f := m.features[m.cursor]
			if m.store.IsRestricted(f) {
				m.store.PromptSignUp(f)
			}
			m.state = m.store.Snapshot()
		case "esc":
			m.store.DismissSignUpPrompt()
			m.state = m.store.Snapshot()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// featureList builds the catalog listing shown inside the viewport.
func (m GuestPageModel) featureList() string {
	var sb strings.Builder

	for i, f := range m.features {
		d := catalog.Describe(f)
		title := catalog.LocalizedTitle(f, m.translate)
		desc := catalog.LocalizedDescription(f, m.translate)

		line := fmt.Sprintf("  %-24s %-26s %s", title, m.styles.Muted.Render(d.IconID), m.styles.Muted.Render(desc))
		if i == m.cursor {
			line = m.styles.Selected.Render("> " + strings.TrimPrefix(line, "  "))
		}
		sb.WriteString(line)
		if m.state.GuestMode {
			sb.WriteString(m.styles.Badge.Render("  [locked]"))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// View renders the page.
func (m GuestPageModel) View() string {
	var sb strings.Builder

	mode := m.tr("guest.mode.disabled")
	if m.state.GuestMode {
		mode = m.tr("guest.mode.enabled")
	}
	sb.WriteString(m.styles.Header.Render("Guest Session"))
	sb.WriteString("  ")
	sb.WriteString(m.styles.Badge.Render(mode))
	sb.WriteString("\n\n")

	m.viewport.SetContent(m.featureList())
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")

	if m.state.ShowSignUpPrompt && m.state.RestrictedFeature != nil {
		title := catalog.LocalizedTitle(*m.state.RestrictedFeature, m.translate)
		prompt := fmt.Sprintf("%s\n%s\n\n[%s]  %s",
			m.styles.Title.Render(m.tr("guest.prompt.title")),
			fmt.Sprintf("%s (%s)", m.tr("guest.prompt.body"), title),
			m.tr("guest.prompt.cta"),
			m.styles.Muted.Render(m.tr("guest.prompt.dismiss")+" (esc)"))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Prompt.Render(prompt))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("g: toggle guest mode • enter: open feature • esc: dismiss • q: quit"))

	return sb.String()
}

// rootModel is the top-level tea.Model handed to the program. Pages keep
// concrete-typed Updates; this adapter owns the tea.Model return type.
type rootModel struct {
	page GuestPageModel
}

func newRootModel(page GuestPageModel) rootModel {
	return rootModel{page: page}
}

func (m rootModel) Init() tea.Cmd {
	return m.page.Init()
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)
	return m, cmd
}

func (m rootModel) View() string {
	return m.page.View()
}

// Run wires the session store to a bubbletea program and blocks until the
// user quits. Store notifications are forwarded as messages so any mutation
// re-renders the page.
func Run(store *session.Store, translator *i18n.Translator, themeName string) error {
	model := NewGuestPageModel(store, translator.Translate, NewStyles(ThemeByName(themeName)))
	p := tea.NewProgram(newRootModel(model), tea.WithAltScreen())

	unsubscribe := store.Subscribe(func(st session.State) {
		p.Send(stateMsg{state: st})
	})
	defer unsubscribe()

	_, err := p.Run()
	return err
}
