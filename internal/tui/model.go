package tui

import (
	"fmt"
	"log/slog"

	"github.com/Mr-Dark-debug/splitr/internal/database"
	"github.com/Mr-Dark-debug/splitr/internal/ledger"
	"github.com/Mr-Dark-debug/splitr/pkg/timeutil"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// Form fields
// ────────────────────────────────────────────────────────────

const (
	addFieldName = iota
	addFieldImage
	addFieldCount
)

const (
	splitFieldBill = iota
	splitFieldPaid
	splitFieldPayer
	splitFieldCount
)

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model for splitr. The ledger.Session is the
// single source of truth for roster, selection and which form is open;
// the rest is presentation state.
type Model struct {
	session  ledger.Session
	store    database.Store
	currency string
	now      func() int64

	// Data
	history []*database.SplitRecord

	// UI state
	cursor      int
	showHistory bool
	width       int
	height      int

	// Add-friend form
	nameInput  textinput.Model
	imageInput textinput.Model
	addField   int

	// Split-bill form
	billInput  textinput.Model
	paidInput  textinput.Model
	payer      ledger.Payer
	splitField int

	// Status
	statusMsg string
	err       error
}

// NewModel creates a TUI model over session, journaling into store.
func NewModel(session ledger.Session, store database.Store, currency string) Model {
	return Model{
		session:    session,
		store:      store,
		currency:   currency,
		now:        timeutil.NowNano,
		nameInput:  newInput("Friend name", 40),
		imageInput: newInput("Image URL", 200),
		billInput:  newInput("0", 12),
		paidInput:  newInput("0", 12),
		statusMsg:  fmt.Sprintf("%d friends", len(session.Friends())),
	}
}

// Session returns the current session snapshot.
func (m Model) Session() ledger.Session { return m.session }

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

type eventRecordedMsg struct{ ev ledger.Event }
type historyLoadedMsg []*database.SplitRecord
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return m.loadHistory()
}

func (m Model) loadHistory() tea.Cmd {
	return func() tea.Msg {
		splits, err := m.store.QuerySplits(database.SplitFilter{Limit: 100})
		if err != nil {
			return errMsg{err}
		}
		return historyLoadedMsg(splits)
	}
}

func (m Model) recordEvent(ev ledger.Event) tea.Cmd {
	store, at := m.store, m.now()
	return func() tea.Msg {
		if err := database.RecordEvent(store, ev, at); err != nil {
			return errMsg{fmt.Errorf("journaling %s for %s: %w", ev.Kind, ev.Friend.Name, err)}
		}
		return eventRecordedMsg{ev}
	}
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case eventRecordedMsg:
		slog.Info("event recorded", "kind", string(msg.ev.Kind),
			"friend", msg.ev.Friend.Name, "balance", msg.ev.Friend.Balance)
		return m, m.loadHistory()

	case historyLoadedMsg:
		m.history = []*database.SplitRecord(msg)
		return m, nil

	case errMsg:
		m.err = msg.err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
		slog.Error("journal failure", "error", msg.err)
		return m, nil
	}

	return m, nil
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	footer := renderFooter(&m)

	bodyHeight := m.height - 2 // header + footer

	sidebarWidth := m.width * 45 / 100
	if m.width < 60 {
		sidebarWidth = m.width
	}
	mainWidth := m.width - sidebarWidth

	sidebar := renderSidebar(&m, sidebarWidth-2)
	sidebar = sidebarStyle.Width(sidebarWidth - 1).Height(bodyHeight).Render(sidebar)

	if mainWidth <= 0 {
		// Narrow terminal: the open form replaces the roster.
		if m.session.Phase() == ledger.PhaseSplittingBill {
			sidebar = mainPaneStyle.Width(m.width).Height(bodyHeight).Render(renderMain(&m, m.width-4))
		}
		return lipgloss.JoinVertical(lipgloss.Left, header, sidebar, footer)
	}

	main := mainPaneStyle.Width(mainWidth).Height(bodyHeight).Render(renderMain(&m, mainWidth-4))
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderSidebar stacks the roster, the add-friend form when open, and the
// add/close affordance.
func renderSidebar(m *Model, width int) string {
	parts := []string{renderRoster(m, width)}
	if m.session.AddFriendOpen() {
		parts = append(parts, "", renderAddFriendForm(m))
	}

	label := "Add Friend"
	if m.session.AddFriendOpen() {
		label = "Close"
	}
	parts = append(parts, "", buttonStyle.Render(label))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderMain shows the split-bill form when a friend is selected, the
// history when toggled, and a hint otherwise.
func renderMain(m *Model, width int) string {
	if f, ok := m.session.Selected(); ok {
		return renderSplitForm(m, f)
	}
	if m.showHistory {
		return renderHistory(m, width)
	}
	return emptyStateStyle.Render("Select a friend to split a bill.\n\n" +
		"Press h to see this session's history.")
}
