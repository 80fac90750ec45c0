package tui

import (
	"log/slog"

	"github.com/Mr-Dark-debug/splitr/internal/ledger"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKey routes keyboard input based on the session phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// ── Global ──

	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+a":
		return m.toggleAddFriend()
	}

	switch m.session.Phase() {
	case ledger.PhaseAddingFriend:
		return m.handleAddFriendKey(msg)
	case ledger.PhaseSplittingBill:
		return m.handleSplitKey(msg)
	default:
		return m.handleRosterKey(msg)
	}
}

// ── Roster (idle) ──

func (m Model) handleRosterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	friends := m.session.Friends()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "j", "down":
		if m.cursor < len(friends)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "a":
		return m.toggleAddFriend()
	case "h":
		m.showHistory = !m.showHistory
		if m.showHistory {
			return m, m.loadHistory()
		}
	case "enter", " ":
		if m.cursor < len(friends) {
			return m.selectFriend(friends[m.cursor].ID)
		}
	}
	return m, nil
}

func (m Model) toggleAddFriend() (tea.Model, tea.Cmd) {
	m.session = m.session.ToggleAddFriend()
	m.resetSplitForm()
	if !m.session.AddFriendOpen() {
		m.resetAddForm()
		return m, nil
	}
	m.imageInput.SetValue(m.session.AvatarBase())
	m.addField = addFieldName
	return m, m.focusAddField()
}

func (m Model) selectFriend(id string) (tea.Model, tea.Cmd) {
	m.session = m.session.Select(id)
	m.resetAddForm()
	m.resetSplitForm()
	if _, ok := m.session.Selected(); !ok {
		return m, nil
	}
	return m, m.focusSplitField()
}

// ── Add-friend form ──

// Plain keys type into the form, so the roster is driven with ctrl
// bindings while it is open.
func (m Model) handleAddFriendKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.toggleAddFriend()
	case "ctrl+j":
		if m.cursor < len(m.session.Friends())-1 {
			m.cursor++
		}
		return m, nil
	case "ctrl+k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "ctrl+s":
		friends := m.session.Friends()
		if m.cursor < len(friends) {
			return m.selectFriend(friends[m.cursor].ID)
		}
		return m, nil
	case "tab", "down":
		m.addField = (m.addField + 1) % addFieldCount
		return m, m.focusAddField()
	case "shift+tab", "up":
		m.addField = (m.addField + addFieldCount - 1) % addFieldCount
		return m, m.focusAddField()
	case "enter":
		next, ev, ok := m.session.AddFriend(m.nameInput.Value(), m.imageInput.Value())
		if !ok {
			m.statusMsg = "Name and image URL are required"
			return m, nil
		}
		m.session = next
		m.resetAddForm()
		m.cursor = len(next.Friends()) - 1
		m.statusMsg = "Added " + ev.Friend.Name
		return m, m.recordEvent(ev)
	}

	var cmd tea.Cmd
	if m.addField == addFieldName {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.imageInput, cmd = m.imageInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) focusAddField() tea.Cmd {
	m.nameInput.Blur()
	m.imageInput.Blur()
	if m.addField == addFieldName {
		return m.nameInput.Focus()
	}
	return m.imageInput.Focus()
}

func (m *Model) resetAddForm() {
	m.nameInput.Reset()
	m.nameInput.Blur()
	m.imageInput.Reset()
	m.imageInput.Blur()
	m.addField = addFieldName
}

// ── Split-bill form ──

func (m Model) handleSplitKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if f, ok := m.session.Selected(); ok {
			return m.selectFriend(f.ID)
		}
		return m, nil
	case "tab", "down":
		m.splitField = (m.splitField + 1) % splitFieldCount
		return m, m.focusSplitField()
	case "shift+tab", "up":
		m.splitField = (m.splitField + splitFieldCount - 1) % splitFieldCount
		return m, m.focusSplitField()
	case "enter":
		return m.submitSplit()
	}

	if m.splitField == splitFieldPayer {
		switch msg.String() {
		case "left", "right", " ", "h", "l":
			if m.payer == ledger.PayerUser {
				m.payer = ledger.PayerFriend
			} else {
				m.payer = ledger.PayerUser
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.splitField == splitFieldBill {
		m.billInput, cmd = m.billInput.Update(msg)
	} else {
		m.paidInput, cmd = m.paidInput.Update(msg)
	}
	return m, cmd
}

func (m Model) currentBill() ledger.Bill {
	return ledger.Bill{
		Total:      parseAmount(m.billInput.Value()),
		PaidByUser: parseAmount(m.paidInput.Value()),
		Payer:      m.payer,
	}
}

func (m Model) submitSplit() (tea.Model, tea.Cmd) {
	next, ev, ok := m.session.SplitBill(m.currentBill())
	if !ok {
		m.statusMsg = "Enter the bill value and your expense"
		slog.Debug("split bill suppressed", "bill", m.billInput.Value(), "paid", m.paidInput.Value())
		return m, nil
	}
	m.session = next
	m.resetSplitForm()
	m.statusMsg = ev.Friend.Summary(m.currency)
	return m, m.recordEvent(ev)
}

func (m *Model) focusSplitField() tea.Cmd {
	m.billInput.Blur()
	m.paidInput.Blur()
	switch m.splitField {
	case splitFieldBill:
		return m.billInput.Focus()
	case splitFieldPaid:
		return m.paidInput.Focus()
	}
	return nil
}

func (m *Model) resetSplitForm() {
	m.billInput.Reset()
	m.billInput.Blur()
	m.paidInput.Reset()
	m.paidInput.Blur()
	m.payer = ledger.PayerUser
	m.splitField = splitFieldBill
}
