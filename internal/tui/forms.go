package tui

import (
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/splitr/internal/ledger"

	"github.com/charmbracelet/lipgloss"
)

// renderAddFriendForm renders the name and image inputs.
func renderAddFriendForm(m *Model) string {
	lines := []string{
		formLabel("Friend Name", m.addField == addFieldName),
		m.nameInput.View(),
		formLabel("Image URL", m.addField == addFieldImage),
		m.imageInput.View(),
		"",
		buttonStyle.Render("Add"),
	}
	return strings.Join(lines, "\n")
}

// renderSplitForm renders the split-bill form for the selected friend.
func renderSplitForm(m *Model, f ledger.Friend) string {
	bill := m.currentBill()

	// Derived, read-only: blank until a bill value is entered.
	friendExpense := ""
	if bill.Total != 0 {
		friendExpense = fmt.Sprintf("%d", bill.PaidByFriend())
	}

	userChoice, friendChoice := choiceStyle, choiceStyle
	if m.payer == ledger.PayerUser {
		userChoice = choiceActiveStyle
	} else {
		friendChoice = choiceActiveStyle
	}
	payer := lipgloss.JoinHorizontal(lipgloss.Top,
		userChoice.Render("You"), " ", friendChoice.Render(f.Name))

	lines := []string{
		formTitleStyle.Render("SPLIT A BILL WITH " + strings.ToUpper(f.Name)),
		"",
		formLabel("Bill value", m.splitField == splitFieldBill),
		m.billInput.View(),
		formLabel("Your expense", m.splitField == splitFieldPaid),
		m.paidInput.View(),
		formLabelStyle.Render(f.Name + "'s expense"),
		formDisabledStyle.Render("› " + friendExpense),
		formLabel("Who is paying the bill?", m.splitField == splitFieldPayer),
		payer,
		"",
		buttonStyle.Render("Split bill"),
	}

	if bill.Ready() {
		preview := f
		preview.Balance += bill.Delta()
		lines = append(lines, "",
			historyDimStyle.Render("After this: ")+
				balanceStyle(preview.Balance).Render(preview.Summary(m.currency)))
	}

	return strings.Join(lines, "\n")
}

func formLabel(text string, active bool) string {
	if active {
		return formLabelActiveStyle.Render(text)
	}
	return formLabelStyle.Render(text)
}
