// Package tui implements the splitr terminal user interface.
//
// Built with Charmbracelet's BubbleTea, Lipgloss and Bubbles. The Model
// owns a ledger.Session and swaps it for the snapshot each transition
// returns; journal writes run as tea.Cmds.
//
// Component architecture:
//
//	model.go    root model, message routing, Init/Update
//	keys.go     key handling per phase
//	theme.go    centralized color + style definitions
//	header.go   top bar with totals, footer with hints
//	roster.go   friend list with balances
//	forms.go    add-friend and split-bill forms
//	history.go  journal of splits this session
//	helpers.go  input construction, amount parsing, truncation
package tui
