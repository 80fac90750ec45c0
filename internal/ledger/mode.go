package ledger

// Phase is the shell's visible state. At most one form is open at a time.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAddingFriend
	PhaseSplittingBill
)

func (p Phase) String() string {
	switch p {
	case PhaseAddingFriend:
		return "adding-friend"
	case PhaseSplittingBill:
		return "splitting-bill"
	default:
		return "idle"
	}
}

// Mode couples a Phase with the Selection it implies. A selection is
// present exactly when the phase is PhaseSplittingBill; the transition
// methods are the only way to build a non-idle Mode.
type Mode struct {
	phase Phase
	sel   Selection
}

// Phase returns the current phase.
func (m Mode) Phase() Phase { return m.phase }

// Selection returns the tracked selection.
func (m Mode) Selection() Selection { return m.sel }

// ToggleAddFriend closes the add-friend form if it is open and opens it
// otherwise. Opening it drops any selection.
func (m Mode) ToggleAddFriend() Mode {
	if m.phase == PhaseAddingFriend {
		return Mode{phase: PhaseIdle}
	}
	return Mode{phase: PhaseAddingFriend}
}

// Select toggles the selection of id and closes the add-friend form.
func (m Mode) Select(id string) Mode {
	sel := m.sel.Select(id)
	if _, ok := sel.ID(); ok {
		return Mode{phase: PhaseSplittingBill, sel: sel}
	}
	return Mode{phase: PhaseIdle}
}

// Idle returns the mode with both forms closed and nothing selected.
func (m Mode) Idle() Mode {
	return Mode{phase: PhaseIdle, sel: m.sel.Clear()}
}
