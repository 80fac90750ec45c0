package ledger

// Selection tracks at most one selected friend identity.
type Selection struct {
	id  string
	set bool
}

// Select toggles: choosing the already selected identity clears the
// selection, anything else replaces it.
func (s Selection) Select(id string) Selection {
	if s.set && s.id == id {
		return Selection{}
	}
	return Selection{id: id, set: true}
}

// Clear drops the selection.
func (s Selection) Clear() Selection {
	return Selection{}
}

// ID returns the selected identity, if any.
func (s Selection) ID() (string, bool) {
	return s.id, s.set
}

// Is reports whether id is the current selection.
func (s Selection) Is(id string) bool {
	return s.set && s.id == id
}
