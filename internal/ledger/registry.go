package ledger

// Registry is the ordered list of friends. The zero value is an empty
// registry ready to use.
type Registry struct {
	friends []Friend
}

// NewRegistry builds a registry holding a copy of friends, in order.
func NewRegistry(friends ...Friend) Registry {
	return Registry{friends: cloneFriends(friends)}
}

// Add returns a registry with f appended at the end. The registry does not
// check identities; callers must supply a unique ID.
func (r Registry) Add(f Friend) Registry {
	next := make([]Friend, len(r.friends), len(r.friends)+1)
	copy(next, r.friends)
	return Registry{friends: append(next, f)}
}

// AdjustBalance returns a registry in which the friend matching id has
// balance+delta. Every other record is carried over unchanged. When no
// friend matches the registry is returned as is.
func (r Registry) AdjustBalance(id string, delta int64) Registry {
	idx := r.indexOf(id)
	if idx < 0 {
		return r
	}
	next := cloneFriends(r.friends)
	next[idx].Balance += delta
	return Registry{friends: next}
}

// Lookup returns the friend with the given identity.
func (r Registry) Lookup(id string) (Friend, bool) {
	idx := r.indexOf(id)
	if idx < 0 {
		return Friend{}, false
	}
	return r.friends[idx], true
}

// Friends returns a copy of the roster in insertion order.
func (r Registry) Friends() []Friend {
	return cloneFriends(r.friends)
}

// Len returns the number of friends.
func (r Registry) Len() int {
	return len(r.friends)
}

func (r Registry) indexOf(id string) int {
	for i := range r.friends {
		if r.friends[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneFriends(in []Friend) []Friend {
	if len(in) == 0 {
		return nil
	}
	out := make([]Friend, len(in))
	copy(out, in)
	return out
}
