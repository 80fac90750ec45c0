package ledger

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// DefaultAvatarBase is the avatar service prefix. A friend submitted with
// exactly this image gets their identity appended to it.
const DefaultAvatarBase = "https://i.pravatar.cc/48?u="

// EventKind discriminates Events.
type EventKind string

const (
	EventFriendAdded EventKind = "friend_added"
	EventBillSplit   EventKind = "bill_split"
)

// Event describes a registry change produced by a Session transition.
// Bill, Delta and BalanceAfter are only set for EventBillSplit.
type Event struct {
	Kind         EventKind `json:"kind"`
	Friend       Friend    `json:"friend"`
	Bill         Bill      `json:"bill"`
	Delta        int64     `json:"delta"`
	BalanceAfter int64     `json:"balance_after"`
}

// Session is the full shell state: the roster plus the form/selection
// mode. Transitions return a new Session and leave the receiver intact.
type Session struct {
	registry   Registry
	mode       Mode
	newID      func() string
	avatarBase string
}

// Option configures a new Session.
type Option func(*Session)

// WithFriends seeds the roster.
func WithFriends(friends ...Friend) Option {
	return func(s *Session) { s.registry = NewRegistry(friends...) }
}

// WithIDGenerator replaces the identity source. The generator must never
// repeat a value.
func WithIDGenerator(gen func() string) Option {
	return func(s *Session) { s.newID = gen }
}

// WithAvatarBase sets the avatar prefix used for default images.
func WithAvatarBase(base string) Option {
	return func(s *Session) { s.avatarBase = base }
}

// NewSession returns an idle session with an empty roster unless options
// say otherwise.
func NewSession(opts ...Option) Session {
	s := Session{
		newID:      uuid.NewString,
		avatarBase: DefaultAvatarBase,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Friends returns the roster in order.
func (s Session) Friends() []Friend { return s.registry.Friends() }

// Registry returns the roster snapshot.
func (s Session) Registry() Registry { return s.registry }

// Mode returns the current mode.
func (s Session) Mode() Mode { return s.mode }

// Phase returns the current phase.
func (s Session) Phase() Phase { return s.mode.Phase() }

// AddFriendOpen reports whether the add-friend form is showing.
func (s Session) AddFriendOpen() bool { return s.mode.Phase() == PhaseAddingFriend }

// AvatarBase returns the prefix pre-filled into the image field.
func (s Session) AvatarBase() string { return s.avatarBase }

// Selected returns the friend the split-bill form is open for.
func (s Session) Selected() (Friend, bool) {
	id, ok := s.mode.Selection().ID()
	if !ok {
		return Friend{}, false
	}
	return s.registry.Lookup(id)
}

// ToggleAddFriend opens or closes the add-friend form.
func (s Session) ToggleAddFriend() Session {
	s.mode = s.mode.ToggleAddFriend()
	return s
}

// AddFriend appends a new friend with a fresh identity and a zero balance,
// then closes the form. The submission is suppressed (ok=false, session
// unchanged) when the add-friend form is not open or the name or image is
// blank.
func (s Session) AddFriend(name, image string) (next Session, ev Event, ok bool) {
	if s.mode.Phase() != PhaseAddingFriend {
		slog.Debug("add friend suppressed", "phase", s.mode.Phase().String())
		return s, Event{}, false
	}
	name = strings.TrimSpace(name)
	image = strings.TrimSpace(image)
	if name == "" || image == "" {
		slog.Debug("add friend suppressed", "name_empty", name == "", "image_empty", image == "")
		return s, Event{}, false
	}

	id := s.newID()
	if image == s.avatarBase {
		image = s.avatarBase + id
	}
	f := Friend{ID: id, Name: name, Image: image}

	s.registry = s.registry.Add(f)
	s.mode = s.mode.Idle()
	return s, Event{Kind: EventFriendAdded, Friend: f}, true
}

// Select toggles the selection of the friend with the given identity and
// closes the add-friend form. Unknown identities are ignored.
func (s Session) Select(id string) Session {
	if _, ok := s.registry.Lookup(id); !ok {
		return s
	}
	s.mode = s.mode.Select(id)
	return s
}

// SplitBill applies bill to the selected friend and clears the selection.
// It is a no-op (ok=false) when nothing is selected or the bill is not
// Ready.
func (s Session) SplitBill(bill Bill) (next Session, ev Event, ok bool) {
	if s.mode.Phase() != PhaseSplittingBill {
		return s, Event{}, false
	}
	if !bill.Ready() {
		slog.Debug("split bill suppressed", "total", bill.Total, "paid_by_user", bill.PaidByUser)
		return s, Event{}, false
	}
	id, _ := s.mode.Selection().ID()

	delta := bill.Delta()
	s.registry = s.registry.AdjustBalance(id, delta)
	s.mode = s.mode.Idle()

	f, _ := s.registry.Lookup(id)
	return s, Event{
		Kind:         EventBillSplit,
		Friend:       f,
		Bill:         bill,
		Delta:        delta,
		BalanceAfter: f.Balance,
	}, true
}

// SeedFriends returns the starter roster.
func SeedFriends() []Friend {
	return []Friend{
		{ID: "118836", Name: "Clark", Image: DefaultAvatarBase + "118836", Balance: -7},
		{ID: "933372", Name: "Sarah", Image: DefaultAvatarBase + "933372", Balance: 20},
		{ID: "499476", Name: "Anthony", Image: DefaultAvatarBase + "499476", Balance: 0},
	}
}
