// Package script drives a Session from a line-oriented action script.
//
// Example:
//
//	# lunch with Clark
//	select clark
//	split 50 20 user
//	toggle
//	add Mary Jane image=https://example.com/mj.png
package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Mr-Dark-debug/splitr/internal/database"
	"github.com/Mr-Dark-debug/splitr/internal/ledger"
	"github.com/Mr-Dark-debug/splitr/pkg/timeutil"
)

// Verb names a script action.
type Verb string

const (
	VerbToggle Verb = "toggle"
	VerbAdd    Verb = "add"
	VerbSelect Verb = "select"
	VerbSplit  Verb = "split"
)

// Action is one parsed script line.
type Action struct {
	Verb Verb
	// Number is the 1-based line the action came from.
	Number int

	Name   string // add
	Image  string // add; empty means the avatar base
	Target string // select: friend ID or name
	Bill   ledger.Bill
}

// Parse reads actions from r. Blank lines and lines starting with '#'
// are skipped.
func Parse(r io.Reader) ([]Action, error) {
	var actions []Action

	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		a, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		a.Number = n
		actions = append(actions, a)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return actions, nil
}

func parseLine(line string) (Action, error) {
	fields := strings.Fields(line)
	verb := Verb(strings.ToLower(fields[0]))
	args := fields[1:]

	switch verb {
	case VerbToggle:
		if len(args) != 0 {
			return Action{}, fmt.Errorf("toggle takes no arguments")
		}
		return Action{Verb: verb}, nil

	case VerbAdd:
		a := Action{Verb: verb}
		var name []string
		for _, arg := range args {
			if v, ok := strings.CutPrefix(arg, "image="); ok {
				a.Image = v
				continue
			}
			name = append(name, arg)
		}
		a.Name = strings.Join(name, " ")
		return a, nil

	case VerbSelect:
		if len(args) == 0 {
			return Action{}, fmt.Errorf("select needs a friend name or id")
		}
		return Action{Verb: verb, Target: strings.Join(args, " ")}, nil

	case VerbSplit:
		if len(args) != 3 {
			return Action{}, fmt.Errorf("split needs <total> <paid-by-user> <user|friend>")
		}
		total, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return Action{}, fmt.Errorf("parsing total %q: %w", args[0], err)
		}
		paid, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return Action{}, fmt.Errorf("parsing paid-by-user %q: %w", args[1], err)
		}
		payer, err := ledger.ParsePayer(args[2])
		if err != nil {
			return Action{}, err
		}
		return Action{Verb: verb, Bill: ledger.Bill{Total: total, PaidByUser: paid, Payer: payer}}, nil

	default:
		return Action{}, fmt.Errorf("unknown action %q", fields[0])
	}
}

// Runner applies actions to a Session and journals the resulting events.
type Runner struct {
	store database.Store
	now   func() int64
}

// NewRunner creates a runner that records into store.
func NewRunner(store database.Store) *Runner {
	return &Runner{store: store, now: timeutil.NowNano}
}

// Result summarizes a run.
type Result struct {
	Session    ledger.Session
	Applied    int
	Suppressed int
}

// Run applies actions in order. Suppressed submissions are counted, not
// treated as errors. The run stops at the first journal failure or when
// ctx is done, returning the session reached so far.
func (r *Runner) Run(ctx context.Context, s ledger.Session, actions []Action) (Result, error) {
	res := Result{Session: s}

	for _, a := range actions {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("script interrupted before line %d: %w", a.Number, err)
		}

		var (
			ev ledger.Event
			ok = true
		)
		switch a.Verb {
		case VerbToggle:
			res.Session = res.Session.ToggleAddFriend()

		case VerbAdd:
			image := a.Image
			if image == "" {
				image = res.Session.AvatarBase()
			}
			res.Session, ev, ok = res.Session.AddFriend(a.Name, image)

		case VerbSelect:
			id, found := Resolve(res.Session, a.Target)
			if !found {
				slog.Warn("select: no such friend", "line", a.Number, "target", a.Target)
				ok = false
				break
			}
			res.Session = res.Session.Select(id)

		case VerbSplit:
			res.Session, ev, ok = res.Session.SplitBill(a.Bill)
		}

		if !ok {
			res.Suppressed++
			slog.Debug("action suppressed", "line", a.Number, "action", string(a.Verb))
			continue
		}
		res.Applied++

		if ev.Kind != "" {
			if err := database.RecordEvent(r.store, ev, r.now()); err != nil {
				return res, fmt.Errorf("journaling line %d: %w", a.Number, err)
			}
			slog.Info("event recorded", "line", a.Number, "kind", string(ev.Kind),
				"friend", ev.Friend.Name, "balance", ev.Friend.Balance)
		}
	}

	return res, nil
}

// Resolve finds a friend by exact ID first, then by NameKey. The first
// name match wins, since names are not unique.
func Resolve(s ledger.Session, target string) (string, bool) {
	friends := s.Friends()
	for _, f := range friends {
		if f.ID == target {
			return f.ID, true
		}
	}
	key := ledger.NameKey(target)
	for _, f := range friends {
		if ledger.NameKey(f.Name) == key {
			return f.ID, true
		}
	}
	return "", false
}
