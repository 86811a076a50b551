// Package cfr solves one texture's abstracted postflop betting game
// with CFR+ regret minimization, producing averaged mixed strategies
// per role and bucket.
package cfr

import "fmt"

// Action is one move in the abstracted betting tree.
type Action uint8

const (
	ActionCheck Action = iota
	ActionBetS
	ActionBetM
	ActionBetL
	ActionFold
	ActionCall
	ActionRaise
)

// String returns the wire name used in exported tables.
func (a Action) String() string {
	switch a {
	case ActionCheck:
		return "check"
	case ActionBetS:
		return "bet_s"
	case ActionBetM:
		return "bet_m"
	case ActionBetL:
		return "bet_l"
	case ActionFold:
		return "fold"
	case ActionCall:
		return "call"
	case ActionRaise:
		return "raise"
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// ParseAction maps a wire name back to an Action.
func ParseAction(s string) (Action, error) {
	for _, a := range []Action{ActionCheck, ActionBetS, ActionBetM, ActionBetL, ActionFold, ActionCall, ActionRaise} {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// BetFraction returns the pot fraction for a bet-sizing action, or 0
// for any non-bet action.
func (a Action) BetFraction() float64 {
	switch a {
	case ActionBetS:
		return 0.33
	case ActionBetM:
		return 0.66
	case ActionBetL:
		return 1.0
	}
	return 0
}

// IsBet reports whether the action puts fresh chips in as an opening bet.
func (a Action) IsBet() bool {
	return a == ActionBetS || a == ActionBetM || a == ActionBetL
}

// RaiseMult sizes a raise as a multiple of the bet being raised. The
// raiser first matches the bet, then adds this multiple on top.
const RaiseMult = 2.5

// Role identifies a seat in the two-player subgame.
type Role uint8

const (
	// OOP acts first on every street.
	OOP Role = iota
	// IP acts last.
	IP
)

func (r Role) String() string {
	if r == OOP {
		return "OOP"
	}
	return "IP"
}

// Other returns the opposing role.
func (r Role) Other() Role {
	if r == OOP {
		return IP
	}
	return OOP
}
