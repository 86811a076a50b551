package cfr

// node enumerates the decision points and terminals of the fixed
// betting tree. One raise per line at most, so the tree is statically
// bounded at four actions deep:
//
//	OOP: check | bet          (nodeOOPRoot)
//	  check → IP: check | bet (nodeIPVsCheck)
//	    check → showdown
//	    bet → OOP: fold | call | raise (nodeOOPVsBet)
//	      raise → IP: fold | call      (nodeIPVsRaise)
//	  bet → IP: fold | call | raise    (nodeIPVsBet)
//	    raise → OOP: fold | call       (nodeOOPVsRaise)
type node uint8

const (
	nodeOOPRoot node = iota
	nodeIPVsCheck
	nodeIPVsBet
	nodeOOPVsBet
	nodeOOPVsRaise
	nodeIPVsRaise

	numDecisionNodes

	nodeShowdown
	nodeFolded
)

// numBetVariants is the number of bet sizes an info set key can carry.
// Nodes before any bet all share variant 0.
const numBetVariants = 3

// maxActions is the widest action menu at any decision node.
const maxActions = 4

var (
	openActions        = []Action{ActionCheck, ActionBetS, ActionBetM, ActionBetL}
	facingBetActions   = []Action{ActionFold, ActionCall, ActionRaise}
	facingRaiseActions = []Action{ActionFold, ActionCall}
)

// actions returns the legal action menu at a decision node.
func (n node) actions() []Action {
	switch n {
	case nodeOOPRoot, nodeIPVsCheck:
		return openActions
	case nodeOOPVsBet, nodeIPVsBet:
		return facingBetActions
	case nodeOOPVsRaise, nodeIPVsRaise:
		return facingRaiseActions
	}
	return nil
}

// actor returns who acts at a decision node.
func (n node) actor() Role {
	switch n {
	case nodeOOPRoot, nodeOOPVsBet, nodeOOPVsRaise:
		return OOP
	}
	return IP
}

// state is one point in a traversal: the tree position plus the chip
// accounting needed to value terminals. Invested amounts include the
// half-pot stake each player starts the subgame with, so
// pot == oopIn + ipIn always holds.
type state struct {
	node   node
	bet    Action // sizing of the outstanding bet, keys the info set
	folder Role   // valid only at nodeFolded
	pot    float64
	oopIn  float64
	ipIn   float64
}

// rootState starts a traversal with a normalized pot of 1, half
// contributed by each player.
func rootState() state {
	return state{node: nodeOOPRoot, pot: 1.0, oopIn: 0.5, ipIn: 0.5}
}

func (s state) invested(r Role) float64 {
	if r == OOP {
		return s.oopIn
	}
	return s.ipIn
}

func (s *state) addChips(r Role, amount float64) {
	s.pot += amount
	if r == OOP {
		s.oopIn += amount
	} else {
		s.ipIn += amount
	}
}

// owed is how much the role must add to match the opponent.
func (s state) owed(r Role) float64 {
	return s.invested(r.Other()) - s.invested(r)
}

// step applies one legal action and returns the successor state. The
// transition table is total over the legal (node, action) pairs;
// illegal pairs are unreachable because traversal only iterates
// node.actions().
func step(s state, a Action) state {
	actor := s.node.actor()
	switch s.node {
	case nodeOOPRoot:
		if a == ActionCheck {
			s.node = nodeIPVsCheck
			return s
		}
		s.addChips(actor, s.pot*a.BetFraction())
		s.node = nodeIPVsBet
		s.bet = a
		return s

	case nodeIPVsCheck:
		if a == ActionCheck {
			s.node = nodeShowdown
			return s
		}
		s.addChips(actor, s.pot*a.BetFraction())
		s.node = nodeOOPVsBet
		s.bet = a
		return s

	case nodeOOPVsBet, nodeIPVsBet:
		switch a {
		case ActionFold:
			s.node = nodeFolded
			s.folder = actor
		case ActionCall:
			s.addChips(actor, s.owed(actor))
			s.node = nodeShowdown
		case ActionRaise:
			// Match the outstanding bet, then raise by a fixed
			// multiple of it.
			outstanding := s.owed(actor)
			s.addChips(actor, outstanding+outstanding*RaiseMult)
			if actor == OOP {
				s.node = nodeIPVsRaise
			} else {
				s.node = nodeOOPVsRaise
			}
		}
		return s

	case nodeOOPVsRaise, nodeIPVsRaise:
		if a == ActionFold {
			s.node = nodeFolded
			s.folder = actor
			return s
		}
		s.addChips(actor, s.owed(actor))
		s.node = nodeShowdown
		return s
	}
	return s
}

// foldValue is the terminal payoff for the given role when someone has
// folded: the folder forfeits their investment, the winner takes the
// pot net of their own investment.
func (s state) foldValue(r Role) float64 {
	if s.folder == r {
		return -s.invested(r)
	}
	return s.pot - s.invested(r)
}
