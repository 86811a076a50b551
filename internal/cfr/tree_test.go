package cfr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActionWireNames(t *testing.T) {
	names := map[Action]string{
		ActionCheck: "check",
		ActionBetS:  "bet_s",
		ActionBetM:  "bet_m",
		ActionBetL:  "bet_l",
		ActionFold:  "fold",
		ActionCall:  "call",
		ActionRaise: "raise",
	}
	for a, want := range names {
		require.Equal(t, want, a.String())
		parsed, err := ParseAction(want)
		require.NoError(t, err)
		require.Equal(t, a, parsed)
	}

	_, err := ParseAction("shove")
	require.Error(t, err)
}

func TestBetFractions(t *testing.T) {
	require.Equal(t, 0.33, ActionBetS.BetFraction())
	require.Equal(t, 0.66, ActionBetM.BetFraction())
	require.Equal(t, 1.0, ActionBetL.BetFraction())
	require.Equal(t, 0.0, ActionCheck.BetFraction())
	require.Equal(t, 0.0, ActionCall.BetFraction())
}

func TestRootState(t *testing.T) {
	s := rootState()
	require.Equal(t, nodeOOPRoot, s.node)
	require.Equal(t, 1.0, s.pot)
	require.Equal(t, 0.5, s.oopIn)
	require.Equal(t, 0.5, s.ipIn)
}

func TestCheckCheckReachesShowdown(t *testing.T) {
	s := step(rootState(), ActionCheck)
	require.Equal(t, nodeIPVsCheck, s.node)

	s = step(s, ActionCheck)
	require.Equal(t, nodeShowdown, s.node)
	require.Equal(t, 1.0, s.pot)
}

func TestBetCallAccounting(t *testing.T) {
	s := step(rootState(), ActionBetM)
	require.Equal(t, nodeIPVsBet, s.node)
	require.Equal(t, ActionBetM, s.bet)
	require.InDelta(t, 1.66, s.pot, 1e-9)
	require.InDelta(t, 1.16, s.oopIn, 1e-9)
	require.InDelta(t, 0.5, s.ipIn, 1e-9)

	s = step(s, ActionCall)
	require.Equal(t, nodeShowdown, s.node)
	require.InDelta(t, 2.32, s.pot, 1e-9)
	require.InDelta(t, s.oopIn, s.ipIn, 1e-9)
}

func TestRaiseMatchesThenAdds(t *testing.T) {
	// OOP bets a third pot, IP raises 2.5x the bet on top of a call.
	s := step(rootState(), ActionBetS)
	bet := s.oopIn - s.ipIn
	require.InDelta(t, 0.33, bet, 1e-9)

	s = step(s, ActionRaise)
	require.Equal(t, nodeOOPVsRaise, s.node)
	require.Equal(t, ActionBetS, s.bet)
	require.InDelta(t, 0.5+bet+bet*RaiseMult, s.ipIn, 1e-9)

	s = step(s, ActionCall)
	require.Equal(t, nodeShowdown, s.node)
	require.InDelta(t, s.oopIn, s.ipIn, 1e-9)
	require.InDelta(t, s.oopIn+s.ipIn, s.pot, 1e-9)
}

func TestCheckBetRaiseLine(t *testing.T) {
	s := step(rootState(), ActionCheck)
	s = step(s, ActionBetL)
	require.Equal(t, nodeOOPVsBet, s.node)
	require.Equal(t, ActionBetL, s.bet)

	s = step(s, ActionRaise)
	require.Equal(t, nodeIPVsRaise, s.node)

	s = step(s, ActionFold)
	require.Equal(t, nodeFolded, s.node)
	require.Equal(t, IP, s.folder)
}

func TestFoldValues(t *testing.T) {
	s := step(rootState(), ActionBetM)
	folded := step(s, ActionFold)
	require.Equal(t, nodeFolded, folded.node)
	require.Equal(t, IP, folded.folder)

	// IP folds its half-pot stake; OOP wins the pot net of its own chips.
	require.InDelta(t, -0.5, folded.foldValue(IP), 1e-9)
	require.InDelta(t, folded.pot-folded.oopIn, folded.foldValue(OOP), 1e-9)

	// The two payoffs are zero-sum against the starting stakes.
	require.InDelta(t, 0.0, folded.foldValue(IP)+folded.foldValue(OOP), 1e-9)
}

func TestPotTracksInvestment(t *testing.T) {
	lines := [][]Action{
		{ActionCheck, ActionCheck},
		{ActionBetS, ActionCall},
		{ActionBetL, ActionRaise, ActionCall},
		{ActionCheck, ActionBetM, ActionCall},
		{ActionCheck, ActionBetM, ActionRaise, ActionCall},
	}
	for _, line := range lines {
		s := rootState()
		for _, a := range line {
			s = step(s, a)
		}
		require.Equal(t, nodeShowdown, s.node)
		require.InDelta(t, s.oopIn+s.ipIn, s.pot, 1e-9)
	}
}

// Exhaustively walk the tree: every legal line must terminate within
// four actions.
func TestTreeDepthBounded(t *testing.T) {
	var walk func(t *testing.T, s state, depth int)
	walk = func(t *testing.T, s state, depth int) {
		if s.node == nodeShowdown || s.node == nodeFolded {
			return
		}
		require.Less(t, depth, 4, "line exceeds depth bound")
		acts := s.node.actions()
		require.NotEmpty(t, acts)
		for _, a := range acts {
			walk(t, step(s, a), depth+1)
		}
	}
	walk(t, rootState(), 0)
}

func TestActorAlternation(t *testing.T) {
	require.Equal(t, OOP, nodeOOPRoot.actor())
	require.Equal(t, IP, nodeIPVsCheck.actor())
	require.Equal(t, IP, nodeIPVsBet.actor())
	require.Equal(t, OOP, nodeOOPVsBet.actor())
	require.Equal(t, OOP, nodeOOPVsRaise.actor())
	require.Equal(t, IP, nodeIPVsRaise.actor())
}

func TestRoleOther(t *testing.T) {
	require.Equal(t, IP, OOP.Other())
	require.Equal(t, OOP, IP.Other())
}
