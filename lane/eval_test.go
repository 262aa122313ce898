package lane

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransitionScoreDeathAbsorbs(t *testing.T) {
	t.Run("death dominates any other gain", func(t *testing.T) {
		before := NewLaneState()
		before.FlashCD = 300 // No flash held
		after := before.Copy()
		after.HP = 0
		after.Gold += 5000 // Huge gains that must not matter
		after.EnemyMinions = 0
		after.Level = 10

		score := TransitionScore(&before, &after)

		require.Equal(t, DeathPenalty, score, "Death returns the fixed penalty regardless of deltas")
	})

	t.Run("dying with flash in hand costs extra", func(t *testing.T) {
		before := NewLaneState() // Flash ready
		after := before.Copy()
		after.HP = 0

		score := TransitionScore(&before, &after)

		require.Equal(t, DeathPenalty+FlashHeldPenalty, score)
	})
}

func TestTransitionScoreGoldAndKill(t *testing.T) {
	before := NewLaneState()
	after := before.Copy()
	after.Gold += 100

	base := TransitionScore(&before, &after)
	require.InDelta(t, 5.0, base, 0.01, "100 gold is worth 5 points")

	after.EnemyHP = 0
	withKill := TransitionScore(&before, &after)
	require.Greater(t, withKill, base+20, "A kill adds a large bonus on top of gold")
}

func TestTransitionScoreTradeTerm(t *testing.T) {
	before := NewLaneState()

	goodTrade := before.Copy()
	goodTrade.HP -= 60       // Lost 10%
	goodTrade.EnemyHP -= 240 // They lost 40%

	badTrade := before.Copy()
	badTrade.HP -= 240
	badTrade.EnemyHP -= 60

	require.Greater(t, TransitionScore(&before, &goodTrade), TransitionScore(&before, &badTrade),
		"Winning the health trade must outscore losing it")
}

func TestTransitionScoreFlashBurn(t *testing.T) {
	before := NewLaneState()

	burned := before.Copy()
	burned.FlashCD = 300

	burnedForKill := burned.Copy()
	burnedForKill.EnemyHP = 0

	require.Less(t, TransitionScore(&before, &burned), 0.0, "Flash for nothing is terrible")
	require.Greater(t, TransitionScore(&before, &burnedForKill), TransitionScore(&before, &burned),
		"Flash that secured a kill is far more acceptable")
}

func TestTransitionScoreOOM(t *testing.T) {
	before := NewLaneState()
	after := before.Copy()
	after.Mana = 10 // Below the 15% threshold

	noOOM := before.Copy()
	noOOM.Mana = 200

	require.Less(t, TransitionScore(&before, &after), TransitionScore(&before, &noOOM),
		"Crossing below the mana threshold is penalized")
}

func TestStaticEvaluate(t *testing.T) {
	t.Run("even lane is near neutral", func(t *testing.T) {
		s := NewLaneState()
		s.JunglerLocation = JunglerTopside
		s.JunglerLastSeen = 0

		score := StaticEvaluate(&s)

		require.InDelta(t, s.Gold*0.01-1.0, score, 2.0, "Parity leaves only the gold term and residual risk")
	})

	t.Run("winning position scores above losing position", func(t *testing.T) {
		winning := NewLaneState()
		winning.Level = 8
		winning.EnemyLevel = 6
		winning.EnemyHP = 200
		winning.EnemyFlashCDEst = 200
		winning.Wave = WaveFrozenNearMe

		losing := NewLaneState()
		losing.HP = 150
		losing.Level = 5
		losing.EnemyLevel = 7
		losing.FlashCD = 250

		require.Greater(t, StaticEvaluate(&winning), StaticEvaluate(&losing))
	})
}
