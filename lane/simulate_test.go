package lane

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestAdvancePassiveTick(t *testing.T) {
	s := NewLaneState()
	s.QCD = 30
	s.FlashCD = 10
	s.Mana = 100
	s.GameTime = 200 // Past the gold start
	s.JunglerLocation = JunglerTopside
	s.JunglerLastSeen = 0 // Zero gank risk keeps the tick deterministic

	next := Advance(s, FarmSafe, PolicyAverage, rand.New(rand.NewSource(1)))

	require.Equal(t, 220.0, next.GameTime, "Time should advance one tick")
	require.Equal(t, 10.0, next.QCD, "Cooldowns should decay by the tick")
	require.Equal(t, 0.0, next.FlashCD, "Cooldowns should floor at zero")
	require.Greater(t, next.Mana, 100.0, "Mana should regenerate")
	require.Greater(t, next.Gold, s.Gold+3*CSGoldAvg-1, "Passive gold plus CS gold should accrue")
	require.Equal(t, s.JunglerLastSeen+TickSeconds, next.JunglerLastSeen)
	require.Equal(t, s.DragonTimer-TickSeconds, next.DragonTimer)
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	s := NewLaneState()
	before := s

	_ = Advance(s, AllIn, PolicyOptimal, rand.New(rand.NewSource(7)))

	require.Equal(t, before, s, "Advance must copy, never mutate the caller's state")
}

func TestAdvanceWaveProgression(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	s := NewLaneState()
	s.Wave = WaveFrozenNearMe

	order := []WavePosition{WavePushingToMe, WaveMiddle, WaveSlowPushToThem, WaveCrashed, WaveCrashed}
	for _, want := range order {
		s = Advance(s, FarmPush, PolicyAverage, rng)
		require.Equal(t, want, s.Wave, "FarmPush should walk the forward progression, crashed is terminal")
	}
}

func TestAdvanceRecall(t *testing.T) {
	s := NewLaneState()
	s.HP = 100
	s.Mana = 20
	s.Gold = 1200
	s.JunglerLocation = JunglerTopside
	s.JunglerLastSeen = 0 // No gank roll so the restored HP is observable
	power := s.CombatPower

	next := Advance(s, Recall, PolicyAverage, rand.New(rand.NewSource(3)))

	require.Equal(t, next.HPMax, next.HP, "Recall fully restores health")
	require.Equal(t, next.ManaMax, next.Mana, "Recall fully restores mana")
	require.Greater(t, next.CombatPower, power, "Spent gold becomes permanent combat power")
	require.Equal(t, WavePushingToMe, next.Wave, "The wave pushes in during a recall")
	require.Equal(t, 6, next.EnemyMinions, "A fresh wave arrives while away")
}

func TestAdvanceWardResetsVision(t *testing.T) {
	s := NewLaneState()
	s.JunglerLastSeen = 120

	next := Advance(s, WardRiver, PolicyAverage, rand.New(rand.NewSource(4)))

	require.Equal(t, 0.0, next.JunglerLastSeen, "Warding refreshes jungler vision")
}

func TestAdvanceBoundsInvariant(t *testing.T) {
	// Any action sequence from any valid start keeps health and resource in
	// [0, max] and cooldowns non-negative
	rng := rand.New(rand.NewSource(99))
	s := NewLaneState()

	for i := 0; i < 500; i++ {
		legal := LegalActions(&s)
		action := legal[rng.Intn(len(legal))]
		s = Advance(s, action, PolicyOptimal, rng)

		require.GreaterOrEqual(t, s.HP, 0.0)
		require.LessOrEqual(t, s.HP, s.HPMax)
		require.GreaterOrEqual(t, s.Mana, 0.0)
		require.LessOrEqual(t, s.Mana, s.ManaMax)
		require.GreaterOrEqual(t, s.EnemyHP, 0.0)
		for _, cd := range []float64{s.QCD, s.WCD, s.ECD, s.RCD, s.FlashCD, s.Summoner2CD} {
			require.GreaterOrEqual(t, cd, 0.0, "Cooldowns never go negative")
		}

		if s.HP <= 0 {
			s = NewLaneState() // Restart from a fresh lane after a death
		}
	}
}

func TestAdvanceDeterminism(t *testing.T) {
	s := NewLaneState()

	a := Advance(s, ExtendedTrade, PolicyAverage, rand.New(rand.NewSource(42)))
	b := Advance(s, ExtendedTrade, PolicyAverage, rand.New(rand.NewSource(42)))

	require.Equal(t, a, b, "Identical seeds must reproduce identical trajectories")
}

func TestRoamConversionScalesWithLevel(t *testing.T) {
	payout := func(level int, seed uint64) float64 {
		rng := rand.New(rand.NewSource(seed))
		total := 0.0
		for i := 0; i < 2000; i++ {
			s := NewLaneState()
			s.Level = level
			before := s.Gold
			roamLane(&s, rng)
			total += s.Gold - before
		}
		return total / 2000
	}

	early := payout(1, 11)
	withUlt := payout(9, 11)

	require.Less(t, early, 60.0, "A pre-6 roam should average less than a wave of CS")
	require.Greater(t, withUlt, 2*early, "Ultimate access should make roams convert far more often")
}

func TestAdvancePhaseLabel(t *testing.T) {
	s := NewLaneState()
	s.GameTime = 830

	next := Advance(s, FarmSafe, PolicyAverage, rand.New(rand.NewSource(5)))
	require.Equal(t, PhaseMid, next.Phase, "840s crosses into the mid game")

	s.GameTime = 1490
	next = Advance(s, FarmSafe, PolicyAverage, rand.New(rand.NewSource(5)))
	require.Equal(t, PhaseLate, next.Phase, "1500s crosses into the late game")
}
