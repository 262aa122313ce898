package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fullDraft(prefix string) []DraftEntry {
	return []DraftEntry{
		{ChampionID: prefix + "-top", Role: RoleTop},
		{ChampionID: prefix + "-jungle", Role: RoleJungle},
		{ChampionID: prefix + "-mid", Role: RoleMid},
		{ChampionID: prefix + "-adc", Role: RoleADC},
		{ChampionID: prefix + "-support", Role: RoleSupport},
	}
}

func newTestMatch() *MatchState {
	return NewMatchState("T1", "GEN", fullDraft("blue"), fullDraft("red"), "26.03")
}

func TestNewMatchStateDefaults(t *testing.T) {
	state := newTestMatch()

	require.Equal(t, 11, state.Blue.TowersStanding)
	require.Equal(t, 11, state.Red.TowersStanding)
	require.Len(t, state.Blue.Players, 5)
	require.Len(t, state.Red.Players, 5)
	require.Equal(t, 300.0, state.NextDragonSpawn)
	require.Equal(t, 1200.0, state.NextBaronSpawn)

	for _, p := range state.allPlayers() {
		require.Equal(t, 1, p.Level)
		require.Equal(t, 500.0, p.Gold)
		require.True(t, p.Alive)
	}
}

func TestRunProducesCompleteResult(t *testing.T) {
	sim := NewSimulator(WithSeed(42))
	result := sim.Run(newTestMatch())

	require.Contains(t, []string{"blue", "red"}, result.Winner)
	require.NotEmpty(t, result.MatchID)
	require.Greater(t, result.DurationSeconds, 0.0)
	require.LessOrEqual(t, result.DurationSeconds, float64(MaxMatchSeconds))
	require.GreaterOrEqual(t, result.BlueWinProbability, 0.08)
	require.LessOrEqual(t, result.BlueWinProbability, 0.92)
	require.Len(t, result.Scoreboard, 10)

	// One gold snapshot per simulated minute.
	require.Len(t, result.GoldCurve, int(result.DurationSeconds/60))
}

func TestRunDeterministicUnderSeed(t *testing.T) {
	a := NewSimulator(WithSeed(7)).Run(newTestMatch())
	b := NewSimulator(WithSeed(7)).Run(newTestMatch())

	require.Equal(t, a.Winner, b.Winner)
	require.Equal(t, a.DurationSeconds, b.DurationSeconds)
	require.Equal(t, a.BlueWinProbability, b.BlueWinProbability)
	require.Equal(t, len(a.Timeline), len(b.Timeline))
	require.Equal(t, a.BlueKDA, b.BlueKDA)
	require.Equal(t, a.RedKDA, b.RedKDA)
}

func TestHeraldCapturedInsideWindow(t *testing.T) {
	captures := 0
	for seed := uint64(1); seed <= 40; seed++ {
		state := newTestMatch()
		result := NewSimulator(WithSeed(seed)).Run(state)

		require.LessOrEqual(t, state.Blue.HeraldsTaken+state.Red.HeraldsTaken, 1,
			"Herald spawns once per game")

		for _, ev := range result.Timeline {
			if ev.Type != EventHerald {
				continue
			}
			captures++
			require.GreaterOrEqual(t, ev.Time, 840.0, "Herald is not up before 14:00")
			require.Less(t, ev.Time, 1260.0, "Herald leaves when baron spawns")
		}
	}

	require.Greater(t, captures, 0, "Herald should be contested across this many games")
}

func TestKillsMirrorDeaths(t *testing.T) {
	result := NewSimulator(WithSeed(99)).Run(newTestMatch())

	// Every kill credits one side and buries the other.
	require.Equal(t, result.BlueKDA.Kills, result.RedKDA.Deaths)
	require.Equal(t, result.RedKDA.Kills, result.BlueKDA.Deaths)
}

func TestIncomeGrowsGoldAndLevels(t *testing.T) {
	state := newTestMatch()
	run := &matchRun{state: state}

	for i := 0; i < 10; i++ {
		state.GameTime += 60
		run.income()
	}

	mid := state.Blue.PlayerByRole(RoleMid)
	support := state.Blue.PlayerByRole(RoleSupport)

	// 10 minutes of passive + CS gold for a mid laner.
	require.InDelta(t, 500+10*(PassiveGoldPerMin+7.5*20), mid.Gold, 0.01)
	require.Equal(t, 70, mid.CS)
	require.Greater(t, mid.Level, support.Level, "mid outlevels support on XP income")
}

func TestAllocateSkillFollowsMaxOrder(t *testing.T) {
	p := newPlayer(DraftEntry{ChampionID: "x", Role: RoleMid})

	order := []string{"Q", "Q", "Q", "Q", "Q", "R", "W"}
	for i, want := range order {
		p.Level = i + 1
		require.Equal(t, want, allocateSkill(p), "skill at level %d", i+1)
	}
	require.Equal(t, 1, p.SkillPoints["R"])
	require.Equal(t, 5, p.SkillPoints["Q"])
	require.Equal(t, 1, p.SkillPoints["W"])
}

func TestCombatPowerScalesWithLevelAndGold(t *testing.T) {
	state := newTestMatch()
	run := &matchRun{state: state}
	run.updateCombatPower()

	mid := state.Blue.PlayerByRole(RoleMid)
	low := mid.CombatPower

	mid.Level = 11
	mid.Gold = 6000
	run.updateCombatPower()
	require.Greater(t, mid.CombatPower, low)
}

func TestBlueWinProbabilityFavorsLead(t *testing.T) {
	state := newTestMatch()
	state.Winner = "blue"
	for _, p := range state.Blue.Players {
		p.Gold += 2000
		p.Kills = 2
	}
	state.Red.TowersStanding = 6

	wp := blueWinProbability(state)
	require.Greater(t, wp, 0.5)
	require.LessOrEqual(t, wp, 0.92)
}

func TestComebackPressureBounds(t *testing.T) {
	require.Equal(t, 0.0, comebackPressure(-100))
	require.Equal(t, 0.0, comebackPressure(0))
	require.InDelta(t, 0.5, comebackPressure(4500), 1e-9)
	require.Equal(t, 1.0, comebackPressure(20000))
}

func TestApplyKillBounties(t *testing.T) {
	state := newTestMatch()
	run := &matchRun{state: state}
	state.GameTime = 600

	killer := state.Blue.PlayerByRole(RoleMid)
	victim := state.Red.PlayerByRole(RoleMid)
	victim.Kills = 4 // fed victim pays a shutdown

	before := killer.Gold
	run.applyKill(killer, victim, "lane fight")

	require.False(t, victim.Alive)
	require.Equal(t, 1, killer.Kills)
	require.Equal(t, 1, victim.Deaths)
	// Streak counts the death being processed: 4 kills, 1 death.
	// 300 base + 150*(3-1) shutdown.
	require.InDelta(t, before+600, killer.Gold, 0.01)
	require.Greater(t, victim.RespawnAt, state.GameTime)

	// Teammates pick up assist gold.
	top := state.Blue.PlayerByRole(RoleTop)
	require.Equal(t, 1, top.Assists)

	require.Len(t, run.timeline, 1)
	require.Equal(t, EventKill, run.timeline[0].Type)
}

func TestDeadPlayersRespawn(t *testing.T) {
	state := newTestMatch()
	run := &matchRun{state: state}

	victim := state.Red.PlayerByRole(RoleADC)
	victim.Alive = false
	victim.RespawnAt = 120

	state.GameTime = 60
	run.income()
	require.False(t, victim.Alive)

	state.GameTime = 120
	run.income()
	require.True(t, victim.Alive)
}
