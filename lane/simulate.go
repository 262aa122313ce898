package lane

import (
	"golang.org/x/exp/rand"
)

// Simulation constants for one 20-second forward step.
const (
	TickSeconds     = 20.0
	GoldPerSecond   = 1.9  // Passive gold after the 1:50 gold start
	GoldStartTime   = 110.0
	CSGoldAvg       = 20.0 // Average gold per creep
	ManaRegenPerSec = 1.5

	FlashCooldown   = 300.0
	IgniteCooldown  = 180.0
	KillGold        = 300.0
	GoldPerItemStat = 400.0 // Rough: 400g of items = 1 combat power

	midPhaseStart  = 840.0
	latePhaseStart = 1500.0
)

// PhaseForTime maps elapsed game seconds onto the coarse phase buckets.
// Laning ends at 14:00 and late game starts at 25:00.
func PhaseForTime(t float64) GamePhase {
	switch {
	case t >= latePhaseStart:
		return PhaseLate
	case t >= midPhaseStart:
		return PhaseMid
	default:
		return PhaseEarly
	}
}

// Advance simulates one 20-second window: deterministic passive ticks, the
// action's own effect, then a randomized gank check. The input state is
// copied; the caller's value is never mutated. All randomness comes from the
// supplied generator, so a fixed seed reproduces the exact trajectory.
func Advance(state LaneState, action Action, policy OpponentPolicy, rng *rand.Rand) LaneState {
	s := state.Copy()

	passiveTick(&s)

	switch action {
	case FarmSafe:
		farmSafe(&s, rng)
	case FarmPush:
		farmPush(&s, rng)
	case Freeze:
		freeze(&s, rng)
	case ThinWave:
		thinWave(&s)
	case ResetWave:
		resetWave(&s, rng)
	case ShortTrade:
		shortTrade(&s, policy, rng)
	case ExtendedTrade:
		extendedTrade(&s, policy, rng)
	case AllIn:
		allIn(&s, policy, rng)
	case WardRiver:
		wardRiver(&s, rng)
	case Recall:
		recall(&s)
	case RoamTop, RoamBot:
		roamLane(&s, rng)
	case RoamDragon, RoamHerald:
		roamObjective(&s, rng)
	}

	checkGank(&s, policy, rng)

	s.Phase = PhaseForTime(s.GameTime)

	clampBounds(&s)
	return s
}

// passiveTick applies everything that happens regardless of the action:
// time, passive gold, mana regen on both sides, cooldown decay, jungler
// vision decay and objective timers.
func passiveTick(s *LaneState) {
	s.GameTime += TickSeconds

	if s.GameTime > GoldStartTime {
		s.Gold += GoldPerSecond * TickSeconds
	}

	s.Mana = min(s.ManaMax, s.Mana+ManaRegenPerSec*TickSeconds)
	s.EnemyManaEst = min(300, s.EnemyManaEst+ManaRegenPerSec*TickSeconds)

	for _, cd := range []*float64{
		&s.QCD, &s.WCD, &s.ECD, &s.RCD, &s.FlashCD, &s.Summoner2CD,
		&s.EnemyQCDEst, &s.EnemyWCDEst, &s.EnemyECDEst, &s.EnemyRCDEst, &s.EnemyFlashCDEst,
	} {
		*cd = max(0, *cd-TickSeconds)
	}

	s.JunglerLastSeen += TickSeconds
	s.DragonTimer = max(0, s.DragonTimer-TickSeconds)
	s.HeraldTimer = max(0, s.HeraldTimer-TickSeconds)
}

// advanceWave moves the wave one step along the fixed forward progression.
// The terminal crashed state is idempotent.
var advanceWave = map[WavePosition]WavePosition{
	WaveFrozenNearMe:   WavePushingToMe,
	WavePushingToMe:    WaveMiddle,
	WaveMiddle:         WaveSlowPushToThem,
	WaveSlowPushToThem: WaveCrashed,
	WaveCrashed:        WaveCrashed,
}

func farmCS(s *LaneState, rng *rand.Rand, lo, hi int) {
	cs := lo + rng.Intn(hi-lo+1)
	s.Gold += float64(cs) * CSGoldAvg
	s.EnemyMinions = max(0, s.EnemyMinions-cs)
}

func farmSafe(s *LaneState, rng *rand.Rand) {
	farmCS(s, rng, 2, 4)
	s.Position = Safe
	// Only last-hitting lets the wave drift toward you
	if s.Wave == WaveMiddle {
		s.Wave = WavePushingToMe
	}
}

func farmPush(s *LaneState, rng *rand.Rand) {
	farmCS(s, rng, 4, 6)
	s.Mana = max(0, s.Mana-60)
	s.QCD = 6
	s.Position = Middle
	s.Wave = advanceWave[s.Wave]
}

func freeze(s *LaneState, rng *rand.Rand) {
	farmCS(s, rng, 2, 3)
	if s.Wave == WaveMiddle {
		s.Wave = WaveFrozenNearMe
	}
	s.Position = Safe
}

func thinWave(s *LaneState) {
	// Kill the three casters to start a slow push
	s.Gold += 3 * CSGoldAvg
	s.EnemyMinions = max(0, s.EnemyMinions-3)
	s.Mana = max(0, s.Mana-40)
	s.Wave = WaveSlowPushToThem
	s.Position = Middle
}

func resetWave(s *LaneState, rng *rand.Rand) {
	farmCS(s, rng, 1, 2)
	s.Wave = WavePushingToMe
	s.Position = Safe
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// counterProfile is the enemy's trade-back model at one intensity: a damage
// fraction of their combat power and a random multiplier band.
type counterProfile struct {
	fraction float64
	lo, hi   float64
}

const (
	tradeShort = iota
	tradeExtended
	tradeAllIn
)

// counterModel indexes by policy, then trade intensity. Optimal opponents
// hit harder and more consistently; passive ones barely answer.
var counterModel = map[OpponentPolicy][3]counterProfile{
	PolicyOptimal: {{0.18, 0.9, 1.1}, {0.30, 0.9, 1.1}, {0.55, 0.8, 1.2}},
	PolicyPassive: {{0.05, 0.5, 1.0}, {0.15, 0.6, 1.0}, {0.30, 0.5, 1.0}},
	PolicyAverage: {{0.12, 0.7, 1.2}, {0.25, 0.7, 1.2}, {0.45, 0.6, 1.3}},
}

func counterDamage(s *LaneState, policy OpponentPolicy, intensity int, rng *rand.Rand) float64 {
	p := counterModel[policy][intensity]
	return s.EnemyCombatPower * p.fraction * uniform(rng, p.lo, p.hi)
}

func shortTrade(s *LaneState, policy OpponentPolicy, rng *rand.Rand) {
	s.EnemyHP -= s.CombatPower * 0.15 * uniform(rng, 0.8, 1.2)
	s.Mana = max(0, s.Mana-50)
	s.QCD = 7

	s.HP -= counterDamage(s, policy, tradeShort, rng)
	s.EnemyQCDEst = 7
	s.Position = Middle

	// Some CS still happens during trades
	s.Gold += float64(1+rng.Intn(2)) * CSGoldAvg
}

func extendedTrade(s *LaneState, policy OpponentPolicy, rng *rand.Rand) {
	s.EnemyHP -= s.CombatPower * 0.35 * uniform(rng, 0.7, 1.3)
	s.Mana = max(0, s.Mana-100)
	s.QCD = 7
	s.WCD = 10

	s.HP -= counterDamage(s, policy, tradeExtended, rng)
	s.EnemyQCDEst = 7
	s.EnemyWCDEst = 10
	s.Position = Extended

	s.Gold += float64(rng.Intn(2)) * CSGoldAvg
}

func allIn(s *LaneState, policy OpponentPolicy, rng *rand.Rand) {
	dmg := s.CombatPower * 0.65 * uniform(rng, 0.6, 1.4)
	if s.Level < 6 {
		// No ultimate in the burst
		dmg *= 0.75
	}
	if s.Summoner2 == "ignite" && s.Summoner2CD <= 0 {
		dmg += s.CombatPower * 0.12 // Ignite true damage
		s.Summoner2CD = IgniteCooldown
	}

	s.EnemyHP -= dmg
	s.Mana = max(0, s.Mana-150)
	s.QCD = 7
	s.WCD = 10
	s.ECD = 12
	if s.Level >= 6 {
		s.RCD = 80
	}

	counter := counterDamage(s, policy, tradeAllIn, rng)

	// A dying enemy may flash out: survives at floor HP, burns flash, and
	// deals reduced damage on the way
	if s.EnemyHP <= 0 && s.EnemyFlashCDEst <= 0 && rng.Float64() < 0.5 {
		counter *= 0.3
		s.EnemyHP = 50
		s.EnemyFlashCDEst = FlashCooldown
	}

	s.HP -= counter
	s.Position = Extended

	if s.EnemyHP <= 0 {
		s.Gold += KillGold
		s.EnemyHP = 0
	}
}

func wardRiver(s *LaneState, rng *rand.Rand) {
	s.JunglerLastSeen = 0 // Fresh vision
	s.JunglerLocation = JunglerUnknown
	s.Position = Middle
	s.Gold += float64(1+rng.Intn(2)) * CSGoldAvg
}

func recall(s *LaneState) {
	// Spend most of the gold on items for a permanent power increment
	itemValue := s.Gold * 0.7
	s.CombatPower += itemValue / GoldPerItemStat
	s.HP = s.HPMax
	s.Mana = s.ManaMax
	// The wave runs at you while you are gone
	s.Wave = WavePushingToMe
	s.Position = Safe
	s.EnemyMinions = 6
}

func roamLane(s *LaneState, rng *rand.Rand) {
	s.Wave = WaveCrashed // The wave dies to the tower and bounces back
	s.Position = River

	// 30% kill, 20% assist, rest a wasted trip. Without an ultimate the
	// roam almost never converts, so pre-6 trips are mostly lost tempo.
	killChance, assistChance := 0.30, 0.20
	if s.Level < 6 {
		killChance, assistChance = 0.06, 0.10
	}

	roll := rng.Float64()
	switch {
	case roll < killChance:
		s.Gold += KillGold + 150
	case roll < killChance+assistChance:
		s.Gold += 150
	}
}

func roamObjective(s *LaneState, rng *rand.Rand) {
	s.Wave = WaveCrashed
	s.Position = River

	if rng.Float64() < 0.40 {
		s.Gold += 200
	}
}

// checkGank rolls the abstract jungler threat. The risk score converts to a
// small per-tick probability; an optimal jungler ganks half again as often.
func checkGank(s *LaneState, policy OpponentPolicy, rng *rand.Rand) {
	chance := s.GankRisk() * 0.15
	if policy == PolicyOptimal {
		chance *= 1.5
	}

	if rng.Float64() >= chance {
		return
	}

	if s.HasFlash() && rng.Float64() < 0.6 {
		// Flash away: survive, burn flash, take chip damage
		s.FlashCD = FlashCooldown
		s.HP -= s.EnemyCombatPower * 0.1
		s.Position = Safe
	} else if rng.Float64() < 0.4 {
		s.HP = 0 // Died to the gank
	} else {
		// Lucky escape without flash
		s.HP -= s.EnemyCombatPower * 0.2
		s.Position = UnderTower
	}
}

// clampBounds enforces the state invariants after every step: health and
// resource stay in [0, max], estimates included.
func clampBounds(s *LaneState) {
	s.HP = min(max(0, s.HP), s.HPMax)
	s.EnemyHP = min(max(0, s.EnemyHP), s.EnemyHPMax)
	s.Mana = min(max(0, s.Mana), s.ManaMax)
	s.EnemyManaEst = max(0, s.EnemyManaEst)
}
