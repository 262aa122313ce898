package lane

// Score weights for judging a 20-second outcome. DeathPenalty dominates
// every other term; FlashHeldPenalty stacks on top when the player died with
// their escape still in hand.
const (
	DeathPenalty     = -80.0
	FlashHeldPenalty = -10.0
)

// waveValue is the ordinal worth of each wave position. Frozen near the
// player is best (safe CS, enemy overextends); crashed opens a recall or
// roam window.
var waveValue = map[WavePosition]float64{
	WaveFrozenNearMe:   5,
	WavePushingToMe:    2,
	WaveMiddle:         0,
	WaveSlowPushToThem: 1,
	WaveCrashed:        3,
}

// TransitionScore judges the step from before to after. Positive is good
// for the player. Death short-circuits: no gold or CS gain buys back a
// terminal state.
func TransitionScore(before, after *LaneState) float64 {
	if after.HP <= 0 {
		score := DeathPenalty
		if before.HasFlash() {
			score += FlashHeldPenalty // Died with the escape unspent
		}
		return score
	}

	score := 0.0

	score += (after.Gold - before.Gold) * 0.05

	// Kill bonus on top of the gold
	if after.EnemyHP <= 0 && before.EnemyHP > 0 {
		score += 25
	}

	if levels := after.Level - before.Level; levels > 0 {
		score += 8 * float64(levels)
	}

	// Net health trade: did the enemy lose a bigger share than we did?
	myLost := (before.HP - after.HP) / before.HPMax * 100
	enemyLost := (before.EnemyHP - after.EnemyHP) / before.EnemyHPMax * 100
	score += (enemyLost - myLost) * 0.3

	// Burning flash is bad unless it bought a kill
	if before.HasFlash() && !after.HasFlash() {
		if after.EnemyHP <= 0 {
			score -= 3
		} else {
			score -= 15
		}
	}
	if before.EnemyFlashCDEst <= 0 && after.EnemyFlashCDEst > 0 {
		score += 12
	}

	score += (waveValue[after.Wave] - waveValue[before.Wave]) * 2

	if cs := before.EnemyMinions - after.EnemyMinions; cs > 0 {
		score += float64(cs) * 1.5
	}

	// Exposed position only costs when the gank threat is real
	if risk := after.GankRisk(); risk > 0.4 && (after.Position == Extended || after.Position == River) {
		score -= 8 * risk
	}

	if after.ManaPct() < 15 && before.ManaPct() >= 15 {
		score -= 5 // Went OOM
	}

	if towerDmg := before.EnemyTowerHP - after.EnemyTowerHP; towerDmg > 0 {
		score += towerDmg * 0.5
	}

	return score
}

// StaticEvaluate scores a position with no before/after comparison. Used to
// weight the tail of a rollout without simulating further; always
// down-weighted relative to accumulated transition scores.
func StaticEvaluate(s *LaneState) float64 {
	score := (s.HPPct() - s.EnemyHPPct()) * 0.3
	score += float64(s.Level-s.EnemyLevel) * 8
	score += s.Gold * 0.01

	ready := func(cds ...float64) (n int) {
		for _, cd := range cds {
			if cd <= 0 {
				n++
			}
		}
		return n
	}
	mine := ready(s.QCD, s.WCD, s.ECD, s.RCD)
	theirs := ready(s.EnemyQCDEst, s.EnemyWCDEst, s.EnemyECDEst, s.EnemyRCDEst)
	score += float64(mine-theirs) * 3

	if s.HasFlash() && s.EnemyFlashCDEst > 0 {
		score += 8
	} else if !s.HasFlash() && s.EnemyFlashCDEst <= 0 {
		score -= 8
	}

	switch s.Wave {
	case WaveFrozenNearMe:
		score += 6
	case WaveCrashed:
		score += 3
	}

	score -= s.GankRisk() * 10
	return score
}
