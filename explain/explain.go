// Package explain turns search recommendations into plain-English coaching
// advice. Every explanation follows the same shape: do this now, why, what to
// watch for, and what would change the plan.
package explain

import (
	"fmt"
	"strings"

	"rift/lane"
	"rift/searcher"
)

// Explanation is the human-readable rendering of a recommendation.
type Explanation struct {
	DoThis         string `json:"do_this"`
	Why            string `json:"why"`
	WatchFor       string `json:"watch_for"`
	PlanChangesIf  string `json:"plan_changes_if"`
	Confidence     string `json:"confidence"`
	NextTwoMin     string `json:"next_2_min"`
	PositionAdvice string `json:"position_advice"`
}

// Explain renders a recommendation against the state it was computed for.
func Explain(state *lane.LaneState, rec searcher.Recommendation) Explanation {
	action, ok := lane.ParseAction(rec.Action)
	if !ok {
		action = lane.FarmSafe
	}

	return Explanation{
		DoThis:         actionToEnglish(action, state),
		Why:            explainWhy(action, state, rec),
		WatchFor:       explainWatch(action, state),
		PlanChangesIf:  explainChanges(action, state),
		Confidence:     confidenceLabel(rec.Confidence),
		NextTwoMin:     explainSequence(rec.BestSequence),
		PositionAdvice: positionAdvice(state),
	}
}

func confidenceLabel(confidence float64) string {
	pct := int(confidence * 100)
	switch {
	case confidence >= 0.6:
		return fmt.Sprintf("HIGH (%d%%)", pct)
	case confidence >= 0.35:
		return fmt.Sprintf("MEDIUM (%d%%)", pct)
	default:
		return fmt.Sprintf("LOW (%d%%) - multiple options are close", pct)
	}
}

func actionToEnglish(action lane.Action, state *lane.LaneState) string {
	switch action {
	case lane.FarmSafe:
		return "Farm safely - just last-hit minions, don't push up"
	case lane.FarmPush:
		return "Push the wave hard - use your abilities on the minions"
	case lane.Freeze:
		return "Freeze the wave - hold it near your tower so the enemy has to overextend for CS"
	case lane.ThinWave:
		return "Thin the wave - kill the caster minions to start a slow push"
	case lane.ResetWave:
		return "Let the wave push to you - step back and let minions come to your side"
	case lane.ShortTrade:
		return fmt.Sprintf("Short trade - hit %s's combo then back off immediately", state.ChampionID)
	case lane.ExtendedTrade:
		return "Extended trade - stay in their face and use multiple ability rotations"
	case lane.AllIn:
		return fmt.Sprintf("GO ALL IN - commit everything to kill %s!", state.EnemyChampionID)
	case lane.WardRiver:
		return "Ward the river bush - you need vision to play aggressive safely"
	case lane.Recall:
		return "Recall now - go back to base, buy items, and come back stronger"
	case lane.RoamTop:
		return "Roam top - push your wave first, then walk up to help top lane"
	case lane.RoamBot:
		return "Roam bot - push your wave first, then walk down to help bot lane"
	case lane.RoamDragon:
		return "Rotate to dragon - help your team secure the objective"
	case lane.RoamHerald:
		return "Rotate to Rift Herald - help your team take it for tower plates"
	default:
		return action.String()
	}
}

func explainWhy(action lane.Action, state *lane.LaneState, rec searcher.Recommendation) string {
	var reasons []string

	switch action {
	case lane.ShortTrade, lane.ExtendedTrade, lane.AllIn:
		if state.EnemyQCDEst > 3 {
			reasons = append(reasons, fmt.Sprintf(
				"their Q is on cooldown (~%ds left), so they can't trade back as hard", int(state.EnemyQCDEst)))
		}
		if state.HPPct() > state.EnemyHPPct()+15 {
			reasons = append(reasons, fmt.Sprintf(
				"you're healthier (%d%% vs their %d%%)", int(state.HPPct()), int(state.EnemyHPPct())))
		}
		if state.Level > state.EnemyLevel {
			reasons = append(reasons, fmt.Sprintf(
				"you're level %d and they're only %d - your stats are higher", state.Level, state.EnemyLevel))
		}
		if state.HasFlash() && state.EnemyFlashCDEst > 0 {
			reasons = append(reasons, "you have Flash and they don't - huge safety advantage")
		}
		if action == lane.AllIn && state.HasUlt() && !state.EnemyHasUltEst() {
			reasons = append(reasons, "you have your ultimate and they don't - massive damage advantage")
		}
		if len(reasons) == 0 {
			reasons = append(reasons, fmt.Sprintf(
				"the simulation found this wins %d%% of the time", int(rec.Confidence*100)))
		}

	case lane.FarmSafe, lane.Freeze, lane.ResetWave:
		if state.HPPct() < 40 {
			reasons = append(reasons, fmt.Sprintf(
				"you're low HP (%d%%) - fighting would be risky", int(state.HPPct())))
		}
		if state.GankRisk() > 0.4 {
			reasons = append(reasons, "there's a high chance the enemy jungler is nearby")
		}
		if state.EnemyCombatPower > state.CombatPower*1.1 {
			reasons = append(reasons, "the enemy has a stat advantage right now - better to farm and wait for items")
		}
		if len(reasons) == 0 {
			reasons = append(reasons, "it's the safest way to keep getting gold without risking anything")
		}

	case lane.FarmPush:
		if state.Wave == lane.WaveMiddle || state.Wave == lane.WaveSlowPushToThem {
			reasons = append(reasons, "pushing gives you a recall/roam window once the wave crashes into their tower")
		}
		reasons = append(reasons, "you have enough mana to push without going OOM")

	case lane.Recall:
		reasons = append(reasons, fmt.Sprintf("you have %dg to spend on items", int(state.Gold)))
		if state.HPPct() < 50 {
			reasons = append(reasons, "and you're low on HP")
		}
		if state.Wave == lane.WaveCrashed {
			reasons = append(reasons, "the wave is crashed so you won't miss many minions")
		}

	case lane.WardRiver:
		reasons = append(reasons, fmt.Sprintf(
			"enemy jungler hasn't been seen in %ds - you need vision", int(state.JunglerLastSeen)))

	case lane.RoamTop, lane.RoamBot:
		reasons = append(reasons, "your wave is pushed so you have time to roam without losing CS")

	case lane.RoamDragon, lane.RoamHerald:
		reasons = append(reasons, "the objective is up and your team can take it with your help")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, fmt.Sprintf(
			"the engine simulated %d scenarios and this came out on top", rec.Iterations))
	}

	return capitalize(strings.Join(reasons, ". ")) + "."
}

func explainWatch(action lane.Action, state *lane.LaneState) string {
	var warnings []string

	if state.GankRisk() > 0.3 {
		warnings = append(warnings, "the minimap - enemy jungler could be heading your way")
	}
	switch action {
	case lane.ShortTrade, lane.ExtendedTrade, lane.AllIn:
		warnings = append(warnings, "enemy cooldowns - if they dodge your main ability, back off")
		if state.EnemyLevel == 5 {
			warnings = append(warnings, "they're about to hit level 6 (ultimate) - the matchup changes at that point")
		}
	case lane.Recall:
		warnings = append(warnings, "the wave position - make sure it's pushing away from you before you recall")
	case lane.RoamTop, lane.RoamBot:
		warnings = append(warnings, "your wave - if you roam with a bad wave, the enemy mid will take your tower plates")
	}

	if len(warnings) == 0 {
		warnings = append(warnings, "nothing specific - just play it out")
	}

	return "Watch " + strings.Join(warnings, "; ") + "."
}

func explainChanges(action lane.Action, state *lane.LaneState) string {
	var changes []string

	if state.Level < 6 && state.EnemyLevel < 6 {
		changes = append(changes, "they hit level 6 first - back off and farm safely until you catch up")
	}
	if state.JunglerLocation == lane.JunglerUnknown {
		changes = append(changes, "enemy jungler shows on the opposite side of the map - that's your green light to play aggressive")
	}
	switch action {
	case lane.FarmSafe, lane.Freeze:
		changes = append(changes, "your jungler pings they're coming to gank - get ready to follow up")
	case lane.AllIn:
		changes = append(changes, "they get a heal from their support or jungler - abort the all-in")
	}

	if len(changes) == 0 {
		changes = append(changes, "the enemy plays something unexpected - always be ready to adapt")
	}

	return "Plan changes if: " + strings.Join(changes, "; ") + "."
}

var stepNames = map[string]string{
	"farm_safe":      "farm safely",
	"farm_push":      "push the wave",
	"freeze":         "freeze the wave",
	"thin_wave":      "thin the wave",
	"reset_wave":     "let wave reset",
	"short_trade":    "take a short trade",
	"extended_trade": "go for an extended trade",
	"all_in":         "all-in for the kill",
	"ward_river":     "ward river",
	"recall":         "recall to base",
	"roam_top":       "roam top",
	"roam_bot":       "roam bot",
	"roam_dragon":    "rotate to dragon",
	"roam_herald":    "rotate to herald",
}

func explainSequence(sequence []string) string {
	steps := make([]string, 0, len(sequence))
	for _, s := range sequence {
		name, ok := stepNames[s]
		if !ok {
			name = s
		}
		steps = append(steps, name)
	}

	switch len(steps) {
	case 0:
		return ""
	case 1:
		return capitalize(steps[0])
	case 2:
		return fmt.Sprintf("%s, then %s", capitalize(steps[0]), steps[1])
	default:
		return fmt.Sprintf("%s, then %s, then %s", capitalize(steps[0]), steps[1], steps[2])
	}
}

func positionAdvice(state *lane.LaneState) string {
	switch {
	case state.GankRisk() > 0.5:
		return "Stay near your tower - gank risk is high"
	case state.Wave == lane.WaveFrozenNearMe:
		return "Stay on the safe side of the wave - let them come to you"
	case state.Wave == lane.WaveCrashed:
		return "You can step up since the wave is at their tower"
	default:
		return "Stay in the middle of lane - balanced position"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
