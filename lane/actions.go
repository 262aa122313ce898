package lane

// Action is one of the plays available to the laner in a 20-second window.
type Action int

const (
	// Farming (safe gold/XP income)
	FarmSafe  Action = iota // Last-hit carefully, stay near tower
	FarmPush                // Use abilities on the wave to push it fast
	Freeze                  // Hold the wave in a good position, deny enemy CS
	ThinWave                // Kill caster minions to set up a slow push
	ResetWave               // Let the wave push in, sets up a freeze

	// Trading (damage the enemy)
	ShortTrade    // One ability combo then back off
	ExtendedTrade // Multiple rotations, stay in their face
	AllIn         // Go for the kill, commit everything

	// Map plays
	WardRiver
	Recall
	RoamTop
	RoamBot
	RoamDragon
	RoamHerald

	numActions
)

var actionLabels = map[Action]string{
	FarmSafe:      "farm_safe",
	FarmPush:      "farm_push",
	Freeze:        "freeze",
	ThinWave:      "thin_wave",
	ResetWave:     "reset_wave",
	ShortTrade:    "short_trade",
	ExtendedTrade: "extended_trade",
	AllIn:         "all_in",
	WardRiver:     "ward_river",
	Recall:        "recall",
	RoamTop:       "roam_top",
	RoamBot:       "roam_bot",
	RoamDragon:    "roam_dragon",
	RoamHerald:    "roam_herald",
}

func (a Action) String() string { return actionLabels[a] }

// ParseAction maps a stable string identifier back to an Action.
func ParseAction(label string) (Action, bool) {
	for a, l := range actionLabels {
		if l == label {
			return a, true
		}
	}
	return FarmSafe, false
}

// ActionInfo is the static metadata gating an action.
type ActionInfo struct {
	Name              string
	MinHPPct          float64
	MinManaPct        float64
	RequiresAbilities bool    // Needs at least one basic ability off cooldown
	Risk              float64 // 0 (safe) to 1 (very risky)
	TimeCost          float64 // Seconds; every action fills one tick
	LeavesLane        bool
}

var actionInfo = map[Action]ActionInfo{
	FarmSafe:  {Name: "Farm Safe", Risk: 0.05, TimeCost: TickSeconds},
	FarmPush:  {Name: "Farm Push", MinManaPct: 15, RequiresAbilities: true, Risk: 0.15, TimeCost: TickSeconds},
	Freeze:    {Name: "Freeze", Risk: 0.1, TimeCost: TickSeconds},
	ThinWave:  {Name: "Thin Wave", MinManaPct: 10, RequiresAbilities: true, Risk: 0.1, TimeCost: TickSeconds},
	ResetWave: {Name: "Reset Wave", Risk: 0.05, TimeCost: TickSeconds},

	ShortTrade:    {Name: "Short Trade", MinHPPct: 25, MinManaPct: 20, RequiresAbilities: true, Risk: 0.3, TimeCost: TickSeconds},
	ExtendedTrade: {Name: "Extended Trade", MinHPPct: 40, MinManaPct: 35, RequiresAbilities: true, Risk: 0.5, TimeCost: TickSeconds},
	AllIn:         {Name: "All-In", MinHPPct: 50, MinManaPct: 40, RequiresAbilities: true, Risk: 0.8, TimeCost: TickSeconds},

	WardRiver:  {Name: "Ward River", Risk: 0.15, TimeCost: TickSeconds},
	Recall:     {Name: "Recall", Risk: 0.1, TimeCost: TickSeconds, LeavesLane: true},
	RoamTop:    {Name: "Roam Top", MinHPPct: 30, Risk: 0.35, TimeCost: TickSeconds, LeavesLane: true},
	RoamBot:    {Name: "Roam Bot", MinHPPct: 30, Risk: 0.35, TimeCost: TickSeconds, LeavesLane: true},
	RoamDragon: {Name: "Roam Dragon", MinHPPct: 30, Risk: 0.3, TimeCost: TickSeconds, LeavesLane: true},
	RoamHerald: {Name: "Roam Herald", MinHPPct: 30, Risk: 0.3, TimeCost: TickSeconds, LeavesLane: true},
}

// Info returns the static metadata for an action.
func (a Action) Info() ActionInfo { return actionInfo[a] }

// Actions lists the full catalog in declaration order.
func Actions() []Action {
	all := make([]Action, 0, numActions)
	for a := Action(0); a < numActions; a++ {
		all = append(all, a)
	}
	return all
}

// LegalActions filters the catalog by the state's resource, health and
// cooldown gates. Never returns an empty set: FarmSafe is unconditionally
// legal, so the search always has an expansion candidate.
func LegalActions(s *LaneState) []Action {
	legal := make([]Action, 0, numActions)

	for a := Action(0); a < numActions; a++ {
		info := actionInfo[a]
		if s.HPPct() < info.MinHPPct {
			continue
		}
		if s.ManaPct() < info.MinManaPct {
			continue
		}
		if info.RequiresAbilities && !s.HasAbility() {
			continue
		}

		switch a {
		case AllIn:
			if s.Position == UnderTower { // Hard to all-in from under tower
				continue
			}
		case Recall:
			if s.Position == Extended { // Don't recall while extended
				continue
			}
		case RoamDragon:
			if s.DragonTimer > 30 {
				continue
			}
		case RoamHerald:
			if s.HeraldTimer > 30 {
				continue
			}
		}

		legal = append(legal, a)
	}

	if len(legal) == 0 {
		legal = append(legal, FarmSafe)
	}
	return legal
}
