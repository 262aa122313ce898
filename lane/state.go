package lane

// Position is where the laner is standing, coarsely.
type Position int

const (
	UnderTower Position = iota // Farming under own turret, very safe
	Safe                       // Near own tower, hard to gank
	Middle                     // Neutral position
	Extended                   // Pushed up, gankable
	River                      // Left lane for a roam or ward
)

var positionLabels = map[Position]string{
	UnderTower: "under_tower",
	Safe:       "safe",
	Middle:     "middle",
	Extended:   "extended",
	River:      "river",
}

func (p Position) String() string { return positionLabels[p] }

// WavePosition is where the minion wave sits between the two towers.
type WavePosition int

const (
	WaveFrozenNearMe WavePosition = iota // Best spot: safe CS, enemy overextends
	WavePushingToMe
	WaveMiddle
	WaveSlowPushToThem // Building a big wave
	WaveCrashed        // Wave hit their tower: roam/recall window
)

var waveLabels = map[WavePosition]string{
	WaveFrozenNearMe:   "frozen_near_me",
	WavePushingToMe:    "pushing_to_me",
	WaveMiddle:         "middle",
	WaveSlowPushToThem: "slow_push_to_them",
	WaveCrashed:        "crashed",
}

func (w WavePosition) String() string { return waveLabels[w] }

// JunglerLocation is the last known coarse position of the enemy jungler.
type JunglerLocation int

const (
	JunglerTopside JunglerLocation = iota
	JunglerBotside
	JunglerMid
	JunglerUnknown
)

var junglerLabels = map[JunglerLocation]string{
	JunglerTopside: "topside",
	JunglerBotside: "botside",
	JunglerMid:     "mid",
	JunglerUnknown: "unknown",
}

func (j JunglerLocation) String() string { return junglerLabels[j] }

// GamePhase is the coarse time bucket, recomputed from GameTime on every step.
type GamePhase int

const (
	PhaseEarly GamePhase = iota
	PhaseMid
	PhaseLate
)

var phaseLabels = map[GamePhase]string{
	PhaseEarly: "early",
	PhaseMid:   "mid",
	PhaseLate:  "late",
}

func (p GamePhase) String() string { return phaseLabels[p] }

// LaneState is everything one laner cares about for a 20-second decision.
//
// Self fields are ground truth. Enemy cooldowns and mana carry the Est
// suffix: they are inferred from what the player has seen and may be wrong.
// Keep the two field sets structurally parallel but never merge them, or
// the simulated opponent starts playing with perfect information.
type LaneState struct {
	// Self (ground truth)
	ChampionID  string
	HP          float64
	HPMax       float64
	Mana        float64
	ManaMax     float64
	Level       int
	XPToNext    float64
	QCD         float64 // Cooldowns in seconds remaining, 0 = ready
	WCD         float64
	ECD         float64
	RCD         float64
	FlashCD     float64
	Summoner2   string // Second summoner spell: ignite, tp, barrier, exhaust, cleanse
	Summoner2CD float64
	Position    Position
	Gold        float64
	Items       []string
	CombatPower float64

	// Enemy laner (HP/level/position are visible; cooldowns and mana are estimates)
	EnemyChampionID  string
	EnemyHP          float64
	EnemyHPMax       float64
	EnemyManaEst     float64
	EnemyLevel       int
	EnemyQCDEst      float64
	EnemyWCDEst      float64
	EnemyECDEst      float64
	EnemyRCDEst      float64
	EnemyFlashCDEst  float64
	EnemyPosition    Position
	EnemyCombatPower float64

	// Wave state
	MyMinions    int
	EnemyMinions int
	Wave         WavePosition
	CannonWave   bool // Cannon waves push harder and are worth more gold

	// Map context
	JunglerLastSeen float64 // Seconds since the enemy jungler was spotted (999 = never)
	JunglerLocation JunglerLocation
	DragonTimer     float64 // Seconds until spawn, 0 = up now
	HeraldTimer     float64
	MyTowerHP       float64 // Percentage
	EnemyTowerHP    float64

	// Time
	GameTime float64
	Phase    GamePhase
}

// NewLaneState returns the baseline level-1 state. Unknown fields during
// deserialization fall back to these values.
func NewLaneState() LaneState {
	return LaneState{
		ChampionID:       "Unknown",
		HP:               600,
		HPMax:            600,
		Mana:             300,
		ManaMax:          300,
		Level:            1,
		XPToNext:         280,
		Summoner2:        "ignite",
		Position:         Middle,
		Gold:             500,
		CombatPower:      100,
		EnemyChampionID:  "Unknown",
		EnemyHP:          600,
		EnemyHPMax:       600,
		EnemyManaEst:     300,
		EnemyLevel:       1,
		EnemyPosition:    Middle,
		EnemyCombatPower: 100,
		MyMinions:        6,
		EnemyMinions:     6,
		Wave:             WaveMiddle,
		JunglerLastSeen:  999,
		JunglerLocation:  JunglerUnknown,
		DragonTimer:      300,
		HeraldTimer:      840,
		MyTowerHP:        100,
		EnemyTowerHP:     100,
		GameTime:         90,
		Phase:            PhaseEarly,
	}
}

// Copy returns an independent state for a new simulation branch. Every field
// is a value except Items, which gets its own backing array.
func (s LaneState) Copy() LaneState {
	c := s
	c.Items = make([]string, len(s.Items))
	copy(c.Items, s.Items)
	return c
}

func (s *LaneState) HPPct() float64 {
	if s.HPMax <= 0 {
		return 0
	}
	return s.HP / s.HPMax * 100
}

func (s *LaneState) EnemyHPPct() float64 {
	if s.EnemyHPMax <= 0 {
		return 0
	}
	return s.EnemyHP / s.EnemyHPMax * 100
}

func (s *LaneState) ManaPct() float64 {
	if s.ManaMax <= 0 {
		return 0
	}
	return s.Mana / s.ManaMax * 100
}

func (s *LaneState) HasFlash() bool { return s.FlashCD <= 0 }

func (s *LaneState) HasUlt() bool { return s.RCD <= 0 && s.Level >= 6 }

func (s *LaneState) EnemyHasUltEst() bool { return s.EnemyRCDEst <= 0 && s.EnemyLevel >= 6 }

// HasAbility reports whether any basic ability (Q/W/E) is off cooldown.
func (s *LaneState) HasAbility() bool { return s.QCD <= 0 || s.WCD <= 0 || s.ECD <= 0 }

// GankRisk scores how likely a gank is right now, in [0, 1]. Extended
// positions, a missing jungler, stale vision and a down flash all add risk.
func (s *LaneState) GankRisk() float64 {
	risk := 0.0
	switch s.Position {
	case Extended:
		risk += 0.3
	case Middle:
		risk += 0.1
	}
	switch s.JunglerLocation {
	case JunglerUnknown:
		risk += 0.2
	case JunglerMid:
		risk += 0.4
	}
	if s.JunglerLastSeen > 30 {
		risk += 0.15
	}
	if !s.HasFlash() {
		risk += 0.2
	}
	if risk > 1 {
		risk = 1
	}
	return risk
}
