// Package engine simulates full 5v5 matches on one-minute ticks. It is the
// coarse counterpart of the lane package: where lane models a single matchup
// in 20-second steps, engine models both teams, objectives, and structures
// until a nexus falls.
package engine

import "rift/lane"

// Role is a player's assigned lane position.
type Role string

const (
	RoleTop     Role = "top"
	RoleJungle  Role = "jungle"
	RoleMid     Role = "mid"
	RoleADC     Role = "adc"
	RoleSupport Role = "support"
)

// DragonType identifies which elemental dragon spawned.
type DragonType string

const (
	DragonInfernal DragonType = "infernal"
	DragonMountain DragonType = "mountain"
	DragonOcean    DragonType = "ocean"
	DragonCloud    DragonType = "cloud"
	DragonHextech  DragonType = "hextech"
	DragonChemtech DragonType = "chemtech"
	DragonElder    DragonType = "elder"
)

// elementalDragons excludes elder, which only spawns after a soul is taken.
var elementalDragons = []DragonType{
	DragonInfernal, DragonMountain, DragonOcean,
	DragonCloud, DragonHextech, DragonChemtech,
}

// ChampionStats holds level-1 base stats and flat per-level growth. When no
// per-champion data is available the simulator falls back to DefaultStats.
type ChampionStats struct {
	AttackDamage float64 `yaml:"attack_damage" json:"attack_damage"`
	HP           float64 `yaml:"hp" json:"hp"`
	Armor        float64 `yaml:"armor" json:"armor"`
	MagicResist  float64 `yaml:"magic_resist" json:"magic_resist"`
	AttackSpeed  float64 `yaml:"attack_speed" json:"attack_speed"`
}

// DefaultStats is a generic fighter statline used when a draft entry carries
// no champion data.
var DefaultStats = ChampionStats{
	AttackDamage: 60,
	HP:           620,
	Armor:        30,
	MagicResist:  32,
	AttackSpeed:  0.65,
}

// DefaultGrowth is the matching per-level growth for DefaultStats.
var DefaultGrowth = ChampionStats{
	AttackDamage: 3.2,
	HP:           95,
	Armor:        4.2,
	MagicResist:  2.0,
	AttackSpeed:  0.02,
}

// xpToLevel is the cumulative XP needed to reach each level.
var xpToLevel = [19]float64{
	0, 0, 280, 660, 1140, 1720, 2400,
	3180, 4060, 5040, 6120, 7300,
	8580, 9960, 11440, 13020, 14700,
	16480, 18360,
}

// Role income tables, averaged from pro play.
var (
	csGold = map[Role]float64{
		RoleTop: 20, RoleMid: 20, RoleADC: 22, RoleJungle: 18, RoleSupport: 10,
	}
	csPerMin = map[Role]float64{
		RoleTop: 7.0, RoleMid: 7.5, RoleADC: 8.0, RoleJungle: 5.0, RoleSupport: 1.2,
	}
	xpPerMin = map[Role]float64{
		RoleTop: 450, RoleMid: 480, RoleADC: 400, RoleJungle: 420, RoleSupport: 320,
	}
)

// PassiveGoldPerMin is 1.9 gold/sec after 1:50, rounded to the per-minute
// figure the tick loop uses.
const PassiveGoldPerMin = 114.0

// DraftEntry is one pick in a team's draft.
type DraftEntry struct {
	ChampionID string         `yaml:"champion_id" json:"champion_id"`
	Role       Role           `yaml:"role" json:"role"`
	PlayerName string         `yaml:"player_name,omitempty" json:"player_name,omitempty"`
	Stats      *ChampionStats `yaml:"stats,omitempty" json:"stats,omitempty"`
	Growth     *ChampionStats `yaml:"growth,omitempty" json:"growth,omitempty"`
}

// PlayerState tracks one player over the course of a match.
type PlayerState struct {
	ChampionID string
	Role       Role
	PlayerName string

	Level int
	Gold  float64
	CS    int
	XP    float64

	Kills   int
	Deaths  int
	Assists int

	SkillPoints map[string]int

	Alive     bool
	RespawnAt float64

	FlashCD float64
	TPCD    float64

	CombatPower float64

	base   ChampionStats
	growth ChampionStats
}

func newPlayer(e DraftEntry) *PlayerState {
	name := e.PlayerName
	if name == "" {
		name = e.ChampionID
	}
	base, growth := DefaultStats, DefaultGrowth
	if e.Stats != nil {
		base = *e.Stats
	}
	if e.Growth != nil {
		growth = *e.Growth
	}
	return &PlayerState{
		ChampionID:  e.ChampionID,
		Role:        e.Role,
		PlayerName:  name,
		Level:       1,
		Gold:        500,
		SkillPoints: map[string]int{"Q": 0, "W": 0, "E": 0, "R": 0},
		Alive:       true,
		CombatPower: 100,
		base:        base,
		growth:      growth,
	}
}

func (p *PlayerState) FlashUp() bool { return p.FlashCD <= 0 }

// statAtLevel interpolates a champion stat linearly with level.
func (p *PlayerState) statAtLevel(pick func(ChampionStats) float64) float64 {
	return pick(p.base) + pick(p.growth)*float64(p.Level-1)
}

// TeamState tracks one side's five players, structures, and objectives.
type TeamState struct {
	TeamID  string
	Side    string
	Players []*PlayerState

	TowersStanding int
	InhibitorsUp   int

	DragonsTaken     []DragonType
	DragonSoul       DragonType
	BaronsTaken      int
	BaronBuffActive  bool
	BaronBuffExpires float64
	HeraldsTaken     int
}

func newTeam(teamID, side string, draft []DraftEntry) *TeamState {
	t := &TeamState{
		TeamID:         teamID,
		Side:           side,
		TowersStanding: 11,
		InhibitorsUp:   3,
	}
	for _, e := range draft {
		t.Players = append(t.Players, newPlayer(e))
	}
	return t
}

func (t *TeamState) TotalGold() float64 {
	var sum float64
	for _, p := range t.Players {
		sum += p.Gold
	}
	return sum
}

func (t *TeamState) TotalKills() int {
	var sum int
	for _, p := range t.Players {
		sum += p.Kills
	}
	return sum
}

func (t *TeamState) AliveCount() int {
	var n int
	for _, p := range t.Players {
		if p.Alive {
			n++
		}
	}
	return n
}

func (t *TeamState) alivePlayers() []*PlayerState {
	out := make([]*PlayerState, 0, len(t.Players))
	for _, p := range t.Players {
		if p.Alive {
			out = append(out, p)
		}
	}
	return out
}

func (t *TeamState) PlayerByRole(r Role) *PlayerState {
	for _, p := range t.Players {
		if p.Role == r {
			return p
		}
	}
	return nil
}

// MatchState is the complete scoreboard of a match in progress.
type MatchState struct {
	Blue *TeamState
	Red  *TeamState

	Patch string

	GameTime float64
	Phase    lane.GamePhase

	GameOver bool
	Winner   string

	// Seconds until each objective is next contestable.
	NextDragonSpawn float64
	NextHeraldSpawn float64
	NextBaronSpawn  float64

	DragonsSpawned int
	SoulPoint      int
}

// NewMatchState builds the starting state for a draft. Each side needs five
// entries covering the five roles; the engine does not enforce role coverage
// so partial drafts work for tests.
func NewMatchState(blueID, redID string, blueDraft, redDraft []DraftEntry, patch string) *MatchState {
	return &MatchState{
		Blue:            newTeam(blueID, "blue", blueDraft),
		Red:             newTeam(redID, "red", redDraft),
		Patch:           patch,
		Phase:           lane.PhaseEarly,
		NextDragonSpawn: 300,
		NextHeraldSpawn: 840,
		NextBaronSpawn:  1200,
		SoulPoint:       4,
	}
}

// GoldDiff is blue's gold lead; negative means red is ahead.
func (m *MatchState) GoldDiff() float64 {
	return m.Blue.TotalGold() - m.Red.TotalGold()
}

func (m *MatchState) team(side string) *TeamState {
	if side == "blue" {
		return m.Blue
	}
	return m.Red
}

func (m *MatchState) opponent(side string) *TeamState {
	if side == "blue" {
		return m.Red
	}
	return m.Blue
}

func (m *MatchState) allPlayers() []*PlayerState {
	out := make([]*PlayerState, 0, len(m.Blue.Players)+len(m.Red.Players))
	out = append(out, m.Blue.Players...)
	out = append(out, m.Red.Players...)
	return out
}

// goldAdvantage is the given side's gold lead (positive = ahead).
func (m *MatchState) goldAdvantage(side string) float64 {
	if side == "blue" {
		return m.GoldDiff()
	}
	return -m.GoldDiff()
}
