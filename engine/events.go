package engine

// Event types appearing on a match timeline.
const (
	EventKill         = "KILL"
	EventFlashBurned  = "FLASH_BURNED"
	EventTeamFight    = "TEAM_FIGHT"
	EventDragon       = "DRAGON"
	EventHerald       = "HERALD"
	EventBaron        = "BARON"
	EventTower        = "TOWER"
	EventNexus        = "NEXUS"
	EventComebackGold = "COMEBACK_GOLD"
)

// Event is one thing that happened during a match.
type Event struct {
	Time        float64        `json:"time"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Details     map[string]any `json:"details,omitempty"`
}

// GoldPoint is a per-minute snapshot of team gold totals.
type GoldPoint struct {
	Time     float64 `json:"time"`
	BlueGold float64 `json:"blue_gold"`
	RedGold  float64 `json:"red_gold"`
	GoldDiff float64 `json:"gold_diff"`
}

// KDA aggregates a team's kills, deaths, and assists.
type KDA struct {
	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`
}

// PlayerLine is one row of the post-match scoreboard.
type PlayerLine struct {
	ChampionID  string  `json:"champion_id"`
	PlayerName  string  `json:"player_name"`
	Role        Role    `json:"role"`
	Side        string  `json:"side"`
	Level       int     `json:"level"`
	Gold        float64 `json:"gold"`
	CS          int     `json:"cs"`
	Kills       int     `json:"kills"`
	Deaths      int     `json:"deaths"`
	Assists     int     `json:"assists"`
	CombatPower float64 `json:"combat_power"`
}

// Result is everything a finished simulation produces.
type Result struct {
	MatchID            string       `json:"match_id"`
	Winner             string       `json:"winner"`
	DurationSeconds    float64      `json:"duration_seconds"`
	BlueWinProbability float64      `json:"blue_win_probability"`
	Patch              string       `json:"patch,omitempty"`
	BlueTeamID         string       `json:"blue_team_id"`
	RedTeamID          string       `json:"red_team_id"`
	BlueKDA            KDA          `json:"blue_kda"`
	RedKDA             KDA          `json:"red_kda"`
	Timeline           []Event      `json:"timeline"`
	GoldCurve          []GoldPoint  `json:"gold_curve"`
	Scoreboard         []PlayerLine `json:"scoreboard"`
}
