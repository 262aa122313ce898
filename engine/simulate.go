package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"rift/lane"
)

// MaxMatchSeconds is the hard cap on simulated duration.
const MaxMatchSeconds = 3600

// Simulator runs full matches minute by minute. Probabilities are hand-tuned
// to produce realistic kill counts, objective pacing, and game lengths.
type Simulator struct {
	seed   uint64
	seeded bool
	logger zerolog.Logger
}

type Option func(*Simulator)

// WithSeed pins the random source so the same draft replays identically.
func WithSeed(seed uint64) Option {
	return func(s *Simulator) {
		s.seed = seed
		s.seeded = true
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Simulator) { s.logger = l }
}

func NewSimulator(options ...Option) *Simulator {
	s := &Simulator{logger: zerolog.Nop()}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Run simulates the match to completion and returns the result. The passed
// state is consumed: it holds the final scoreboard afterwards.
func (s *Simulator) Run(state *MatchState) Result {
	seed := s.seed
	if !s.seeded {
		seed = uint64(time.Now().UnixNano())
	}
	run := &matchRun{
		state: state,
		rng:   rand.New(rand.NewSource(seed)),
	}

	matchID := uuid.NewString()
	s.logger.Info().
		Str("match_id", matchID).
		Str("blue", state.Blue.TeamID).
		Str("red", state.Red.TeamID).
		Uint64("seed", seed).
		Msg("starting match simulation")

	var goldCurve []GoldPoint
	for !state.GameOver && state.GameTime < MaxMatchSeconds {
		state.GameTime += 60
		state.Phase = lane.PhaseForTime(state.GameTime)

		run.income()
		run.tickCooldowns()
		run.updateCombatPower()

		if state.Phase == lane.PhaseEarly {
			run.lanePhase()
		} else {
			run.skirmishes()
		}
		run.objectives()
		run.towers()
		run.checkNexus()
		if state.Phase == lane.PhaseLate && !state.GameOver {
			run.checkLateGameEnd()
		}

		goldCurve = append(goldCurve, GoldPoint{
			Time:     state.GameTime,
			BlueGold: state.Blue.TotalGold(),
			RedGold:  state.Red.TotalGold(),
			GoldDiff: state.GoldDiff(),
		})
	}

	if !state.GameOver {
		// Hit the time cap: whoever is ahead on gold takes it.
		if state.GoldDiff() > 0 {
			state.Winner = "blue"
		} else {
			state.Winner = "red"
		}
	}

	result := Result{
		MatchID:            matchID,
		Winner:             state.Winner,
		DurationSeconds:    state.GameTime,
		BlueWinProbability: blueWinProbability(state),
		Patch:              state.Patch,
		BlueTeamID:         state.Blue.TeamID,
		RedTeamID:          state.Red.TeamID,
		BlueKDA:            teamKDA(state.Blue),
		RedKDA:             teamKDA(state.Red),
		Timeline:           run.timeline,
		GoldCurve:          goldCurve,
		Scoreboard:         scoreboard(state),
	}

	s.logger.Info().
		Str("match_id", matchID).
		Str("winner", result.Winner).
		Float64("duration_s", result.DurationSeconds).
		Float64("blue_wp", result.BlueWinProbability).
		Int("events", len(result.Timeline)).
		Msg("match finished")
	return result
}

// blueWinProbability turns the final scoreboard into a smooth win estimate.
// The tanh keeps blowouts from clustering at a hard floor.
func blueWinProbability(state *MatchState) float64 {
	goldDiff := state.GoldDiff()
	killDiff := float64(state.Blue.TotalKills() - state.Red.TotalKills())
	towerDiff := float64(state.Blue.TowersStanding - state.Red.TowersStanding)
	dragonDiff := float64(len(state.Blue.DragonsTaken) - len(state.Red.DragonsTaken))
	winnerBias := 0.16
	if state.Winner != "blue" {
		winnerBias = -0.16
	}

	score := (goldDiff/4500)*0.60 +
		(killDiff/16)*0.25 +
		(towerDiff/5)*0.28 +
		(dragonDiff/3)*0.18 +
		winnerBias

	wp := 0.5 + 0.40*math.Tanh(score)
	return math.Round(math.Max(0.08, math.Min(0.92, wp))*1000) / 1000
}

func teamKDA(t *TeamState) KDA {
	var k KDA
	for _, p := range t.Players {
		k.Kills += p.Kills
		k.Deaths += p.Deaths
		k.Assists += p.Assists
	}
	return k
}

func scoreboard(state *MatchState) []PlayerLine {
	var lines []PlayerLine
	for _, t := range []*TeamState{state.Blue, state.Red} {
		for _, p := range t.Players {
			lines = append(lines, PlayerLine{
				ChampionID:  p.ChampionID,
				PlayerName:  p.PlayerName,
				Role:        p.Role,
				Side:        t.Side,
				Level:       p.Level,
				Gold:        math.Round(p.Gold*10) / 10,
				CS:          p.CS,
				Kills:       p.Kills,
				Deaths:      p.Deaths,
				Assists:     p.Assists,
				CombatPower: math.Round(p.CombatPower*10) / 10,
			})
		}
	}
	return lines
}

// matchRun bundles the mutable pieces one simulation threads through its
// per-minute helpers.
type matchRun struct {
	state    *MatchState
	rng      *rand.Rand
	timeline []Event
}

func (r *matchRun) emit(eventType, description string, details map[string]any) {
	r.timeline = append(r.timeline, Event{
		Time:        r.state.GameTime,
		Type:        eventType,
		Description: description,
		Details:     details,
	})
}

// sides returns both teams in random order so neither side gets a structural
// first-pick advantage on contested rolls.
func (r *matchRun) sides() []*TeamState {
	teams := []*TeamState{r.state.Blue, r.state.Red}
	if r.rng.Intn(2) == 1 {
		teams[0], teams[1] = teams[1], teams[0]
	}
	return teams
}

func (r *matchRun) income() {
	for _, p := range r.state.allPlayers() {
		if !p.Alive {
			if r.state.GameTime >= p.RespawnAt {
				p.Alive = true
			}
			continue
		}

		p.Gold += PassiveGoldPerMin

		csMin := csPerMin[p.Role]
		goldPerCS := csGold[p.Role]
		if csMin == 0 {
			csMin, goldPerCS = 6.0, 18
		}
		p.Gold += csMin * goldPerCS
		p.CS += int(csMin)

		xp := xpPerMin[p.Role]
		if xp == 0 {
			xp = 400
		}
		p.XP += xp

		for p.Level < 18 && p.XP >= xpToLevel[p.Level+1] {
			p.Level++
			allocateSkill(p)
		}
	}
}

// allocateSkill follows the standard R > Q > W > E max order.
func allocateSkill(p *PlayerState) string {
	lvl := p.Level
	if (lvl == 6 || lvl == 11 || lvl == 16) && p.SkillPoints["R"] < 3 {
		p.SkillPoints["R"]++
		return "R"
	}
	for _, ab := range []string{"Q", "W", "E"} {
		if p.SkillPoints[ab] < 5 {
			p.SkillPoints[ab]++
			return ab
		}
	}
	return "Q"
}

func (r *matchRun) tickCooldowns() {
	for _, p := range r.state.allPlayers() {
		p.FlashCD = math.Max(0, p.FlashCD-60)
		p.TPCD = math.Max(0, p.TPCD-60)
	}
}

// updateCombatPower recomputes effective power from scaled stats plus a gold
// factor standing in for items.
func (r *matchRun) updateCombatPower() {
	for _, p := range r.state.allPlayers() {
		ad := p.statAtLevel(func(c ChampionStats) float64 { return c.AttackDamage })
		hp := p.statAtLevel(func(c ChampionStats) float64 { return c.HP })
		armor := p.statAtLevel(func(c ChampionStats) float64 { return c.Armor })
		mr := p.statAtLevel(func(c ChampionStats) float64 { return c.MagicResist })
		atkSpeed := p.statAtLevel(func(c ChampionStats) float64 { return c.AttackSpeed })

		effectiveHP := hp * (1 + armor/100) * (1 + mr/100)
		autoDPS := ad * atkSpeed

		p.CombatPower = effectiveHP/50 + autoDPS*3 + p.Gold/400
	}
}

func (r *matchRun) lanePhase() {
	state := r.state
	// Laning does not really start until minions meet around 2:00.
	if state.GameTime < 120 {
		return
	}

	for _, role := range []Role{RoleTop, RoleMid, RoleADC} {
		blue := state.Blue.PlayerByRole(role)
		red := state.Red.PlayerByRole(role)
		if blue == nil || red == nil || !blue.Alive || !red.Alive {
			continue
		}

		// Solo kills are uncommon: ~2% per lane per minute, a bit more after
		// the level 6 spike.
		killProb := 0.02
		if state.GameTime >= 360 {
			killProb += 0.01
		}

		powerDiff := blue.CombatPower - red.CombatPower
		avgPower := (blue.CombatPower + red.CombatPower) / 2
		if avgPower > 0 {
			killProb += (powerDiff / avgPower) * 0.02
		}

		if !red.FlashUp() && blue.FlashUp() {
			killProb += 0.015
		} else if !blue.FlashUp() && red.FlashUp() {
			killProb -= 0.015
		}

		if r.rng.Float64() < math.Abs(killProb) {
			favored, underdog := blue, red
			if powerDiff < 0 {
				favored, underdog = red, blue
			}
			// The weaker laner still wins the fight about a quarter of the
			// time.
			if r.rng.Float64() < 0.25 {
				r.applyKill(underdog, favored, "lane outplay")
			} else {
				r.applyKill(favored, underdog, "lane fight")
			}
		}
	}

	// First jungle clear finishes around 3:00.
	if state.GameTime >= 180 {
		r.ganks()
	}
}

func (r *matchRun) ganks() {
	state := r.state
	for _, team := range r.sides() {
		jungler := team.PlayerByRole(RoleJungle)
		if jungler == nil || !jungler.Alive {
			continue
		}

		gankProb := 0.12
		switch {
		case state.GameTime < 300:
			gankProb = 0.06
		case state.GameTime < 600:
			gankProb = 0.10
		}
		if jungler.Level < 3 || r.rng.Float64() > gankProb {
			continue
		}

		targetRole := []Role{RoleTop, RoleMid, RoleADC}[r.rng.Intn(3)]
		opponent := state.opponent(team.Side)
		target := opponent.PlayerByRole(targetRole)
		if target == nil || !target.Alive {
			continue
		}

		// Ganks fail more often than they succeed.
		successRate := 0.30
		advantage := state.goldAdvantage(team.Side)
		if advantage < -1200 {
			successRate += 0.05
		} else if advantage > 2500 {
			successRate -= 0.03
		}
		if !target.FlashUp() {
			successRate += 0.20
		}
		successRate = math.Max(0.20, math.Min(0.55, successRate))

		if r.rng.Float64() < successRate {
			if r.rng.Float64() < 0.15 {
				r.applyKill(target, jungler, "counter-gank")
			} else {
				r.applyKill(jungler, target, "gank")
			}
		} else if r.rng.Float64() < 0.3 {
			target.FlashCD = 300
			r.emit(EventFlashBurned,
				fmt.Sprintf("%s (%s) burns Flash to escape %s gank",
					target.PlayerName, target.ChampionID, team.Side),
				map[string]any{
					"target":      target.ChampionID,
					"target_side": opponent.Side,
					"target_role": target.Role,
					"gank_side":   team.Side,
				})
		}
	}
}

func (r *matchRun) skirmishes() {
	state := r.state
	fightProb := 0.12
	if state.Phase == lane.PhaseMid {
		fightProb = 0.08
	}
	if r.rng.Float64() >= fightProb {
		return
	}

	var bluePower, redPower float64
	for _, p := range state.Blue.Players {
		if p.Alive {
			bluePower += p.CombatPower
		}
	}
	for _, p := range state.Red.Players {
		if p.Alive {
			redPower += p.CombatPower
		}
	}
	total := bluePower + redPower
	if total == 0 {
		return
	}

	// Execution variance plus catch-up pressure create mid-game swings.
	pressure := comebackPressure(math.Abs(state.GoldDiff()))
	blueEffective := bluePower + r.rng.NormFloat64()*total*(0.15+pressure*0.08)

	comebackShift := total * 0.06 * pressure
	if state.GoldDiff() > 0 {
		blueEffective -= comebackShift
	} else if state.GoldDiff() < 0 {
		blueEffective += comebackShift
	}

	blueWinChance := math.Max(0.25, math.Min(0.75, blueEffective/total))
	blueWins := r.rng.Float64() < blueWinChance

	winner, loser := state.Blue, state.Red
	if !blueWins {
		winner, loser = state.Red, state.Blue
	}

	powerRatio := math.Max(bluePower, redPower) / total
	isStomp := powerRatio > 0.58

	var loserDeaths, winnerDeaths int
	if isStomp {
		loserDeaths = 2 + r.rng.Intn(3)
		if loserDeaths > loser.AliveCount() {
			loserDeaths = loser.AliveCount()
		}
		if r.rng.Float64() < 0.3 {
			winnerDeaths = 1
		}
	} else {
		maxLoser := loser.AliveCount()
		if maxLoser > 3 {
			maxLoser = 3
		}
		if maxLoser > 0 {
			loserDeaths = 1 + r.rng.Intn(maxLoser)
		}
		if r.rng.Float64() < 0.6 {
			winnerDeaths = 1 + r.rng.Intn(2)
		}
	}

	aliveLosers := loser.alivePlayers()
	r.rng.Shuffle(len(aliveLosers), func(i, j int) {
		aliveLosers[i], aliveLosers[j] = aliveLosers[j], aliveLosers[i]
	})
	for i := 0; i < loserDeaths && i < len(aliveLosers); i++ {
		aliveWinners := winner.alivePlayers()
		if len(aliveWinners) == 0 {
			break
		}
		killer := aliveWinners[r.rng.Intn(len(aliveWinners))]
		r.applyKill(killer, aliveLosers[i], "team fight")
	}
	for i := 0; i < winnerDeaths; i++ {
		aliveWinners := winner.alivePlayers()
		aliveRemaining := loser.alivePlayers()
		if len(aliveWinners) == 0 || len(aliveRemaining) == 0 {
			break
		}
		victim := aliveWinners[r.rng.Intn(len(aliveWinners))]
		killer := aliveRemaining[r.rng.Intn(len(aliveRemaining))]
		r.applyKill(killer, victim, "team fight")
	}

	r.emit(EventTeamFight,
		fmt.Sprintf("%s wins team fight (%d kills to %d)", winner.Side, loserDeaths, winnerDeaths),
		map[string]any{
			"winner":        winner.Side,
			"loser":         loser.Side,
			"loser_deaths":  loserDeaths,
			"winner_deaths": winnerDeaths,
		})
}

func (r *matchRun) objectives() {
	state := r.state

	if state.GameTime >= 300 && state.NextDragonSpawn <= 0 {
		for _, team := range r.sides() {
			dragonProb := 0.20
			advantage := state.goldAdvantage(team.Side)
			if advantage < -1500 {
				dragonProb += 0.06
			} else if advantage > 3000 {
				dragonProb -= 0.04
			}

			if team.AliveCount() >= 3 && r.rng.Float64() < dragonProb {
				dragon := elementalDragons[r.rng.Intn(len(elementalDragons))]
				team.DragonsTaken = append(team.DragonsTaken, dragon)
				state.NextDragonSpawn = 300
				state.DragonsSpawned++

				if len(team.DragonsTaken) >= state.SoulPoint {
					team.DragonSoul = team.DragonsTaken[len(team.DragonsTaken)-1]
				}

				r.emit(EventDragon,
					fmt.Sprintf("%s takes %s dragon (#%d)", team.Side, dragon, len(team.DragonsTaken)),
					map[string]any{"dragon_type": dragon, "team": team.Side})
				r.comebackGold(team, "dragon", 1600, 0.05, 120, 500)
				break
			}
		}
	}
	state.NextDragonSpawn = math.Max(0, state.NextDragonSpawn-60)

	// Herald is contestable between its 14:00 spawn and the 20:00 baron
	// spawn, once per game. The charge knocks a tower on capture.
	if state.GameTime >= 1200 {
		state.NextHeraldSpawn = math.Inf(1)
	}
	if state.NextHeraldSpawn <= 0 {
		for _, team := range r.sides() {
			heraldProb := 0.15
			if state.goldAdvantage(team.Side) < -1500 {
				heraldProb += 0.05
			}

			if team.AliveCount() >= 2 && r.rng.Float64() < heraldProb {
				opponent := state.opponent(team.Side)
				team.HeraldsTaken++
				state.NextHeraldSpawn = math.Inf(1)

				if opponent.TowersStanding > 0 {
					opponent.TowersStanding--
					for _, p := range team.Players {
						p.Gold += 350.0 / 5
					}
				}

				r.emit(EventHerald,
					fmt.Sprintf("%s takes Rift Herald and crashes it into a tower", team.Side),
					map[string]any{"team": team.Side, "remaining": opponent.TowersStanding})
				r.comebackGold(team, "herald", 1200, 0.04, 100, 400)
				break
			}
		}
	}
	state.NextHeraldSpawn = math.Max(0, state.NextHeraldSpawn-60)

	if state.GameTime >= 1200 && state.NextBaronSpawn <= 0 {
		for _, team := range r.sides() {
			opponent := state.opponent(team.Side)
			// Easier to start baron with enemies dead.
			baronProb := 0.08 + float64(5-opponent.AliveCount())*0.04
			advantage := state.goldAdvantage(team.Side)
			if advantage < -2000 {
				baronProb += 0.03
			} else if advantage > 5000 {
				baronProb -= 0.02
			}

			if team.AliveCount() >= 4 && r.rng.Float64() < baronProb {
				team.BaronsTaken++
				team.BaronBuffActive = true
				team.BaronBuffExpires = state.GameTime + 180
				state.NextBaronSpawn = 360

				r.emit(EventBaron,
					fmt.Sprintf("%s secures Baron Nashor", team.Side),
					map[string]any{"team": team.Side})
				r.comebackGold(team, "baron", 2200, 0.08, 180, 800)
				break
			}
		}
	}
	state.NextBaronSpawn = math.Max(0, state.NextBaronSpawn-60)

	for _, team := range []*TeamState{state.Blue, state.Red} {
		if team.BaronBuffActive && state.GameTime >= team.BaronBuffExpires {
			team.BaronBuffActive = false
		}
	}
}

func (r *matchRun) towers() {
	state := r.state
	// Plates and tower HP keep structures up until about 8:00.
	if state.GameTime < 480 {
		return
	}

	for _, team := range r.sides() {
		opponent := state.opponent(team.Side)
		if opponent.TowersStanding <= 0 {
			continue
		}

		var towerProb float64
		switch state.Phase {
		case lane.PhaseEarly:
			towerProb = 0.02
		case lane.PhaseMid:
			towerProb = 0.06
		default:
			towerProb = 0.10
		}
		if team.BaronBuffActive {
			towerProb *= 2.5
		}
		advantage := state.goldAdvantage(team.Side)
		if advantage > 2000 {
			towerProb += 0.02
		} else if advantage < -1800 {
			towerProb += 0.01
		}

		if r.rng.Float64() < towerProb {
			opponent.TowersStanding--
			// Local plus global tower gold, split across the team.
			for _, p := range team.Players {
				p.Gold += 350.0 / 5
			}
			r.comebackGold(team, "tower", 1400, 0.04, 90, 350)

			r.emit(EventTower,
				fmt.Sprintf("%s destroys a tower (%d remaining)", team.Side, opponent.TowersStanding),
				map[string]any{"team": team.Side, "remaining": opponent.TowersStanding})
		}
	}
}

func (r *matchRun) checkNexus() {
	state := r.state
	for _, team := range []*TeamState{state.Blue, state.Red} {
		opponent := state.opponent(team.Side)
		if opponent.TowersStanding <= 0 {
			state.GameOver = true
			state.Winner = team.Side
			r.emit(EventNexus,
				fmt.Sprintf("%s team destroys the nexus", team.Side),
				map[string]any{"team": team.Side})
			return
		}
	}
}

// checkLateGameEnd lets large late-game leads close matches out early.
func (r *matchRun) checkLateGameEnd() {
	state := r.state
	goldDiff := math.Abs(state.GoldDiff())
	leadingSide := "red"
	if state.GoldDiff() > 0 {
		leadingSide = "blue"
	}
	leader := state.team(leadingSide)
	loser := state.opponent(leadingSide)

	endProb := 0.0
	if goldDiff > 12000 {
		endProb += 0.08
	}
	if leader.BaronBuffActive {
		endProb += 0.10
	}
	if loser.TowersStanding <= 2 {
		endProb += 0.08
	}
	if leader.DragonSoul != "" {
		endProb += 0.04
	}

	if r.rng.Float64() < endProb {
		state.GameOver = true
		state.Winner = leadingSide
		r.emit(EventNexus,
			fmt.Sprintf("%s team closes out the game", leadingSide),
			map[string]any{"team": leadingSide})
	}
}

func comebackPressure(goldDeficit float64) float64 {
	if goldDeficit <= 0 {
		return 0
	}
	return math.Min(1, goldDeficit/9000)
}

// comebackGold grants bounty gold on objectives to teams meaningfully behind.
func (r *matchRun) comebackGold(team *TeamState, source string, threshold, multiplier, baseBonus, cap float64) {
	deficit := math.Max(0, -r.state.goldAdvantage(team.Side))
	if deficit < threshold {
		return
	}

	bonus := math.Floor(math.Min(cap, baseBonus+(deficit-threshold)*multiplier))
	if bonus <= 0 {
		return
	}

	perPlayer := bonus / float64(len(team.Players))
	for _, p := range team.Players {
		p.Gold += perPlayer
	}
	r.emit(EventComebackGold,
		fmt.Sprintf("%s earns +%.0f comeback gold from %s", team.Side, bonus, source),
		map[string]any{"team": team.Side, "source": source, "gold": bonus})
}

// applyKill processes a kill: gold, death timer, and KDA updates. Shutdown
// bounties and catch-up gold are the main comeback levers.
func (r *matchRun) applyKill(killer, victim *PlayerState, context string) {
	state := r.state

	killer.Kills++
	victim.Deaths++
	victim.Alive = false

	var killerTeam, victimTeam *TeamState
	for _, team := range []*TeamState{state.Blue, state.Red} {
		for _, p := range team.Players {
			if p == killer {
				killerTeam = team
			}
		}
	}
	if killerTeam != nil {
		victimTeam = state.opponent(killerTeam.Side)
	}

	// Death timer scales with level and stretches in late game.
	deathTimer := 6 + float64(victim.Level)*2
	if state.Phase == lane.PhaseLate {
		deathTimer *= 1.5
	}
	victim.RespawnAt = state.GameTime + deathTimer

	baseGold := 300.0

	// Shutdown bounty: killing a fed player pays extra.
	victimStreak := victim.Kills - victim.Deaths
	shutdownBonus := 0.0
	if victimStreak >= 2 {
		shutdownBonus = 150 * math.Min(float64(victimStreak-1), 5)
	}

	// Repeated deaths without kills make the victim worth less.
	if victim.Deaths > victim.Kills+3 {
		baseGold = math.Max(100, baseGold-50*float64(victim.Deaths-victim.Kills-3))
	}

	comebackBonus := 0.0
	goldDeficit := 0.0
	if killerTeam != nil && victimTeam != nil {
		goldDeficit = math.Max(0, victimTeam.TotalGold()-killerTeam.TotalGold())
		if goldDeficit >= 1200 {
			comebackBonus = math.Min(250, math.Floor(40+(goldDeficit-1200)*0.03))
		}
	}

	bounty := baseGold + shutdownBonus + comebackBonus
	killer.Gold += bounty

	if killerTeam != nil {
		assistGold := 100.0
		if goldDeficit >= 2000 {
			assistGold = 115
		}
		for _, p := range killerTeam.Players {
			if p != killer && p.Alive {
				p.Assists++
				p.Gold += assistGold
			}
		}
	}

	// Killing a higher-level player grants catch-up XP.
	if victim.Level > killer.Level {
		killer.XP += float64(victim.Level-killer.Level) * 60
	}

	killerSide, victimSide := "", ""
	if killerTeam != nil {
		killerSide = killerTeam.Side
	}
	if victimTeam != nil {
		victimSide = victimTeam.Side
	}
	desc := fmt.Sprintf("%s (%s) kills %s (%s) [%s]",
		killer.PlayerName, killer.ChampionID, victim.PlayerName, victim.ChampionID, context)
	if shutdownBonus > 0 {
		desc += fmt.Sprintf(" [SHUTDOWN +%.0fg]", shutdownBonus)
	}
	if comebackBonus > 0 {
		desc += fmt.Sprintf(" [COMEBACK +%.0fg]", comebackBonus)
	}
	r.emit(EventKill, desc, map[string]any{
		"killer":         killer.ChampionID,
		"killer_side":    killerSide,
		"killer_role":    killer.Role,
		"victim":         victim.ChampionID,
		"victim_side":    victimSide,
		"victim_role":    victim.Role,
		"context":        context,
		"gold_earned":    bounty,
		"shutdown_bonus": shutdownBonus,
		"comeback_bonus": comebackBonus,
	})
}
