// Package warehouse persists simulated match results as parquet batches.
// Files are written under a tmp/ directory and renamed into place on
// finalize, so readers never observe a partially written batch.
package warehouse

import (
	"encoding/json"

	"rift/engine"
)

// MatchRow is one simulated match flattened for columnar storage. The full
// timeline is kept as a JSON blob; everything queried in aggregate gets its
// own column.
type MatchRow struct {
	MatchID            string  `parquet:"match_id,dict"`
	Patch              string  `parquet:"patch,dict"`
	BlueTeamID         string  `parquet:"blue_team_id,dict"`
	RedTeamID          string  `parquet:"red_team_id,dict"`
	Winner             string  `parquet:"winner,dict"`
	DurationSeconds    float64 `parquet:"duration_seconds"`
	BlueWinProbability float64 `parquet:"blue_win_probability"`

	BlueKills   int32 `parquet:"blue_kills"`
	BlueDeaths  int32 `parquet:"blue_deaths"`
	BlueAssists int32 `parquet:"blue_assists"`
	RedKills    int32 `parquet:"red_kills"`
	RedDeaths   int32 `parquet:"red_deaths"`
	RedAssists  int32 `parquet:"red_assists"`

	FinalGoldDiff float64 `parquet:"final_gold_diff"`
	EventCount    int32   `parquet:"event_count"`

	Timeline []byte `parquet:"timeline"`
}

// NewMatchRow flattens a finished simulation into a storable row.
func NewMatchRow(result engine.Result) (MatchRow, error) {
	timeline, err := json.Marshal(result.Timeline)
	if err != nil {
		return MatchRow{}, err
	}

	var goldDiff float64
	if n := len(result.GoldCurve); n > 0 {
		goldDiff = result.GoldCurve[n-1].GoldDiff
	}

	return MatchRow{
		MatchID:            result.MatchID,
		Patch:              result.Patch,
		BlueTeamID:         result.BlueTeamID,
		RedTeamID:          result.RedTeamID,
		Winner:             result.Winner,
		DurationSeconds:    result.DurationSeconds,
		BlueWinProbability: result.BlueWinProbability,
		BlueKills:          int32(result.BlueKDA.Kills),
		BlueDeaths:         int32(result.BlueKDA.Deaths),
		BlueAssists:        int32(result.BlueKDA.Assists),
		RedKills:           int32(result.RedKDA.Kills),
		RedDeaths:          int32(result.RedKDA.Deaths),
		RedAssists:         int32(result.RedKDA.Assists),
		FinalGoldDiff:      goldDiff,
		EventCount:         int32(len(result.Timeline)),
		Timeline:           timeline,
	}, nil
}

// Events decodes the stored timeline blob.
func (r MatchRow) Events() ([]engine.Event, error) {
	var events []engine.Event
	if len(r.Timeline) == 0 {
		return nil, nil
	}
	if err := json.Unmarshal(r.Timeline, &events); err != nil {
		return nil, err
	}
	return events, nil
}
