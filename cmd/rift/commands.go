package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rift/engine"
	"rift/explain"
	"rift/lane"
	"rift/scraper"
	"rift/searcher"
	"rift/server"
	"rift/warehouse"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP advisor API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.New(cfg, logger).Run()
	},
}

var (
	stateFile  string
	iterations int
	policyName string
	workers    int
	seed       uint64
)

func searchFromFlags(cmd *cobra.Command) (*searcher.MCTS, error) {
	if iterations <= 0 {
		iterations = cfg.Search.Iterations
	}
	if workers <= 0 {
		workers = cfg.Search.Workers
	}
	if policyName == "" {
		policyName = cfg.Search.Policy
	}
	policy, err := lane.ParseOpponentPolicy(policyName)
	if err != nil {
		return nil, err
	}

	options := []searcher.Option{
		searcher.WithIterations(iterations),
		searcher.WithRolloutDepth(cfg.Search.RolloutDepth),
		searcher.WithExploration(cfg.Search.Exploration),
		searcher.WithWorkers(workers),
		searcher.WithPolicy(policy),
	}
	if cmd.Flags().Changed("seed") {
		options = append(options, searcher.WithSeed(seed))
	}
	return searcher.NewMCTS(options...), nil
}

// loadState reads a JSON field map, defaulting every missing field.
func loadState(path string) (lane.LaneState, error) {
	if path == "" {
		return lane.NewLaneState(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return lane.LaneState{}, fmt.Errorf("read state file: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return lane.LaneState{}, fmt.Errorf("parse state file %s: %w", path, err)
	}
	return lane.FromFields(fields), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Recommend the next lane action for a state",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := loadState(stateFile)
		if err != nil {
			return err
		}
		search, err := searchFromFlags(cmd)
		if err != nil {
			return err
		}

		rec := search.Search(state)
		logger.Info().
			Str("action", rec.Action).
			Float64("confidence", rec.Confidence).
			Int("iterations", rec.Iterations).
			Msg("search complete")

		return printJSON(struct {
			Recommendation searcher.Recommendation `json:"recommendation"`
			Explanation    explain.Explanation     `json:"explanation"`
		}{rec, explain.Explain(&state, rec)})
	},
}

var planSteps int

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Chain searches into a multi-step lane plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := loadState(stateFile)
		if err != nil {
			return err
		}
		search, err := searchFromFlags(cmd)
		if err != nil {
			return err
		}
		return printJSON(search.Plan(state, planSteps))
	},
}

var (
	simRuns   int
	simOutDir string
	blueTeam  string
	redTeam   string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate full matches between two default drafts",
	RunE: func(cmd *cobra.Command, args []string) error {
		var writer *warehouse.BatchWriter
		if simOutDir != "" {
			var err error
			writer, err = warehouse.NewBatchWriter(simOutDir)
			if err != nil {
				return err
			}
		}

		for i := 0; i < simRuns; i++ {
			options := []engine.Option{engine.WithLogger(logger)}
			if cmd.Flags().Changed("seed") {
				options = append(options, engine.WithSeed(seed+uint64(i)))
			}

			state := engine.NewMatchState(blueTeam, redTeam, defaultDraft("blue"), defaultDraft("red"), "")
			result := engine.NewSimulator(options...).Run(state)

			if writer != nil {
				row, err := warehouse.NewMatchRow(result)
				if err != nil {
					return err
				}
				if err := writer.WriteRows([]warehouse.MatchRow{row}); err != nil {
					return err
				}
			} else if err := printJSON(result); err != nil {
				return err
			}
		}

		if writer != nil {
			outPath, rows, err := writer.Finalize()
			if err != nil {
				return err
			}
			logger.Info().Str("path", outPath).Int("rows", rows).Msg("batch written")
		}
		return nil
	},
}

var patchesCmd = &cobra.Command{
	Use:   "patches",
	Short: "List recent patches from the patch notes index",
	RunE: func(cmd *cobra.Command, args []string) error {
		worker := scraper.NewWorker(scraper.DefaultConfig(), logger)
		patches, err := worker.FetchPatches()
		if err != nil {
			return err
		}
		return printJSON(patches)
	},
}

func defaultDraft(prefix string) []engine.DraftEntry {
	return []engine.DraftEntry{
		{ChampionID: prefix + "-top", Role: engine.RoleTop},
		{ChampionID: prefix + "-jungle", Role: engine.RoleJungle},
		{ChampionID: prefix + "-mid", Role: engine.RoleMid},
		{ChampionID: prefix + "-adc", Role: engine.RoleADC},
		{ChampionID: prefix + "-support", Role: engine.RoleSupport},
	}
}

func init() {
	for _, cmd := range []*cobra.Command{adviseCmd, planCmd} {
		cmd.Flags().StringVarP(&stateFile, "file", "f", "", "JSON file with lane state fields (baseline when omitted)")
		cmd.Flags().IntVarP(&iterations, "iterations", "n", 0, "search budget (config default when 0)")
		cmd.Flags().StringVarP(&policyName, "policy", "p", "", "opponent policy: average, optimal, or passive")
		cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel search workers")
		cmd.Flags().Uint64Var(&seed, "seed", 0, "pin the random seed")
	}
	planCmd.Flags().IntVar(&planSteps, "steps", 3, "plan length")

	simulateCmd.Flags().IntVar(&simRuns, "runs", 1, "matches to simulate")
	simulateCmd.Flags().StringVar(&simOutDir, "out", "", "write results as a parquet batch instead of stdout")
	simulateCmd.Flags().StringVar(&blueTeam, "blue", "BLUE", "blue team id")
	simulateCmd.Flags().StringVar(&redTeam, "red", "RED", "red team id")
	simulateCmd.Flags().Uint64Var(&seed, "seed", 0, "base seed; run i uses seed+i")
}
