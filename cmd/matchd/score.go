package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/opportunity-matcher/internal/parsing"
	"github.com/jonathan/opportunity-matcher/internal/profile"
	"github.com/jonathan/opportunity-matcher/internal/scoring"
	"github.com/jonathan/opportunity-matcher/internal/types"
)

var (
	scoreProfilePath string
	scoreCatalogPath string
	scoreLimit       int
	scoreMinScore    float64
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a catalog against a quiz profile offline",
	Long: `Score reads a quiz-responses JSON file and an opportunities JSON file,
runs the deterministic scoring pass without any database or AI calls, and
prints the ranked recommendations as JSON. Useful for tuning weights and
inspecting factor breakdowns.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreProfilePath, "profile", "", "Path to quiz responses JSON (required)")
	scoreCmd.Flags().StringVar(&scoreCatalogPath, "catalog", "", "Path to opportunities JSON array (required)")
	scoreCmd.Flags().IntVar(&scoreLimit, "limit", types.DefaultLimit, "Maximum recommendations to print")
	scoreCmd.Flags().Float64Var(&scoreMinScore, "min-score", types.DefaultMinScore, "Minimum total score to include")
	_ = scoreCmd.MarkFlagRequired("profile")
	_ = scoreCmd.MarkFlagRequired("catalog")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	rawProfile, err := os.ReadFile(scoreProfilePath)
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}
	rawCatalog, err := os.ReadFile(scoreCatalogPath)
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var opps []types.BusinessOpportunity
	if err := json.Unmarshal(rawCatalog, &opps); err != nil {
		return fmt.Errorf("failed to parse catalog file: %w", err)
	}
	for i := range opps {
		if opps[i].ID == uuid.Nil {
			opps[i].ID = uuid.New()
		}
		opps[i].CostRange = parsing.ParseCostRange(opps[i].StartupCost)
	}

	prof := profile.Normalize(uuid.New(), rawProfile)

	matcher := scoring.NewSkillMatcher(nil, 0, zap.NewNop())
	eligible := scoring.FilterAvoidances(prof, opps)

	ctx := cmd.Context()
	scored := make([]types.Recommendation, 0, len(eligible))
	for i := range eligible {
		o := &eligible[i]
		skillScore, source := matcher.Match(ctx, prof, o, false)
		scored = append(scored, scoring.ScoreOpportunity(prof, o, skillScore, source))
	}
	ranked := scoring.Rank(scored, scoreMinScore, scoreLimit)

	out, err := json.MarshalIndent(map[string]any{
		"total_analyzed":  len(opps),
		"total_matches":   len(ranked),
		"recommendations": ranked,
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
