package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillsync/internal/catalog"
	"github.com/jonathan/skillsync/internal/gap"
	"github.com/jonathan/skillsync/internal/observability"
	"github.com/jonathan/skillsync/internal/scoring"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze skill gaps for a target role",
	Long:  "Compare a set of skills against a target role's requirements and print the gap report as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeSkills    string
	analyzeRole      string
	analyzeDataDir   string
	analyzeModelPath string
	analyzeVerbose   bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeSkills, "skills", "", `Skills as "id=level" pairs, e.g. "python=intermediate,sql=beginner"`)
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Target role id (required)")
	analyzeCmd.Flags().StringVar(&analyzeDataDir, "data", "data", "Directory containing the catalog CSV files")
	analyzeCmd.Flags().StringVar(&analyzeModelPath, "model", "", "Path to readiness model artifact")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted summary to stderr")
	_ = analyzeCmd.MarkFlagRequired("role")

	rootCmd.AddCommand(analyzeCmd)
}

// parseSkillPairs parses "id=level" pairs separated by commas. Entries
// without a level default to beginner.
func parseSkillPairs(input string) map[string]string {
	skills := make(map[string]string)
	for _, pair := range strings.Split(input, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		id, level, found := strings.Cut(pair, "=")
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if !found || strings.TrimSpace(level) == "" {
			skills[id] = "beginner"
			continue
		}
		skills[id] = strings.ToLower(strings.TrimSpace(level))
	}
	return skills
}

func loadScorer(modelPath string) *scoring.Scorer {
	if modelPath == "" {
		return scoring.NewScorer(nil)
	}
	model, err := scoring.LoadModel(modelPath)
	if err != nil {
		log.Printf("Could not load readiness model, using heuristic scoring: %v", err)
		return scoring.NewScorer(nil)
	}
	return scoring.NewScorer(model)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cat := catalog.Load(analyzeDataDir)
	analyzer := gap.NewAnalyzer(cat, loadScorer(analyzeModelPath))

	report, err := analyzer.Analyze(parseSkillPairs(analyzeSkills), analyzeRole)
	if err != nil {
		return fmt.Errorf("gap analysis failed: %w", err)
	}

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintGapReport(report)
		printer.PrintRecommendations(&report.Recommendations)
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonBytes))

	return nil
}
