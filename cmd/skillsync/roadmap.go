package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillsync/internal/catalog"
	"github.com/jonathan/skillsync/internal/gap"
	"github.com/jonathan/skillsync/internal/observability"
	"github.com/jonathan/skillsync/internal/roadmap"
	"github.com/jonathan/skillsync/internal/types"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate a learning roadmap for a target role",
	Long:  "Run a gap analysis against the target role, then print the ordered learning roadmap as JSON.",
	RunE:  runRoadmap,
}

var (
	roadmapSkills    string
	roadmapRole      string
	roadmapDataDir   string
	roadmapModelPath string
	roadmapVerbose   bool
)

func init() {
	roadmapCmd.Flags().StringVar(&roadmapSkills, "skills", "", `Skills as "id=level" pairs, e.g. "python=intermediate,sql=beginner"`)
	roadmapCmd.Flags().StringVar(&roadmapRole, "role", "", "Target role id (required)")
	roadmapCmd.Flags().StringVar(&roadmapDataDir, "data", "data", "Directory containing the catalog CSV files")
	roadmapCmd.Flags().StringVar(&roadmapModelPath, "model", "", "Path to readiness model artifact")
	roadmapCmd.Flags().BoolVarP(&roadmapVerbose, "verbose", "v", false, "Print a formatted summary to stderr")
	_ = roadmapCmd.MarkFlagRequired("role")

	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmap(_ *cobra.Command, _ []string) error {
	cat := catalog.Load(roadmapDataDir)
	analyzer := gap.NewAnalyzer(cat, loadScorer(roadmapModelPath))

	report, err := analyzer.Analyze(parseSkillPairs(roadmapSkills), roadmapRole)
	if err != nil {
		return fmt.Errorf("gap analysis failed: %w", err)
	}

	missing := make([]string, 0, len(report.Missing))
	for _, skill := range report.Missing {
		missing = append(missing, skill.SkillID)
	}
	toImprove := make([]types.ImproveInput, 0, len(report.ToImprove))
	for _, skill := range report.ToImprove {
		toImprove = append(toImprove, types.ImproveInput{
			SkillID:      skill.SkillID,
			CurrentLevel: skill.CurrentLevel,
		})
	}

	plan := roadmap.NewBuilder(cat).Build(missing, toImprove)

	if roadmapVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintGapReport(report)
		printer.PrintRoadmap(plan)
	}

	jsonBytes, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonBytes))

	return nil
}
