package cmd

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Show the detailed match between a student and a placement",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("student", "s", "", "student id")
	analyzeCmd.Flags().StringP("placement", "p", "", "placement id")

	analyzeCmd.MarkFlagRequired("student")
	analyzeCmd.MarkFlagRequired("placement")
}

func analyze(cmd *cobra.Command) {
	ctx := context.Background()

	logger, config := bootstrap()

	studentID, err := flagUUID(cmd, "student")
	if err != nil {
		logger.Fatal("parsing student id", zap.Error(err))
	}

	placementID, err := flagUUID(cmd, "placement")
	if err != nil {
		logger.Fatal("parsing placement id", zap.Error(err))
	}

	engine, st, err := setup(ctx, config, logger)
	if err != nil {
		logger.Fatal("setting up", zap.Error(err))
	}
	defer st.Close()

	analysis, err := engine.Analyze(ctx, studentID, placementID)
	if err != nil {
		logger.Fatal("analyzing the match", zap.Error(err))
	}

	pretty, _ := json.MarshalIndent(analysis, "", "  ")
	logger.Info(string(pretty),
		zap.Float64("score", analysis.Score.Overall),
		zap.Bool("has_applied", analysis.HasApplied),
	)
}
