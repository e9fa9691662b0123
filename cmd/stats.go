package cmd

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize match quality for a student",
	Run: func(cmd *cobra.Command, _ []string) {
		stats(cmd)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringP("student", "s", "", "student id")

	statsCmd.MarkFlagRequired("student")
}

func stats(cmd *cobra.Command) {
	ctx := context.Background()

	logger, config := bootstrap()

	studentID, err := flagUUID(cmd, "student")
	if err != nil {
		logger.Fatal("parsing student id", zap.Error(err))
	}

	engine, st, err := setup(ctx, config, logger)
	if err != nil {
		logger.Fatal("setting up", zap.Error(err))
	}
	defer st.Close()

	summary, err := engine.Stats(ctx, studentID)
	if err != nil {
		logger.Fatal("computing match stats", zap.Error(err))
	}

	pretty, _ := json.MarshalIndent(summary, "", "  ")
	logger.Info(string(pretty), zap.Int("matches", summary.Matches))
}
