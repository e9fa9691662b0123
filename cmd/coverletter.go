package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter",
	Short: "Generate a cover letter for a placement without applying",
	Run: func(cmd *cobra.Command, _ []string) {
		coverLetter(cmd)
	},
}

func init() {
	rootCmd.AddCommand(coverLetterCmd)

	coverLetterCmd.Flags().StringP("student", "s", "", "student id")
	coverLetterCmd.Flags().StringP("placement", "p", "", "placement id")

	coverLetterCmd.MarkFlagRequired("student")
	coverLetterCmd.MarkFlagRequired("placement")
}

func coverLetter(cmd *cobra.Command) {
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

	letter, err := engine.GenerateCoverLetter(ctx, studentID, placementID)
	if err != nil {
		logger.Fatal("generating cover letter", zap.Error(err))
	}

	fmt.Println(letter)
}
