package cmd

import (
	"context"
	"errors"

	"github.com/placemate/placemate/internal/matching"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply to a placement on behalf of a student",
	Run: func(cmd *cobra.Command, _ []string) {
		applyRun(cmd)
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringP("student", "s", "", "student id")
	applyCmd.Flags().StringP("placement", "p", "", "placement id")
	applyCmd.Flags().BoolP("auto-approve", "y", false, "do not ask for confirmation before applying")

	applyCmd.MarkFlagRequired("student")
	applyCmd.MarkFlagRequired("placement")
}

func applyRun(cmd *cobra.Command) {
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

	if analysis.HasApplied {
		logger.Fatal("already applied to this placement",
			zap.String("placement_id", placementID.String()),
			zap.String("status", analysis.ApplicationStatus),
		)
	}

	logger.Info("match analysis",
		zap.String("placement_title", analysis.Placement.Title),
		zap.Float64("score", analysis.Score.Overall),
		zap.Strings("reasons", analysis.Reasons),
	)

	if cmd.Flag("auto-approve").Value.String() == "false" {
		confirm := promptui.Select{
			Label: "Apply to this placement?",
			Items: []string{PromptYes, PromptNo},
		}

		_, answer, err := confirm.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if answer == PromptNo {
			logger.Info("exiting", zap.String("reason", "got no from prompt"))
			return
		}
	}

	app, err := engine.Apply(ctx, studentID, placementID)
	if err != nil {
		if errors.Is(err, matching.ErrAlreadyApplied) {
			logger.Fatal("already applied to this placement", zap.String("placement_id", placementID.String()))
		}
		logger.Fatal("applying to placement", zap.Error(err))
	}

	logger.Info("successfully applied to placement",
		zap.String("application_id", app.ID.String()),
		zap.String("placement_id", placementID.String()),
		zap.Float64("match_overall", app.MatchOverall),
	)
}
