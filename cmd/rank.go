package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/placemate/placemate/internal/matching"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	PromptYes             = "Yes"
	PromptNo              = "No"
	PromptBack            = "back"
	PromptReportByCompany = "Report by company"
	PromptManualApply     = "Apply to placements in manual mode"
	PromptMatchesToFile   = "Dump matches to file"
	PromptExit            = "Exit"
)

var errExit = errors.New("exit requested")

var rankPrompt = promptui.Select{
	Label: "Proceed?",
	Items: []string{PromptManualApply, PromptReportByCompany, PromptMatchesToFile, PromptExit},
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank open placements for a student",
	Run: func(cmd *cobra.Command, _ []string) {
		rank(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringP("student", "s", "", "student id")
	rankCmd.Flags().IntP("limit", "l", 0, "maximum number of matches to return")
	rankCmd.Flags().BoolP("no-input", "q", false, "print the ranking and exit without the interactive prompt")

	rankCmd.MarkFlagRequired("student")
}

// rank is the main command for the cli.
func rank(cmd *cobra.Command) {
	ctx := context.Background()

	logger, config := bootstrap()

	logger.Info("starting the placemate", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	studentID, err := flagUUID(cmd, "student")
	if err != nil {
		logger.Fatal("parsing student id", zap.Error(err))
	}

	limit, _ := cmd.Flags().GetInt("limit")

	engine, st, err := setup(ctx, config, logger)
	if err != nil {
		logger.Fatal("setting up", zap.Error(err))
	}
	defer st.Close()

	results, err := engine.Rank(ctx, studentID, limit)
	if err != nil {
		logger.Fatal("ranking placements", zap.Error(err))
	}

	if results.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no matches found"))
		return
	}

	printResults(results, logger)

	if cmd.Flag("no-input").Value.String() == "true" {
		return
	}

	for {
		_, action, err := rankPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleRankAction(ctx, action, engine, logger, studentID, &results); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}

		if results.Len() == 0 {
			logger.Info("exiting", zap.String("reason", "no matches left"))
			return
		}
	}
}

func handleRankAction(ctx context.Context, action string, engine *matching.Engine, logger *zap.Logger, studentID uuid.UUID, results *matching.Results) error {
	switch action {
	case PromptManualApply:
		return manualApply(ctx, engine, logger, studentID, results)
	case PromptReportByCompany:
		pretty, _ := json.MarshalIndent(results.Placements().ReportByCompany(), "", "  ")
		logger.Info(string(pretty), zap.Int("matches count", results.Len()))
		return nil
	case PromptMatchesToFile:
		filename, err := results.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func manualApply(ctx context.Context, engine *matching.Engine, logger *zap.Logger, studentID uuid.UUID, results *matching.Results) error {
	for {
		items := make([]string, 0, results.Len())

		for _, result := range *results {
			items = append(items, fmt.Sprintf("%s %s / %s / score %.2f",
				result.Placement.ID, result.Placement.Title, companyName(result), result.Score.Overall,
			))
		}

		placementPrompt := promptui.Select{
			Label: "Choose a placement and press ENTER",
			Items: append(items, PromptBack),
		}

		_, selected, err := placementPrompt.Run()
		if err != nil {
			return err
		}

		if selected == PromptBack {
			return nil
		}

		placementID, err := uuid.Parse(strings.Split(selected, " ")[0])
		if err != nil {
			return err
		}

		app, err := engine.Apply(ctx, studentID, placementID)
		if err != nil {
			if errors.Is(err, matching.ErrAlreadyApplied) {
				logger.Warn("already applied to this placement", zap.String("placement_id", placementID.String()))
				removeResult(results, placementID)
				continue
			}
			return err
		}

		logger.Info("successfully applied to placement",
			zap.String("application_id", app.ID.String()),
			zap.String("placement_id", placementID.String()),
			zap.Float64("match_overall", app.MatchOverall),
		)

		removeResult(results, placementID)

		if results.Len() == 0 {
			return nil
		}
	}
}

func printResults(results matching.Results, logger *zap.Logger) {
	logger.Info("current list of matches", zap.Int("count", results.Len()))

	for i, result := range results {
		logger.Info(fmt.Sprintf("%d. %s / %s", i+1, result.Placement.Title, companyName(result)),
			zap.String("placement_id", result.Placement.ID.String()),
			zap.Float64("score", result.Score.Overall),
			zap.Strings("reasons", result.Reasons),
		)
	}
}

func companyName(result *matching.MatchResult) string {
	if result.Placement.Company != nil {
		return result.Placement.Company.Name
	}
	return "unknown"
}

func removeResult(results *matching.Results, placementID uuid.UUID) {
	kept := (*results)[:0]
	for _, result := range *results {
		if result.Placement.ID == placementID {
			continue
		}
		kept = append(kept, result)
	}
	*results = kept
}
