package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crickstats/crickstats/internal/leaderboard"
	"github.com/crickstats/crickstats/internal/model"
	"github.com/crickstats/crickstats/internal/report"
)

var leaderboardCmd = &cobra.Command{
	Use:     "leaderboard",
	Aliases: []string{"board"},
	Short:   "Ranking queries over the loaded dataset",
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Top run scorers",
	Args:  cobra.NoArgs,
	RunE:  runRunsBoard,
}

var strikeRateCmd = &cobra.Command{
	Use:   "strike-rate",
	Short: "Best strike rates",
	Args:  cobra.NoArgs,
	RunE:  runStrikeRateBoard,
}

var wicketsCmd = &cobra.Command{
	Use:   "wickets",
	Short: "Most wickets",
	Args:  cobra.NoArgs,
	RunE:  runWicketsBoard,
}

var economyCmd = &cobra.Command{
	Use:   "economy",
	Short: "Most economical bowlers",
	Args:  cobra.NoArgs,
	RunE:  runEconomyBoard,
}

var vsPaceCmd = &cobra.Command{
	Use:   "vs-pace",
	Short: "Best batsmen against pace",
	Args:  cobra.NoArgs,
	RunE:  runVsPaceBoard,
}

var vsSpinCmd = &cobra.Command{
	Use:   "vs-spin",
	Short: "Best batsmen against spin",
	Args:  cobra.NoArgs,
	RunE:  runVsSpinBoard,
}

var vsHandCmd = &cobra.Command{
	Use:   "vs-hand <left|right>",
	Short: "Best bowlers against a batting hand",
	Args:  cobra.ExactArgs(1),
	RunE:  runVsHandBoard,
}

var groundsCmd = &cobra.Command{
	Use:   "grounds",
	Short: "Top run scorers at each ground",
	Args:  cobra.NoArgs,
	RunE:  runGroundsBoard,
}

var phaseBoardCmd = &cobra.Command{
	Use:   "phase <powerplay|middle|death>",
	Short: "Batting and bowling leaders in one phase",
	Args:  cobra.ExactArgs(1),
	RunE:  runPhaseBoard,
}

func init() {
	leaderboardCmd.PersistentFlags().StringVar(&flagDataset, "dataset", "", "dataset hash prefix (default: most recent)")
	leaderboardCmd.PersistentFlags().IntSliceVar(&flagSeasons, "season", nil, "restrict to seasons (repeatable)")
	leaderboardCmd.PersistentFlags().StringVar(&flagGround, "ground", "", "restrict to grounds containing this substring")
	leaderboardCmd.PersistentFlags().StringVar(&flagTeam, "team", "", "restrict to matches involving this team")
	leaderboardCmd.PersistentFlags().StringVar(&flagVenue, "venue", "", "restrict to home or away fixtures")
	leaderboardCmd.PersistentFlags().IntVar(&flagInnings, "innings", 0, "restrict to innings 1 or 2")

	leaderboardCmd.AddCommand(runsCmd)
	leaderboardCmd.AddCommand(strikeRateCmd)
	leaderboardCmd.AddCommand(wicketsCmd)
	leaderboardCmd.AddCommand(economyCmd)
	leaderboardCmd.AddCommand(vsPaceCmd)
	leaderboardCmd.AddCommand(vsSpinCmd)
	leaderboardCmd.AddCommand(vsHandCmd)
	leaderboardCmd.AddCommand(groundsCmd)
	leaderboardCmd.AddCommand(phaseBoardCmd)
}

func runRunsBoard(cmd *cobra.Command, args []string) error {
	tbl, closeDB, err := loadTable()
	if err != nil {
		return err
	}
	defer closeDB()
	report.PrintBattingLeaders(os.Stdout, "Top run scorers",
		leaderboard.TopRunScorers(tbl, cfg.TopN))
	return nil
}

func runStrikeRateBoard(cmd *cobra.Command, args []string) error {
	tbl, closeDB, err := loadTable()
	if err != nil {
		return err
	}
	defer closeDB()
	title := fmt.Sprintf("Best strike rates (min %d balls)", cfg.MinStrikeRateBalls)
	report.PrintBattingLeaders(os.Stdout, title,
		leaderboard.BestStrikeRates(tbl, cfg.MinStrikeRateBalls, cfg.TopN))
	return nil
}

func runWicketsBoard(cmd *cobra.Command, args []string) error {
	tbl, closeDB, err := loadTable()
	if err != nil {
		return err
	}
	defer closeDB()
	report.PrintBowlingLeaders(os.Stdout, "Most wickets",
		leaderboard.MostWickets(tbl, cfg.TopN))
	return nil
}

func runEconomyBoard(cmd *cobra.Command, args []string) error {
	tbl, closeDB, err := loadTable()
	if err != nil {
		return err
	}
	defer closeDB()
	title := fmt.Sprintf("Most economical (min %.0f overs)", cfg.MinEconomyOvers)
	report.PrintBowlingLeaders(os.Stdout, title,
		leaderboard.MostEconomical(tbl, cfg.MinEconomyOvers, cfg.TopN))
	return nil
}

func runVsPaceBoard(cmd *cobra.Command, args []string) error {
	tbl, closeDB, err := loadTable()
	if err != nil {
		return err
	}
	defer closeDB()
	title := fmt.Sprintf("Best vs pace (min %d balls)", cfg.MinStyleBalls)
	report.PrintBattingLeaders(os.Stdout, title,
		leaderboard.BestVsPace(tbl, cfg.MinStyleBalls, cfg.TopN))
	return nil
}

func runVsSpinBoard(cmd *cobra.Command, args []string) error {
	tbl, closeDB, err := loadTable()
	if err != nil {
		return err
	}
	defer closeDB()
	title := fmt.Sprintf("Best vs spin (min %d balls)", cfg.MinStyleBalls)
	report.PrintBattingLeaders(os.Stdout, title,
		leaderboard.BestVsSpin(tbl, cfg.MinStyleBalls, cfg.TopN))
	return nil
}

func runVsHandBoard(cmd *cobra.Command, args []string) error {
	hand, err := handArg(args[0])
	if err != nil {
		return err
	}
	tbl, closeDB, err := loadTable()
	if err != nil {
		return err
	}
	defer closeDB()
	title := fmt.Sprintf("Best bowlers vs %s batsmen (min %d balls)",
		strings.ToLower(hand.Name()), cfg.MinStyleBalls)
	report.PrintBowlingLeaders(os.Stdout, title,
		leaderboard.BestBowlersVsHand(tbl, hand, cfg.MinStyleBalls, cfg.TopN))
	return nil
}

func runGroundsBoard(cmd *cobra.Command, args []string) error {
	tbl, closeDB, err := loadTable()
	if err != nil {
		return err
	}
	defer closeDB()
	report.PrintGroundLeaders(os.Stdout,
		leaderboard.GroundLeaders(tbl, cfg.MinGroundBalls, cfg.TopN))
	return nil
}

func runPhaseBoard(cmd *cobra.Command, args []string) error {
	var phase model.Phase
	switch strings.ToLower(args[0]) {
	case "powerplay", "pp":
		phase = model.PhasePowerplay
	case "middle":
		phase = model.PhaseMiddle
	case "death":
		phase = model.PhaseDeath
	default:
		return fmt.Errorf("unknown phase %q (want powerplay, middle or death)", args[0])
	}

	tbl, closeDB, err := loadTable()
	if err != nil {
		return err
	}
	defer closeDB()
	report.PrintPhaseLeaders(os.Stdout,
		leaderboard.PhaseLeaders(tbl, phase, cfg.MinPhaseBalls, cfg.MinPhaseOvers, cfg.TopN))
	return nil
}
