package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crickstats/crickstats/internal/matchup"
	"github.com/crickstats/crickstats/internal/model"
	"github.com/crickstats/crickstats/internal/normalize"
	"github.com/crickstats/crickstats/internal/report"
)

var matchupCmd = &cobra.Command{
	Use:   "matchup",
	Short: "Head-to-head and situational statistics",
}

var batsmanStyleCmd = &cobra.Command{
	Use:   "batsman-style <batsman> <style>",
	Short: "A batsman's record against a bowling style (e.g. 'leg break', 'left pace')",
	Args:  cobra.ExactArgs(2),
	RunE:  runBatsmanStyle,
}

var head2headCmd = &cobra.Command{
	Use:   "head2head <batsman> <bowler>",
	Short: "Every ball one bowler has bowled to one batsman",
	Args:  cobra.ExactArgs(2),
	RunE:  runHead2Head,
}

var bowlerHandCmd = &cobra.Command{
	Use:   "bowler-hand <bowler> <left|right>",
	Short: "A bowler's record against a batting hand",
	Args:  cobra.ExactArgs(2),
	RunE:  runBowlerHand,
}

var phaseCmd = &cobra.Command{
	Use:   "phase <bowler>",
	Short: "A bowler's economy split into powerplay and post-powerplay",
	Args:  cobra.ExactArgs(1),
	RunE:  runPhase,
}

var teamCmd = &cobra.Command{
	Use:   "team <team1> <team2>",
	Short: "Both batting directions between two teams",
	Args:  cobra.ExactArgs(2),
	RunE:  runTeam,
}

var scoutCmd = &cobra.Command{
	Use:   "scout <batsman> <style>",
	Short: "Phase-split scouting brief for a batsman against a bowling style",
	Args:  cobra.ExactArgs(2),
	RunE:  runScout,
}

func init() {
	matchupCmd.PersistentFlags().StringVar(&flagDataset, "dataset", "", "dataset hash prefix (default: most recent)")
	matchupCmd.PersistentFlags().IntSliceVar(&flagSeasons, "season", nil, "restrict to seasons (repeatable)")
	matchupCmd.PersistentFlags().StringVar(&flagGround, "ground", "", "restrict to grounds containing this substring")
	matchupCmd.PersistentFlags().StringVar(&flagTeam, "team", "", "restrict to matches involving this team")
	matchupCmd.PersistentFlags().StringVar(&flagVenue, "venue", "", "restrict to home or away fixtures")
	matchupCmd.PersistentFlags().IntVar(&flagInnings, "innings", 0, "restrict to innings 1 or 2")

	matchupCmd.AddCommand(batsmanStyleCmd)
	matchupCmd.AddCommand(head2headCmd)
	matchupCmd.AddCommand(bowlerHandCmd)
	matchupCmd.AddCommand(phaseCmd)
	matchupCmd.AddCommand(teamCmd)
	matchupCmd.AddCommand(scoutCmd)
}

// reportQueryErr prints the soft query outcomes (nothing matched, sample too
// small) as plain messages instead of command failures.
func reportQueryErr(err error) error {
	var ise *model.InsufficientSampleError
	switch {
	case errors.Is(err, model.ErrNoData):
		fmt.Fprintln(os.Stdout, "No deliveries match this query.")
		return nil
	case errors.As(err, &ise):
		fmt.Fprintf(os.Stdout, "Insufficient data: %d balls (minimum %d required).\n",
			ise.Balls, ise.MinBalls)
		return nil
	default:
		return err
	}
}

func styleArg(s string) (model.BowlingStyle, error) {
	style := normalize.Style(s)
	if style == model.StyleOther && !strings.EqualFold(s, "other") {
		return style, fmt.Errorf("unknown bowling style %q", s)
	}
	return style, nil
}

func handArg(s string) (model.Hand, error) {
	switch strings.ToLower(s) {
	case "l", "left":
		return model.HandLeft, nil
	case "r", "right":
		return model.HandRight, nil
	default:
		return "", fmt.Errorf("unknown batting hand %q (want left or right)", s)
	}
}

func runBatsmanStyle(cmd *cobra.Command, args []string) error {
	style, err := styleArg(args[1])
	if err != nil {
		return err
	}
	tbl, closeDB, err := loadTable()
	if err != nil {
		return err
	}
	defer closeDB()

	stats, err := matchup.BatsmanVsStyle(tbl, args[0], style, cfg.MinMatchupBalls)
	if err != nil {
		return reportQueryErr(err)
	}
	report.PrintBatsmanVsStyle(os.Stdout, stats)
	return nil
}

func runHead2Head(cmd *cobra.Command, args []string) error {
	tbl, closeDB, err := loadTable()
	if err != nil {
		return err
	}
	defer closeDB()

	stats, err := matchup.HeadToHead(tbl, args[0], args[1], cfg.MinMatchupBalls)
	if err != nil {
		return reportQueryErr(err)
	}
	report.PrintHeadToHead(os.Stdout, stats)
	return nil
}

func runBowlerHand(cmd *cobra.Command, args []string) error {
	hand, err := handArg(args[1])
	if err != nil {
		return err
	}
	tbl, closeDB, err := loadTable()
	if err != nil {
		return err
	}
	defer closeDB()

	stats, err := matchup.BowlerVsHand(tbl, args[0], hand, cfg.MinMatchupBalls)
	if err != nil {
		return reportQueryErr(err)
	}
	report.PrintBowlerVsHand(os.Stdout, stats)
	return nil
}

func runPhase(cmd *cobra.Command, args []string) error {
	tbl, closeDB, err := loadTable()
	if err != nil {
		return err
	}
	defer closeDB()

	stats, err := matchup.BowlerEconomyByPhase(tbl, args[0], cfg.MinPhaseOvers)
	if err != nil {
		return reportQueryErr(err)
	}
	report.PrintPhaseEconomy(os.Stdout, stats)
	return nil
}

func runTeam(cmd *cobra.Command, args []string) error {
	tbl, closeDB, err := loadTable()
	if err != nil {
		return err
	}
	defer closeDB()

	stats, err := matchup.TeamMatchup(tbl, args[0], args[1])
	if err != nil {
		return reportQueryErr(err)
	}
	report.PrintTeamMatchup(os.Stdout, stats)
	return nil
}

func runScout(cmd *cobra.Command, args []string) error {
	style, err := styleArg(args[1])
	if err != nil {
		return err
	}
	tbl, closeDB, err := loadTable()
	if err != nil {
		return err
	}
	defer closeDB()

	rep, err := matchup.Scouting(tbl, args[0], style, cfg.MinStyleBalls)
	if err != nil {
		return reportQueryErr(err)
	}
	report.PrintScoutingReport(os.Stdout, rep)
	return nil
}
