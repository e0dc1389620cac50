// Package main is the entry point for the crickstats CLI tool, which loads
// ball-by-ball cricket datasets and computes matchup and leaderboard metrics.
package main

import "github.com/crickstats/crickstats/cmd"

func main() {
	cmd.Execute()
}
