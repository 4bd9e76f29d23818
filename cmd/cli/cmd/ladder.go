// Package cmd - ladder command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"lpboost/core/ladder"
)

// ladderCmd prints the full rank ladder with linear positions
var ladderCmd = &cobra.Command{
	Use:   "ladder",
	Short: "Print the rank ladder",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%8s  %s\n", "Position", "Rank")
		for _, r := range ladder.Ranks {
			for _, d := range ladder.Divisions {
				pos, _ := ladder.Position(r, d)
				fmt.Printf("%8d  %s %s\n", pos, r, d)
			}
		}
	},
}
