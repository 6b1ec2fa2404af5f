package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/areabuilder/generator"
)

var levelDescriptions = []string{
	"build by area; find the area of rectangles and an L-shape",
	"build by area and perimeter, including two-rectangle composites",
	"find the area of U, O, diagonal-corner and triangle shapes",
	"find the area without a grid, counting with a limited supply of squares",
	"build with a colour ratio",
	"build with a colour ratio and a perimeter",
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "levels",
		Short: "List supported levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, level := range generator.Levels() {
				n, err := generator.ChallengeCount(level)
				if err != nil {
					return err
				}
				desc := ""
				if level < len(levelDescriptions) {
					desc = levelDescriptions[level]
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d challenges\t%s\n", level, n, desc)
			}
			return nil
		},
	})
}
