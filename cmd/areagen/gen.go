package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/areabuilder/challenge"
	"github.com/katalvlaran/areabuilder/generator"
)

var (
	levelSpec   string
	seed        int64
	boardWidth  int
	boardHeight int
	unitLength  float64
	outputFile  string
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate challenge sets",
		Long: `Generate the challenge set for one or more levels. Levels share one
generator, so colours and repetition avoidance carry across them.

Examples:
  areagen gen --level 0
  areagen gen --level 0:5 --seed 7 -o session.json
  areagen gen --level 3 --board-width 16 --board-height 10`,
		RunE: runGen,
	}

	genCmd.Flags().StringVarP(&levelSpec, "level", "l", "0", "Level 0-5 or range like 0:5")
	genCmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 seeds from the clock)")
	genCmd.Flags().IntVar(&boardWidth, "board-width", generator.DefaultBoardWidth, "Board width in unit cells")
	genCmd.Flags().IntVar(&boardHeight, "board-height", generator.DefaultBoardHeight, "Board height in unit cells")
	genCmd.Flags().Float64Var(&unitLength, "unit-length", generator.DefaultUnitLength, "Unit cell side length")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default stdout)")

	rootCmd.AddCommand(genCmd)
}

// levelSet is one level's output document.
type levelSet struct {
	Level      int                   `json:"level"`
	Challenges []challenge.Challenge `json:"challenges"`
}

// session is the JSON document written by gen.
type session struct {
	Board  generator.Board `json:"board"`
	Seed   int64           `json:"seed,omitempty"`
	Levels []levelSet      `json:"levels"`
}

// parseLevelRange parses "3" or "1:4" into an inclusive range.
func parseLevelRange(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		v, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid level: %w", err)
		}
		return v, v, nil
	case 2:
		lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid level min: %w", err)
		}
		hi, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid level max: %w", err)
		}
		if lo > hi {
			return 0, 0, fmt.Errorf("level min (%d) cannot be greater than max (%d)", lo, hi)
		}
		return lo, hi, nil
	}
	return 0, 0, fmt.Errorf("invalid level format: %s (use format like '2' or '0:5')", s)
}

func buildOptions(board generator.Board, seed int64) ([]generator.Option, error) {
	if board.Width < generator.MinBoardWidth || board.Height < generator.MinBoardHeight {
		return nil, fmt.Errorf("board must be at least %dx%d cells, got %dx%d",
			generator.MinBoardWidth, generator.MinBoardHeight, board.Width, board.Height)
	}
	if !(board.UnitLength > 0) {
		return nil, fmt.Errorf("unit length must be positive, got %g", board.UnitLength)
	}

	opts := []generator.Option{
		generator.WithBoard(board),
		generator.WithLogger(logrus.StandardLogger()),
	}
	if seed != 0 {
		opts = append(opts, generator.WithSeed(seed))
	}
	return opts, nil
}

// generateSession runs levels lo..hi on one generator.
func generateSession(opts []generator.Option, lo, hi int) ([]levelSet, error) {
	g, err := generator.New(opts...)
	if err != nil {
		return nil, err
	}

	var out []levelSet
	for level := lo; level <= hi; level++ {
		n, err := generator.ChallengeCount(level)
		if err != nil {
			return nil, err
		}
		set, err := g.GenerateChallengeSet(level, n)
		if err != nil {
			return nil, err
		}
		out = append(out, levelSet{Level: level, Challenges: set})
	}
	return out, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeFile writes doc to path and reports close errors.
func writeFile(path string, doc session) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeJSON(file, doc); err != nil {
		file.Close()
		return fmt.Errorf("failed to write challenges: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

func runGen(cmd *cobra.Command, args []string) error {
	lo, hi, err := parseLevelRange(levelSpec)
	if err != nil {
		return err
	}

	board := generator.Board{Width: boardWidth, Height: boardHeight, UnitLength: unitLength}
	opts, err := buildOptions(board, seed)
	if err != nil {
		return err
	}

	levels, err := generateSession(opts, lo, hi)
	if err != nil {
		return err
	}

	doc := session{Board: board, Seed: seed, Levels: levels}
	if outputFile == "" {
		if err := writeJSON(cmd.OutOrStdout(), doc); err != nil {
			return fmt.Errorf("failed to write challenges: %w", err)
		}
	} else if err := writeFile(outputFile, doc); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"levels": hi - lo + 1,
		"output": outputFile,
	}).Info("challenge sets written")
	return nil
}
