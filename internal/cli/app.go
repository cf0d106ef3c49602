package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pipeworks-go/infiniloop/board"
	"github.com/pipeworks-go/infiniloop/parse"
	"github.com/pipeworks-go/infiniloop/render"
	"github.com/pipeworks-go/infiniloop/search"
	"github.com/pipeworks-go/infiniloop/solution"
)

// flags collects the process-level knobs exposed on the command line;
// the puzzle-solving packages never see this struct directly.
type flags struct {
	strict   bool
	verbose  bool
	maxBytes int
}

// NewRootCommand builds the cobra command shared by cmd/infiniloop and
// cmd/infiniloopc. When showCount is false the command prints the
// first solution found and stops (infiniloop); when true it exhausts
// the search and reports how many solutions exist alongside the first
// one (infiniloopc).
func NewRootCommand(showCount bool) *cobra.Command {
	f := &flags{}

	use := "infiniloop"
	short := "Solve an Infinite Loop puzzle read from stdin"
	if showCount {
		use = "infiniloopc"
		short = "Solve an Infinite Loop puzzle and report its solution count"
	}

	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), f, showCount)
		},
	}

	cmd.Flags().BoolVar(&f.strict, "strict", false, "reject unrecognized characters instead of skipping them")
	cmd.Flags().BoolVar(&f.verbose, "verbose", false, "enable debug logging")
	cmd.Flags().IntVar(&f.maxBytes, "max-bytes", 0, "cap rendered output size in bytes (0 uses the render package default)")

	return cmd
}

func run(in io.Reader, out io.Writer, f *flags, showCount bool) error {
	logger := newLogger(f.verbose)

	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("cli: read stdin: %w", err)
	}

	parseOpts := []parse.Option{}
	if f.strict {
		parseOpts = append(parseOpts, parse.WithStrict())
	}

	b, err := parse.Parse(string(raw), parseOpts...)
	if err != nil {
		logger.Error().Err(err).Msg("parse failed")

		return err
	}

	renderOpts := []render.Option{}
	if f.maxBytes > 0 {
		renderOpts = append(renderOpts, render.WithMaxBytes(f.maxBytes))
	}

	var (
		first *solution.Solution
		count int
	)
	consumer := search.ConsumerFunc(func(sol *solution.Solution) search.Signal {
		count++
		if first == nil {
			cp := *sol
			first = &cp
		}
		if showCount {
			return search.Continue
		}

		return search.Stop
	})

	if err := search.Solve(b, consumer); err != nil {
		logger.Error().Err(err).Msg("solve failed")

		return err
	}

	if first == nil {
		logger.Warn().Msg("no solution")

		return ErrNoSolution
	}

	text, err := render.Render(first, renderOpts...)
	if err != nil {
		logger.Error().Err(err).Msg("render failed")

		return err
	}

	fmt.Fprintln(out, text)
	if showCount {
		fmt.Fprintf(out, "solutions: %d\n", count)
	}

	logger.Debug().Int("axis", board.Axis).Int("solutions", count).Msg("solve complete")

	return nil
}

// Main runs cmd, writing any error to stderr and returning the process
// exit code the caller should pass to os.Exit.
func Main(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 1
	}

	return 0
}
