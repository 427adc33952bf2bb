package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/viant/vecmath/internal/check"
	"github.com/viant/vecmath/vector"
)

var errChecksFailed = errors.New("checks failed")

func newRootCmd(out io.Writer) *cobra.Command {
	var logLevel string
	rootCmd := &cobra.Command{
		Use:           "vecmath",
		Short:         "Cosine similarity over dense vectors",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
			}
			zerolog.SetGlobalLevel(level)
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newCheckCmd(), newCosineCmd())
	return rootCmd
}

func newCheckCmd() *cobra.Command {
	var (
		casesPath string
		useSQL    bool
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the cosine similarity self-check",
		RunE: func(cmd *cobra.Command, args []string) error {
			cases := check.DefaultCases()
			if casesPath != "" {
				f, err := os.Open(casesPath)
				if err != nil {
					return err
				}
				defer f.Close()
				if cases, err = check.LoadCases(f); err != nil {
					return err
				}
			}
			log.Debug().Int("cases", len(cases)).Bool("sql", useSQL).Msg("running checks")

			runner := &check.Runner{SQL: useSQL}
			report, err := runner.Run(cmd.Context(), cases)
			if err != nil {
				return err
			}
			report.Results = append(report.Results, check.Operations()...)

			out := cmd.OutOrStdout()
			for _, res := range report.Results {
				if res.Passed {
					fmt.Fprintf(out, "✓ %s\n", res.Name)
					continue
				}
				fmt.Fprintf(out, "✗ %s: %s\n", res.Name, res.Detail)
			}
			if failed := report.Failed(); failed > 0 {
				fmt.Fprintf(out, "%d of %d checks failed\n", failed, len(report.Results))
				return errChecksFailed
			}
			fmt.Fprintf(out, "All %d checks passed\n", len(report.Results))
			return nil
		},
	}
	cmd.Flags().StringVar(&casesPath, "cases", "", "YAML file with cases (defaults to the built-in scenarios)")
	cmd.Flags().BoolVar(&useSQL, "sql", false, "also evaluate every case through vec_cosine on in-memory SQLite")
	return cmd
}

func newCosineCmd() *cobra.Command {
	var a, b []float32
	cmd := &cobra.Command{
		Use:     "cosine",
		Short:   "Print the cosine similarity of two vectors",
		Example: "  vecmath cosine --a 1,2,3 --b 1.1,2.1,2.9",
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := vector.CosineSimilarity(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", sim)
			return nil
		},
	}
	cmd.Flags().Float32SliceVar(&a, "a", nil, "first vector, comma separated")
	cmd.Flags().Float32SliceVar(&b, "b", nil, "second vector, comma separated")
	return cmd
}
