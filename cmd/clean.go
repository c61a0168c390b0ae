package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/petalworks/florist-cli/internal/cleaner"
)

var (
	cleanInputPath  string
	cleanOutputPath string
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean the raw directory export",
	Long:  "Renames the raw export's opaque column headers to semantic names and normalizes rating and review-count fields to numeric-friendly strings.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("clean"); err != nil {
			return err
		}

		input := cleanInputPath
		if input == "" {
			input = cfg.Paths.RawCSV
		}
		output := cleanOutputPath
		if output == "" {
			output = cfg.Paths.CleanedCSV
		}

		in, err := os.Open(input)
		if err != nil {
			return eris.Wrapf(err, "missing raw export %s", input)
		}
		defer in.Close() //nolint:errcheck

		records, err := cleaner.Clean(ctx, in)
		if err != nil {
			return err
		}

		if err := writeFile(output, func(f *os.File) error {
			return cleaner.WriteRecords(f, records)
		}); err != nil {
			return err
		}

		zap.L().Info("clean complete",
			zap.Int("records", len(records)),
			zap.String("cleaned_csv", output),
		)
		return nil
	},
}

func init() {
	cleanCmd.Flags().StringVar(&cleanInputPath, "input", "", "raw export CSV path (default from config)")
	cleanCmd.Flags().StringVar(&cleanOutputPath, "output", "", "cleaned CSV path (default from config)")
	rootCmd.AddCommand(cleanCmd)
}
