package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/petalworks/florist-cli/internal/pipeline"
	"github.com/petalworks/florist-cli/internal/rules"
)

var (
	tagInputPath  string
	tagOutputPath string
	tagCountsPath string
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Tag directory records with district labels",
	Long:  "Reads the cleaned directory CSV, classifies every record into a district via the rule cascade, writes the tagged CSV and district-counts JSON, and prints a count summary.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("tag"); err != nil {
			return err
		}

		input := tagInputPath
		if input == "" {
			input = cfg.Paths.CleanedCSV
		}
		output := tagOutputPath
		if output == "" {
			output = cfg.Paths.TaggedCSV
		}
		countsPath := tagCountsPath
		if countsPath == "" {
			countsPath = cfg.Paths.CountsJSON
		}

		// Missing input is fatal before any output is written.
		in, err := os.Open(input)
		if err != nil {
			return eris.Wrapf(err, "missing source CSV %s", input)
		}
		defer in.Close() //nolint:errcheck

		records, err := pipeline.ReadRecords(in)
		if err != nil {
			return err
		}

		ruleSet, err := rules.LoadRuleSet(cfg.Rules.File)
		if err != nil {
			return err
		}

		tagger := pipeline.NewTagger(rules.NewClassifier(ruleSet), cfg.Pipeline.Workers)
		tagged, err := tagger.Tag(ctx, records)
		if err != nil {
			return eris.Wrap(err, "tag records")
		}

		if err := writeFile(output, func(f *os.File) error {
			return pipeline.WriteTagged(f, tagged)
		}); err != nil {
			return err
		}

		counts := pipeline.Aggregate(tagged)
		if err := writeFile(countsPath, func(f *os.File) error {
			return pipeline.WriteCounts(f, counts)
		}); err != nil {
			return err
		}

		fmt.Println("District counts:")
		for _, dc := range pipeline.Summarize(tagged) {
			fmt.Printf("%s: %d\n", dc.District, dc.Count)
		}

		zap.L().Info("tagging complete",
			zap.Int("records", len(tagged)),
			zap.Int("districts", len(counts)),
			zap.String("tagged_csv", output),
			zap.String("counts_json", countsPath),
		)
		return nil
	},
}

// writeFile creates parent directories, writes via fn, and closes the file.
func writeFile(path string, fn func(*os.File) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return eris.Wrapf(err, "create output dir %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "create %s", path)
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	return eris.Wrapf(f.Close(), "close %s", path)
}

func init() {
	tagCmd.Flags().StringVar(&tagInputPath, "input", "", "cleaned CSV path (default from config)")
	tagCmd.Flags().StringVar(&tagOutputPath, "output", "", "tagged CSV path (default from config)")
	tagCmd.Flags().StringVar(&tagCountsPath, "counts", "", "district counts JSON path (default from config)")
	rootCmd.AddCommand(tagCmd)
}
