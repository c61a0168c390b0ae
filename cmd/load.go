package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/petalworks/florist-cli/internal/pipeline"
	"github.com/petalworks/florist-cli/internal/store"
)

var (
	loadInputPath string
	loadStorePath string
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load tagged records into the local store",
	Long:  "Reads a tagged CSV into the local SQLite store, storing the map pin as a WKT point when the record URL carries one, and reports per-district counts from the store.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("load"); err != nil {
			return err
		}

		input := loadInputPath
		if input == "" {
			input = cfg.Paths.TaggedCSV
		}
		dbPath := loadStorePath
		if dbPath == "" {
			dbPath = cfg.Store.Path
		}

		in, err := os.Open(input)
		if err != nil {
			return eris.Wrapf(err, "missing tagged CSV %s", input)
		}
		defer in.Close() //nolint:errcheck

		tagged, err := pipeline.ReadTagged(in)
		if err != nil {
			return err
		}

		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return eris.Wrapf(err, "create store dir %s", dir)
			}
		}
		st, err := store.NewSQLite(dbPath)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		if err := st.Migrate(ctx); err != nil {
			return err
		}

		inserted, err := st.InsertAll(ctx, tagged)
		if err != nil {
			return err
		}

		counts, err := st.CountsByDistrict(ctx)
		if err != nil {
			return err
		}
		for district, count := range counts {
			fmt.Printf("%s: %d\n", district, count)
		}

		zap.L().Info("load complete",
			zap.Int("inserted", inserted),
			zap.String("store", dbPath),
		)
		return nil
	},
}

func init() {
	loadCmd.Flags().StringVar(&loadInputPath, "input", "", "tagged CSV path (default from config)")
	loadCmd.Flags().StringVar(&loadStorePath, "store", "", "sqlite database path (default from config)")
	rootCmd.AddCommand(loadCmd)
}
