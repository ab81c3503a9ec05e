package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/printworks/duplexer/internal/config"
	"github.com/printworks/duplexer/internal/home"
	"github.com/printworks/duplexer/internal/pipeline"
)

var (
	batchInputDir  string
	batchOutputDir string
	batchSize      int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Build print-ready batches from a directory of PDFs",
	Long: `Batch cleans every PDF in the input directory (strip first/last page,
insert a title page, pad to an even page count), merges the results into
one sequence, splits it into fixed-size batches, and writes each batch
reordered for two-pass manual duplex printing.

Files with fewer than 3 pages and unreadable files are skipped.
Previously generated Batch_<n>.pdf files are never picked up as input.

Examples:
  duplexer batch                               # current dir in and out
  duplexer batch -i ~/scans -o ~/print         # explicit directories
  duplexer batch --batch-size 40               # larger batches`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := cm.Get()

		size := batchSize
		if size == 0 {
			size = cfg.BatchSize
		}

		outputDir := batchOutputDir
		if outputDir == "" {
			h, err := home.New(homeDir)
			if err != nil {
				return err
			}
			if err := h.EnsureExists(); err != nil {
				return err
			}
			outputDir = h.OutputPath()
		}

		res, err := pipeline.Run(cmd.Context(), pipeline.Options{
			InputDir:  batchInputDir,
			OutputDir: outputDir,
			BatchSize: size,
			Exclude:   cfg.ExcludeNames,
			Logger:    logger,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Processed %d file(s), skipped %d, wrote %d batch file(s) to %s\n",
			res.Inputs-res.Skipped, res.Skipped, len(res.Batches), outputDir)
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchInputDir, "input-dir", "i", ".", "directory containing source PDFs")
	batchCmd.Flags().StringVarP(&batchOutputDir, "output-dir", "o", "", "directory for Batch_<n>.pdf files (default: ~/.duplexer/output)")
	batchCmd.Flags().IntVar(&batchSize, "batch-size", 0, "pages per batch (default: from config, 20)")

	rootCmd.AddCommand(batchCmd)
}
