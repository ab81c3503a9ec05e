package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/printworks/duplexer/internal/pdf"
)

// Options configures a pipeline run.
type Options struct {
	// InputDir is scanned for source PDFs.
	InputDir string
	// OutputDir receives Batch_<n>.pdf files. Created if missing.
	OutputDir string
	// BatchSize is the number of pages per batch. Must be positive.
	BatchSize int
	// Exclude lists file names to skip during discovery, in addition to
	// previously generated batch output.
	Exclude []string
	// Logger receives progress updates. Defaults to slog.Default().
	Logger *slog.Logger
}

// Result summarizes a completed run.
type Result struct {
	Inputs      int      // eligible input files discovered
	Skipped     int      // inputs excluded (too short or unreadable)
	MasterPages int      // pages in the merged master sequence
	Batches     []string // paths of written batch files, in order
}

// Run executes the full pipeline: discover inputs, clean each file,
// merge into the master sequence, split into batches, reorder each batch
// for duplex printing, and write one output file per batch. Per-file
// problems are logged and skipped; configuration and write errors abort
// the run.
func Run(ctx context.Context, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	if opts.BatchSize <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", opts.BatchSize)
	}

	paths, err := Discover(opts.InputDir, DefaultFilter(opts.Exclude))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		log.Info("no input PDFs found", "dir", opts.InputDir)
		return &Result{}, nil
	}
	log.Info("discovered inputs", "dir", opts.InputDir, "files", len(paths))

	res := &Result{Inputs: len(paths)}

	var cleaned []*pdf.Document
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := Clean(path)
		if err != nil {
			res.Skipped++
			if errors.Is(err, pdf.ErrTooShort) {
				log.Warn("skipping short input", "file", filepath.Base(path), "reason", err)
			} else {
				log.Warn("skipping unreadable input", "file", filepath.Base(path), "reason", err)
			}
			continue
		}

		cleaned = append(cleaned, doc)
		log.Info("cleaned input", "file", doc.Source, "pages", doc.PageCount())
	}

	master := Merge(cleaned)
	if len(master) == 0 {
		return nil, errors.New("no pages produced, all inputs were skipped")
	}
	res.MasterPages = len(master)
	log.Info("assembled master sequence", "pages", len(master), "files", len(cleaned))

	batches, err := SplitBatches(master, opts.BatchSize)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	for i, batch := range batches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		padded, err := PadBatch(batch)
		if err != nil {
			return nil, err
		}
		reordered, err := ReorderDuplex(padded)
		if err != nil {
			return nil, err
		}

		name := fmt.Sprintf("Batch_%d.pdf", i+1)
		outPath := filepath.Join(opts.OutputDir, name)
		if err := pdf.WriteFile(outPath, reordered); err != nil {
			return nil, fmt.Errorf("failed to write batch %d: %w", i+1, err)
		}

		res.Batches = append(res.Batches, outPath)
		log.Info("wrote batch", "file", name, "pages", len(reordered))
	}

	log.Info("pipeline complete", "batches", len(res.Batches), "skipped", res.Skipped)
	return res, nil
}
