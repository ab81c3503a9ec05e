package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/printworks/duplexer/internal/pdf"
	"github.com/printworks/duplexer/internal/testutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	testutil.WritePDF(t, filepath.Join(dir, "alpha.pdf"), 5)
	testutil.WritePDF(t, filepath.Join(dir, "bravo.pdf"), 4)
	testutil.WritePDF(t, filepath.Join(dir, "charlie.pdf"), 2)

	res, err := Run(context.Background(), Options{
		InputDir:  dir,
		OutputDir: dir,
		BatchSize: 20,
		Logger:    discardLogger(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.Inputs != 3 {
		t.Errorf("expected 3 inputs, got %d", res.Inputs)
	}
	if res.Skipped != 1 {
		t.Errorf("expected 1 skipped, got %d", res.Skipped)
	}
	// alpha: 5 -> trim 3 -> +title 4. bravo: 4 -> trim 2 -> +title 3 -> pad 4.
	if res.MasterPages != 8 {
		t.Errorf("expected 8 master pages, got %d", res.MasterPages)
	}
	if len(res.Batches) != 1 {
		t.Fatalf("expected 1 batch, got %d", len(res.Batches))
	}

	out := filepath.Join(dir, "Batch_1.pdf")
	if res.Batches[0] != out {
		t.Errorf("expected batch path %s, got %s", out, res.Batches[0])
	}
	doc, err := pdf.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read batch output: %v", err)
	}
	if doc.PageCount() != 8 {
		t.Errorf("expected 8 pages in batch, got %d", doc.PageCount())
	}
}

func TestRun_RerunIgnoresOwnOutput(t *testing.T) {
	dir := t.TempDir()
	testutil.WritePDF(t, filepath.Join(dir, "alpha.pdf"), 5)

	opts := Options{
		InputDir:  dir,
		OutputDir: dir,
		BatchSize: 20,
		Logger:    discardLogger(),
	}

	first, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if second.Inputs != first.Inputs {
		t.Errorf("rerun saw %d inputs, first run saw %d", second.Inputs, first.Inputs)
	}
	if second.MasterPages != first.MasterPages {
		t.Errorf("rerun produced %d master pages, first run %d", second.MasterPages, first.MasterPages)
	}
}

func TestRun_MultipleBatches(t *testing.T) {
	dir := t.TempDir()
	// 12 pages -> trim 10 -> +title 11 -> pad 12 master pages.
	testutil.WritePDF(t, filepath.Join(dir, "long.pdf"), 12)

	outDir := filepath.Join(dir, "out")
	res, err := Run(context.Background(), Options{
		InputDir:  dir,
		OutputDir: outDir,
		BatchSize: 4,
		Logger:    discardLogger(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(res.Batches) != 3 {
		t.Fatalf("expected 3 batches, got %d", len(res.Batches))
	}
	for i, path := range res.Batches {
		want := filepath.Join(outDir, fmt.Sprintf("Batch_%d.pdf", i+1))
		if path != want {
			t.Errorf("batch %d: expected %s, got %s", i+1, want, path)
		}
		doc, err := pdf.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read %s: %v", path, err)
		}
		if doc.PageCount() != 4 {
			t.Errorf("batch %d: expected 4 pages, got %d", i+1, doc.PageCount())
		}
	}
}

func TestRun_PadsOddFinalBatch(t *testing.T) {
	dir := t.TempDir()
	// 5 pages -> trim 3 -> +title 4 master pages; batch size 3 gives a
	// full batch of 3 (padded to 4) and a final batch of 1 (padded to 2).
	testutil.WritePDF(t, filepath.Join(dir, "odd.pdf"), 5)

	outDir := filepath.Join(dir, "out")
	res, err := Run(context.Background(), Options{
		InputDir:  dir,
		OutputDir: outDir,
		BatchSize: 3,
		Logger:    discardLogger(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(res.Batches) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(res.Batches))
	}
	wantPages := []int{4, 2}
	for i, path := range res.Batches {
		doc, err := pdf.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read %s: %v", path, err)
		}
		if doc.PageCount() != wantPages[i] {
			t.Errorf("batch %d: expected %d pages, got %d", i+1, wantPages[i], doc.PageCount())
		}
	}
}

func TestRun_EmptyDir(t *testing.T) {
	dir := t.TempDir()

	res, err := Run(context.Background(), Options{
		InputDir:  dir,
		OutputDir: dir,
		BatchSize: 20,
		Logger:    discardLogger(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Inputs != 0 || len(res.Batches) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestRun_AllInputsSkipped(t *testing.T) {
	dir := t.TempDir()
	testutil.WritePDF(t, filepath.Join(dir, "stub.pdf"), 1)

	if _, err := Run(context.Background(), Options{
		InputDir:  dir,
		OutputDir: dir,
		BatchSize: 20,
		Logger:    discardLogger(),
	}); err == nil {
		t.Error("expected error when every input is skipped")
	}
}

func TestRun_InvalidBatchSize(t *testing.T) {
	if _, err := Run(context.Background(), Options{
		InputDir:  t.TempDir(),
		BatchSize: 0,
		Logger:    discardLogger(),
	}); err == nil {
		t.Error("expected error for zero batch size")
	}
}

func TestRun_Canceled(t *testing.T) {
	dir := t.TempDir()
	testutil.WritePDF(t, filepath.Join(dir, "alpha.pdf"), 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Run(ctx, Options{
		InputDir:  dir,
		OutputDir: dir,
		BatchSize: 20,
		Logger:    discardLogger(),
	}); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestRun_ExcludeList(t *testing.T) {
	dir := t.TempDir()
	testutil.WritePDF(t, filepath.Join(dir, "keep.pdf"), 5)
	testutil.WritePDF(t, filepath.Join(dir, "merged.pdf"), 5)

	res, err := Run(context.Background(), Options{
		InputDir:  dir,
		OutputDir: filepath.Join(dir, "out"),
		BatchSize: 20,
		Exclude:   []string{"merged.pdf"},
		Logger:    discardLogger(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Inputs != 1 {
		t.Errorf("expected 1 input, got %d", res.Inputs)
	}

	if _, err := os.Stat(filepath.Join(dir, "out", "Batch_1.pdf")); err != nil {
		t.Errorf("expected batch output: %v", err)
	}
}
