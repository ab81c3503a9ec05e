package pipeline

import (
	"fmt"

	"github.com/printworks/duplexer/internal/pdf"
)

// DefaultBatchSize is the number of pages per output batch.
const DefaultBatchSize = 20

// Merge concatenates the cleaned documents' pages, in input order, into
// the master sequence.
func Merge(docs []*pdf.Document) []*pdf.Page {
	total := 0
	for _, d := range docs {
		total += d.PageCount()
	}

	master := make([]*pdf.Page, 0, total)
	for _, d := range docs {
		master = append(master, d.Pages...)
	}
	return master
}

// SplitBatches slices the master sequence into chunks of batchSize
// pages. All batches are full except possibly the last. The chunks alias
// the input slice; no pages are copied.
func SplitBatches(pages []*pdf.Page, batchSize int) ([][]*pdf.Page, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", batchSize)
	}

	var batches [][]*pdf.Page
	for start := 0; start < len(pages); start += batchSize {
		end := start + batchSize
		if end > len(pages) {
			end = len(pages)
		}
		batches = append(batches, pages[start:end])
	}
	return batches, nil
}
