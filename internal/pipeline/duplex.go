package pipeline

import (
	"fmt"

	"github.com/printworks/duplexer/internal/pdf"
)

// PadBatch appends one blank page when the batch length is odd, so
// every physical sheet has both a front and a back. The blank matches
// the last page's dimensions. Even-length batches are returned
// unchanged.
func PadBatch(batch []*pdf.Page) ([]*pdf.Page, error) {
	if len(batch)%2 == 0 {
		return batch, nil
	}

	last := batch[len(batch)-1]
	blank, err := pdf.NewBlankPage(last.Width, last.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to pad batch: %w", err)
	}

	padded := make([]*pdf.Page, 0, len(batch)+1)
	padded = append(padded, batch...)
	padded = append(padded, blank)
	return padded, nil
}

// ReorderDuplex rearranges a batch for two-pass printing on a
// single-sided printer. Fronts are the pages at odd 1-based positions,
// emitted in reverse so the printed stack ends up in forward order;
// backs are the even positions, each rotated 180° so they read correctly
// after the stack is flipped along its top edge. Output is fronts
// followed by backs; length and page identities are preserved.
func ReorderDuplex(batch []*pdf.Page) ([]*pdf.Page, error) {
	if len(batch)%2 != 0 {
		return nil, fmt.Errorf("batch length %d is odd, pad before reordering", len(batch))
	}

	half := len(batch) / 2
	fronts := make([]*pdf.Page, 0, half)
	backs := make([]*pdf.Page, 0, half)

	for i, p := range batch {
		if i%2 == 0 {
			fronts = append(fronts, p)
		} else {
			rotated := *p
			rotated.Rotation = (p.Rotation + 180) % 360
			backs = append(backs, &rotated)
		}
	}

	out := make([]*pdf.Page, 0, len(batch))
	for i := len(fronts) - 1; i >= 0; i-- {
		out = append(out, fronts[i])
	}
	out = append(out, backs...)
	return out, nil
}
