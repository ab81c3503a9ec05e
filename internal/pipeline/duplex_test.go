package pipeline

import (
	"testing"
)

func TestPadBatch(t *testing.T) {
	t.Run("odd batch gets one blank", func(t *testing.T) {
		batch := taggedPages(0, 3)
		batch[2].Width, batch[2].Height = 595, 842

		padded, err := PadBatch(batch)
		if err != nil {
			t.Fatalf("PadBatch failed: %v", err)
		}
		if len(padded) != 4 {
			t.Fatalf("expected 4 pages, got %d", len(padded))
		}
		// Blank matches the last page's dimensions.
		blank := padded[3]
		if blank.Width != 595 || blank.Height != 842 {
			t.Errorf("blank page dims %gx%g, expected 595x842", blank.Width, blank.Height)
		}
	})

	t.Run("even batch unchanged", func(t *testing.T) {
		batch := taggedPages(0, 4)

		padded, err := PadBatch(batch)
		if err != nil {
			t.Fatalf("PadBatch failed: %v", err)
		}
		if len(padded) != 4 {
			t.Errorf("expected 4 pages, got %d", len(padded))
		}
	})
}

func TestReorderDuplex(t *testing.T) {
	// Positions 1..6: fronts are 1,3,5 emitted reversed; backs are
	// 2,4,6 rotated for the second pass.
	batch := taggedPages(0, 6)

	out, err := ReorderDuplex(batch)
	if err != nil {
		t.Fatalf("ReorderDuplex failed: %v", err)
	}

	if got, want := tags(out), []int{5, 3, 1, 2, 4, 6}; !equalTags(got, want) {
		t.Fatalf("expected order %v, got %v", want, got)
	}

	for i, p := range out {
		want := 0
		if i >= 3 {
			want = 180
		}
		if p.Rotation != want {
			t.Errorf("output page %d: expected rotation %d, got %d", i+1, want, p.Rotation)
		}
	}

	// Input pages keep their rotation tags.
	for i, p := range batch {
		if p.Rotation != 0 {
			t.Errorf("input page %d modified, rotation %d", i+1, p.Rotation)
		}
	}
}

func TestReorderDuplex_TwoPages(t *testing.T) {
	out, err := ReorderDuplex(taggedPages(0, 2))
	if err != nil {
		t.Fatalf("ReorderDuplex failed: %v", err)
	}
	if got, want := tags(out), []int{1, 2}; !equalTags(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if out[1].Rotation != 180 {
		t.Errorf("back page: expected rotation 180, got %d", out[1].Rotation)
	}
}

func TestReorderDuplex_OddLength(t *testing.T) {
	if _, err := ReorderDuplex(taggedPages(0, 5)); err == nil {
		t.Error("expected error for odd batch length")
	}
}

func TestReorderDuplex_RotationWraps(t *testing.T) {
	batch := taggedPages(0, 2)
	batch[1].Rotation = 180

	out, err := ReorderDuplex(batch)
	if err != nil {
		t.Fatalf("ReorderDuplex failed: %v", err)
	}
	if out[1].Rotation != 0 {
		t.Errorf("expected rotation to wrap to 0, got %d", out[1].Rotation)
	}
}
