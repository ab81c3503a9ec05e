package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultFilter(t *testing.T) {
	keep := DefaultFilter([]string{"master_sequence.pdf", "merged.pdf"})

	cases := []struct {
		name string
		want bool
	}{
		{"report.pdf", true},
		{"Score.PDF", true},
		{"notes.txt", false},
		{"archive.zip", false},
		{"Batch_1.pdf", false},
		{"batch_12.pdf", false},
		{"BATCH_3.PDF", false},
		{"Batch_x.pdf", true},
		{"master_sequence.pdf", false},
		{"Master_Sequence.PDF", false},
		{"merged.pdf", false},
		{"merged_copy.pdf", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := keep(tc.name); got != tc.want {
				t.Errorf("keep(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"b.pdf", "a.pdf", "Batch_1.pdf", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.pdf"), 0o755); err != nil {
		t.Fatal(err)
	}

	paths, err := Discover(dir, DefaultFilter(nil))
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.pdf"),
		filepath.Join(dir, "b.pdf"),
	}
	if len(paths) != len(want) {
		t.Fatalf("expected %d paths, got %d: %v", len(want), len(paths), paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("path %d: expected %s, got %s", i, want[i], paths[i])
		}
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "absent"), DefaultFilter(nil)); err == nil {
		t.Error("expected error for missing directory")
	}
}
