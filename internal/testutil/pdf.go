// Package testutil provides helpers for tests that need real PDF files.
package testutil

import (
	"testing"

	"github.com/printworks/duplexer/internal/pdf"
)

// BlankPages returns n blank US Letter pages.
func BlankPages(t *testing.T, n int) []*pdf.Page {
	t.Helper()

	pages := make([]*pdf.Page, n)
	for i := range pages {
		p, err := pdf.NewBlankPage(612, 792)
		if err != nil {
			t.Fatalf("failed to create blank page: %v", err)
		}
		pages[i] = p
	}
	return pages
}

// WritePDF writes a PDF with n blank pages to path.
func WritePDF(t *testing.T, path string, n int) {
	t.Helper()

	if err := pdf.WriteFile(path, BlankPages(t, n)); err != nil {
		t.Fatalf("failed to write test PDF %s: %v", path, err)
	}
}
