package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/printworks/duplexer/internal/pdf"
)

// Clean runs the per-file transform: parse, remove first and last page,
// prepend a title page labeled with the file name, and pad to an even
// page count. Every error returned here is a skip condition for the
// caller; the pipeline continues with the remaining inputs.
func Clean(path string) (*pdf.Document, error) {
	doc, err := pdf.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	trimmed, err := doc.TrimEnds()
	if err != nil {
		return nil, err
	}

	first := trimmed.Pages[0]
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	titlePage, err := pdf.NewTitlePage(title, first.Width, first.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to build title page for %s: %w", doc.Source, err)
	}

	pages := make([]*pdf.Page, 0, trimmed.PageCount()+1)
	pages = append(pages, titlePage)
	pages = append(pages, trimmed.Pages...)
	titled := &pdf.Document{Source: trimmed.Source, Pages: pages}

	return titled.PadEven()
}
