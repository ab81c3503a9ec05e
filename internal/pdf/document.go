// Package pdf provides the in-memory page model used by the duplex
// preparation pipeline. A Page is held as a standalone single-page PDF so
// pages can be reordered, duplicated, and merged freely without touching
// PDF internals outside of pdfcpu.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Page is an opaque, order-preserving unit of content. The underlying
// bytes are a complete one-page PDF and are never mutated; rotation is
// tagged here and applied when the page is written out.
type Page struct {
	data []byte

	// Width and Height are the media box dimensions in points.
	Width  float64
	Height float64

	// Rotation is applied on write. Multiples of 90 only.
	Rotation int
}

// Document is an ordered sequence of pages with a source file name.
type Document struct {
	Source string
	Pages  []*Page
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Read parses a PDF from rs and splits it into single-page segments.
// source is recorded on the document for logging and title generation.
func Read(rs io.ReadSeeker, source string) (*Document, error) {
	conf := model.NewDefaultConfiguration()

	ctx, err := pdfapi.ReadValidateAndOptimize(rs, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("failed to resolve page count for %s: %w", source, err)
	}
	if ctx.PageCount == 0 {
		return nil, fmt.Errorf("%s has no pages", source)
	}

	dims, err := ctx.PageDims()
	if err != nil {
		return nil, fmt.Errorf("failed to read page dimensions for %s: %w", source, err)
	}

	pages := make([]*Page, 0, ctx.PageCount)
	for i := 1; i <= ctx.PageCount; i++ {
		single, err := pdfcpu.ExtractPages(ctx, []int{i}, false)
		if err != nil {
			return nil, fmt.Errorf("failed to extract page %d of %s: %w", i, source, err)
		}

		var buf bytes.Buffer
		if err := pdfapi.WriteContext(single, &buf); err != nil {
			return nil, fmt.Errorf("failed to serialize page %d of %s: %w", i, source, err)
		}

		p := &Page{data: buf.Bytes()}
		if i-1 < len(dims) {
			p.Width = dims[i-1].Width
			p.Height = dims[i-1].Height
		}
		pages = append(pages, p)
	}

	return &Document{Source: source, Pages: pages}, nil
}

// ReadFile parses the PDF at path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, filepath.Base(path))
}
