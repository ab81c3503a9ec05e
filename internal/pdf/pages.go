package pdf

import (
	"bytes"
	"fmt"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// US Letter, used when a page's dimensions are unknown.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

const titleFontSize = 36

// NewBlankPage returns an empty page with the given media box dimensions
// in points. Non-positive dimensions fall back to US Letter.
func NewBlankPage(width, height float64) (*Page, error) {
	if width <= 0 || height <= 0 {
		width, height = defaultPageWidth, defaultPageHeight
	}

	conf := model.NewDefaultConfiguration()
	ctx, err := pdfcpu.CreateContextWithXRefTable(conf, &types.Dim{Width: width, Height: height})
	if err != nil {
		return nil, fmt.Errorf("failed to create blank page: %w", err)
	}

	var buf bytes.Buffer
	if err := pdfapi.WriteContext(ctx, &buf); err != nil {
		return nil, fmt.Errorf("failed to serialize blank page: %w", err)
	}

	return &Page{data: buf.Bytes(), Width: width, Height: height}, nil
}

// NewTitlePage renders title centered on an otherwise blank page,
// Helvetica-Bold at 36pt.
func NewTitlePage(title string, width, height float64) (*Page, error) {
	blank, err := NewBlankPage(width, height)
	if err != nil {
		return nil, err
	}

	desc := fmt.Sprintf("font:Helvetica-Bold, points:%d, scale:1 abs, pos:c, rot:0", titleFontSize)
	wm, err := pdfapi.TextWatermark(title, desc, true, false, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("failed to build title stamp: %w", err)
	}

	conf := model.NewDefaultConfiguration()
	var buf bytes.Buffer
	if err := pdfapi.AddWatermarks(bytes.NewReader(blank.data), &buf, nil, wm, conf); err != nil {
		return nil, fmt.Errorf("failed to stamp title %q: %w", title, err)
	}

	return &Page{data: buf.Bytes(), Width: blank.Width, Height: blank.Height}, nil
}

// stampPage applies a text watermark to a single page and returns the
// stamped copy. Used for page numbering.
func stampPage(p *Page, text, desc string) (*Page, error) {
	wm, err := pdfapi.TextWatermark(text, desc, true, false, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("failed to build stamp %q: %w", text, err)
	}

	conf := model.NewDefaultConfiguration()
	var buf bytes.Buffer
	if err := pdfapi.AddWatermarks(bytes.NewReader(p.data), &buf, nil, wm, conf); err != nil {
		return nil, fmt.Errorf("failed to stamp page: %w", err)
	}

	stamped := *p
	stamped.data = buf.Bytes()
	return &stamped, nil
}
