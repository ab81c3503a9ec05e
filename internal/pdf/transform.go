package pdf

import (
	"errors"
	"fmt"
)

// ErrTooShort signals that a document has fewer than three pages and
// cannot have its first and last page removed. Callers treat this as a
// skip condition, not a failure.
var ErrTooShort = errors.New("document too short to trim")

const numberFontSize = 12

// TrimEnds returns a copy of the document without its first and last
// page. Documents with fewer than three pages cannot be trimmed safely.
func (d *Document) TrimEnds() (*Document, error) {
	if len(d.Pages) < 3 {
		return nil, fmt.Errorf("%s has only %d page(s): %w", d.Source, len(d.Pages), ErrTooShort)
	}

	pages := make([]*Page, len(d.Pages)-2)
	copy(pages, d.Pages[1:len(d.Pages)-1])
	return &Document{Source: d.Source, Pages: pages}, nil
}

// PadEven appends one blank page when the page count is odd, so the
// document always ends on an even count. Already-even documents are
// returned unchanged.
func (d *Document) PadEven() (*Document, error) {
	if len(d.Pages)%2 == 0 {
		return d, nil
	}

	// Blank page matches the first page's dimensions.
	var w, h float64
	if len(d.Pages) > 0 {
		w, h = d.Pages[0].Width, d.Pages[0].Height
	}
	blank, err := NewBlankPage(w, h)
	if err != nil {
		return nil, fmt.Errorf("failed to pad %s: %w", d.Source, err)
	}

	pages := make([]*Page, 0, len(d.Pages)+1)
	pages = append(pages, d.Pages...)
	pages = append(pages, blank)
	return &Document{Source: d.Source, Pages: pages}, nil
}

// ReverseOdd reverses the order of pages at odd 1-based positions
// (1, 3, 5, ...) while even-position pages stay where they are.
func (d *Document) ReverseOdd() *Document {
	var odd []*Page
	for i := 0; i < len(d.Pages); i += 2 {
		odd = append(odd, d.Pages[i])
	}

	pages := make([]*Page, len(d.Pages))
	copy(pages, d.Pages)
	for i := 0; i < len(odd); i++ {
		pages[2*i] = odd[len(odd)-1-i]
	}
	return &Document{Source: d.Source, Pages: pages}
}

// RotateAll tags every page with an additional rotation. angle must be
// 90, 180, or 270.
func (d *Document) RotateAll(angle int) (*Document, error) {
	if err := validateAngle(angle); err != nil {
		return nil, err
	}

	pages := make([]*Page, len(d.Pages))
	for i, p := range d.Pages {
		rotated := *p
		rotated.Rotation = (p.Rotation + angle) % 360
		pages[i] = &rotated
	}
	return &Document{Source: d.Source, Pages: pages}, nil
}

// RotateOdd tags pages at odd 1-based positions with an additional
// rotation. angle must be 90, 180, or 270.
func (d *Document) RotateOdd(angle int) (*Document, error) {
	if err := validateAngle(angle); err != nil {
		return nil, err
	}

	pages := make([]*Page, len(d.Pages))
	for i, p := range d.Pages {
		if i%2 == 0 {
			rotated := *p
			rotated.Rotation = (p.Rotation + angle) % 360
			pages[i] = &rotated
		} else {
			pages[i] = p
		}
	}
	return &Document{Source: d.Source, Pages: pages}, nil
}

// NumberPages stamps each page with its 1-based index in the bottom
// right corner, Helvetica at 12pt.
func (d *Document) NumberPages() (*Document, error) {
	desc := fmt.Sprintf("font:Helvetica, points:%d, scale:1 abs, pos:br, off:-20 20, rot:0", numberFontSize)

	pages := make([]*Page, len(d.Pages))
	for i, p := range d.Pages {
		stamped, err := stampPage(p, fmt.Sprintf("%d", i+1), desc)
		if err != nil {
			return nil, fmt.Errorf("failed to number page %d of %s: %w", i+1, d.Source, err)
		}
		pages[i] = stamped
	}
	return &Document{Source: d.Source, Pages: pages}, nil
}

// Duplex prepares a single document for manual duplex printing: remove
// first and last page, pad to an even count, stamp page numbers, reverse
// the odd-position pages, and rotate the odd positions by angle.
func (d *Document) Duplex(angle int) (*Document, error) {
	if err := validateAngle(angle); err != nil {
		return nil, err
	}

	trimmed, err := d.TrimEnds()
	if err != nil {
		return nil, err
	}
	padded, err := trimmed.PadEven()
	if err != nil {
		return nil, err
	}
	numbered, err := padded.NumberPages()
	if err != nil {
		return nil, err
	}
	return numbered.ReverseOdd().RotateOdd(angle)
}

func validateAngle(angle int) error {
	switch angle {
	case 90, 180, 270:
		return nil
	default:
		return fmt.Errorf("rotation angle must be 90, 180, or 270, got %d", angle)
	}
}
