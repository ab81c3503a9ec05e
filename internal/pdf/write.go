package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Write merges pages into a single PDF on w, in order, and applies any
// pending rotation tags in one pass per distinct angle.
func Write(w io.Writer, pages []*Page) error {
	if len(pages) == 0 {
		return errors.New("no pages to write")
	}

	conf := model.NewDefaultConfiguration()

	readers := make([]io.ReadSeeker, len(pages))
	for i, p := range pages {
		readers[i] = bytes.NewReader(p.data)
	}

	var merged bytes.Buffer
	if err := pdfapi.MergeRaw(readers, &merged, false, conf); err != nil {
		return fmt.Errorf("failed to merge %d page(s): %w", len(pages), err)
	}

	// Group tagged pages by angle so each angle is a single rotate pass.
	byAngle := make(map[int][]string)
	for i, p := range pages {
		if angle := ((p.Rotation % 360) + 360) % 360; angle != 0 {
			byAngle[angle] = append(byAngle[angle], strconv.Itoa(i+1))
		}
	}

	out := merged.Bytes()
	for angle, selected := range byAngle {
		var rotated bytes.Buffer
		if err := pdfapi.Rotate(bytes.NewReader(out), &rotated, angle, selected, conf); err != nil {
			return fmt.Errorf("failed to rotate %d page(s) by %d: %w", len(selected), angle, err)
		}
		out = rotated.Bytes()
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// WriteFile writes pages to a new file at path, overwriting any
// existing file.
func WriteFile(path string, pages []*Page) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Write(f, pages); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
