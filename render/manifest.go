package render

import (
	"bufio"
	"fmt"
	"os"

	"github.com/tsawler/mosaic/model"
)

// WriteManifest writes the dataset-mode manifest: one line per region,
// coordinates normalized to the 0-1 range by the detection raster size.
// Regular regions are written as
//
//	x1 y1 x2 y2 label id position
//
// and table cells as
//
//	x1 y1 x2 y2 label row col
//
// Coordinates carry six decimals.
func WriteManifest(path string, regions []model.Region, width, height float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating manifest: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, r := range regions {
		n := r.Rect.Scale(1/width, 1/height)
		if r.Label == model.LabelTableCell {
			fmt.Fprintf(w, "%.6f %.6f %.6f %.6f %s %d %d\n",
				n.X1, n.Y1, n.X2, n.Y2, r.Label, r.Row, r.Col)
		} else {
			fmt.Fprintf(w, "%.6f %.6f %.6f %.6f %s %d %d\n",
				n.X1, n.Y1, n.X2, n.Y2, r.Label, r.ID, r.Position)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing manifest: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing manifest: %w", err)
	}
	return nil
}
