// Package tables decomposes final Table regions into per-cell page
// regions using an external table-cell recognition predictor.
package tables

import (
	"context"
	"fmt"
	"image"

	"github.com/tsawler/mosaic/detect"
	"github.com/tsawler/mosaic/model"
)

// Decompose splits every Table region in regions into recognized cells.
//
// For each table, the detection raster is cropped at the table rectangle
// and every sparse line box fully enclosed by the table is translated
// into table-local coordinates as a candidate cell boundary. All tables
// of the page go to the predictor in one batch. Each returned cell is
// translated back to page-absolute coordinates and emitted as a
// table-cell region carrying the parent table's order position, its
// row/column, and a precomputed crop filename.
//
// Decomposition failure is non-fatal: on predictor error (or a
// result/table count mismatch) the original un-decomposed Table regions
// are re-emitted unchanged and the error is returned alongside the still
// valid result so the caller can log it. A nil predictor keeps all
// tables whole.
func Decompose(ctx context.Context, page *model.Page, regions []model.Region, lines []model.LineBox, pred detect.TablePredictor) ([]model.Region, error) {
	final := make([]model.Region, 0, len(regions))
	var (
		tableRegions []model.Region
		crops        []image.Image
		candidates   [][]model.Rect
	)

	for _, r := range regions {
		if r.Label != model.LabelTable {
			final = append(final, r)
			continue
		}
		tableRegions = append(tableRegions, r)
		crops = append(crops, page.CropDetection(r.Rect))
		candidates = append(candidates, candidateCells(r.Rect, lines))
	}

	if len(tableRegions) == 0 {
		return final, nil
	}
	if pred == nil {
		return append(final, tableRegions...), nil
	}

	results, err := pred.RecognizeTables(ctx, crops, candidates)
	if err == nil && len(results) != len(tableRegions) {
		err = fmt.Errorf("table predictor returned %d results for %d tables", len(results), len(tableRegions))
	}
	if err != nil {
		// Degrade to the whole table as one region.
		return append(final, tableRegions...), err
	}

	for i, result := range results {
		table := tableRegions[i]
		for _, cell := range result.Cells {
			region := model.NewRegion(
				cell.Rect.Translate(table.Rect.X1, table.Rect.Y1),
				model.LabelTableCell,
			)
			region.ID = table.ID
			region.Position = table.Position
			region.Row = cell.Row
			region.Col = cell.Col
			region.Filename = fmt.Sprintf("%d_%d_a_%d_%d.png", page.Number, table.Position, cell.Row, cell.Col)
			final = append(final, region)
		}
	}
	return final, nil
}

// candidateCells collects the line boxes fully enclosed by the table
// rectangle, translated into the table's local coordinate frame.
func candidateCells(table model.Rect, lines []model.LineBox) []model.Rect {
	var cells []model.Rect
	for _, line := range lines {
		if table.Encloses(line.Rect) {
			cells = append(cells, line.Rect.Translate(-table.X1, -table.Y1))
		}
	}
	return cells
}
