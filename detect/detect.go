// Package detect defines the boundary contracts for the external
// perception models the fusion pipeline consumes: line-level text
// detection, layout-region detection, reading-order prediction, and
// table-cell recognition.
//
// Each predictor is a batched, blocking, atomic operation: it receives a
// slice of images (plus per-image auxiliary inputs) and must return one
// result per image, index-aligned with its inputs. Partial results are
// never accepted; a result slice whose length differs from the input batch
// is a contract violation, which the pipeline surfaces as an error rather
// than recovering from. The context passed in is informational — the
// pipeline never cancels a predictor call mid-flight.
package detect

import (
	"context"
	"image"

	"github.com/tsawler/mosaic/model"
)

// LineSet is the per-image output of line-level text detection.
type LineSet struct {
	Lines []model.LineBox
}

// LayoutBox is a single detected layout region: a rectangle plus the
// predictor's label string. Labels are parsed into the closed label set
// during region extraction.
type LayoutBox struct {
	Rect       model.Rect
	Label      string
	Confidence float64
}

// RegionSet is the per-image output of layout detection.
type RegionSet struct {
	Boxes []LayoutBox
}

// OrderEntry assigns a reading-order position to a rectangle. Positions
// form a dense 0..k-1 permutation of the input rectangles; rectangles
// match the input set by exact value.
type OrderEntry struct {
	Rect     model.Rect
	Position int
}

// OrderResult is the per-image output of reading-order prediction.
type OrderResult struct {
	Entries []OrderEntry
}

// TableResult is the per-image output of table-cell recognition. Cell
// rectangles are local to the cropped table image.
type TableResult struct {
	Cells []model.TableCell
}

// LineDetector detects text lines in a batch of images.
type LineDetector interface {
	DetectLines(ctx context.Context, images []image.Image) ([]LineSet, error)
}

// LayoutDetector detects layout regions in a batch of images, guided by
// the line detections for the same images.
type LayoutDetector interface {
	DetectLayout(ctx context.Context, images []image.Image, lines []LineSet) ([]RegionSet, error)
}

// OrderPredictor predicts a reading order over the given rectangle list
// for each image.
type OrderPredictor interface {
	PredictOrder(ctx context.Context, images []image.Image, rects [][]model.Rect) ([]OrderResult, error)
}

// TablePredictor recognizes the cell structure of cropped table images.
// The candidate rectangles are table-local line detections that fall
// inside each table. A predictor may fail for a whole batch; the caller
// degrades to emitting the un-decomposed tables.
type TablePredictor interface {
	RecognizeTables(ctx context.Context, crops []image.Image, candidates [][]model.Rect) ([]TableResult, error)
}
