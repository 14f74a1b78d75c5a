package layout

import (
	"github.com/tsawler/mosaic/detect"
	"github.com/tsawler/mosaic/model"
)

// ExtractRegions flattens a layout predictor's output into regions,
// parsing each label string through the closed label set. Rectangles with
// non-positive extent are discarded, never repaired; the second return
// value counts them.
func ExtractRegions(set detect.RegionSet) ([]model.Region, int) {
	regions := make([]model.Region, 0, len(set.Boxes))
	discarded := 0
	for _, box := range set.Boxes {
		if !box.Rect.IsValid() {
			discarded++
			continue
		}
		regions = append(regions, model.NewRegion(box.Rect, model.ParseLabel(box.Label)))
	}
	return regions, discarded
}

// FilterText removes generic Text regions from a sparse-line region list.
// Sparse detection on the raw raster is precise for thin structural
// elements but noisy for body text, so only structurally meaningful
// labels survive into consolidation.
func FilterText(regions []model.Region) []model.Region {
	out := make([]model.Region, 0, len(regions))
	for _, r := range regions {
		if r.Label == model.LabelText {
			continue
		}
		out = append(out, r)
	}
	return out
}
