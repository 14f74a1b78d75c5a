package layout

import (
	"github.com/tsawler/mosaic/model"
)

// Consolidate merges a page's sparse-line regions into its layout regions.
// For every (sparse, layout) pair the layout box is marked for deletion
// when either rule fires:
//
//   - the sparse label is structural, the rectangles overlap, and the
//     sparse box is more than half the layout box's height
//     (2·sparse.Height > layout.Height), or
//   - the sparse label is encapsulating and the layout box is fully
//     enclosed in the sparse box.
//
// Sparse regions are never deleted. The result is the sparse regions
// followed by the surviving layout regions; concatenation order carries
// no positional meaning.
func Consolidate(sparse, layoutRegions []model.Region) []model.Region {
	deleteFromLayout := make(map[int]bool)
	deleteFromSparse := make(map[int]bool) // computed for symmetry, never populated

	for _, primary := range sparse {
		for j, secondary := range layoutRegions {
			switch primary.Label.Role() {
			case model.RoleStructural:
				if primary.Rect.Overlaps(secondary.Rect) &&
					2*primary.Rect.Height() > secondary.Rect.Height() {
					deleteFromLayout[j] = true
				}
			case model.RoleEncapsulating:
				if primary.Rect.Encloses(secondary.Rect) {
					deleteFromLayout[j] = true
				}
			}
		}
	}

	out := make([]model.Region, 0, len(sparse)+len(layoutRegions))
	for i, r := range sparse {
		if deleteFromSparse[i] {
			continue
		}
		out = append(out, r)
	}
	for j, r := range layoutRegions {
		if deleteFromLayout[j] {
			continue
		}
		out = append(out, r)
	}
	return out
}

// AssignIDs stamps each region with its index as a stable per-page
// identity. IDs are assigned once; later stages reorder and drop regions
// but never renumber them.
func AssignIDs(regions []model.Region) []model.Region {
	for i := range regions {
		regions[i].ID = i
	}
	return regions
}

// CollapseConfig holds configuration for the degenerate-page collapse.
type CollapseConfig struct {
	// Threshold is the region count at which a page is considered
	// pathologically over-segmented. Downstream encoding uses a
	// single-byte identifier space, hence the default of 255.
	Threshold int
}

// DefaultCollapseConfig returns the standard collapse configuration.
func DefaultCollapseConfig() CollapseConfig {
	return CollapseConfig{Threshold: 255}
}

// CollapseIfOverSegmented replaces a pathologically over-segmented region
// list with a single Text region, ID 0, covering the bounding box of all
// inputs. Lists below the threshold are returned unchanged.
func CollapseIfOverSegmented(regions []model.Region, cfg CollapseConfig) []model.Region {
	if len(regions) < cfg.Threshold {
		return regions
	}

	bounds := regions[0].Rect
	for _, r := range regions[1:] {
		bounds = bounds.Union(r.Rect)
	}

	collapsed := model.NewRegion(bounds, model.LabelText)
	collapsed.ID = 0
	return []model.Region{collapsed}
}
