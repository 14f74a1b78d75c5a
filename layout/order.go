package layout

import (
	"sort"

	"github.com/tsawler/mosaic/detect"
	"github.com/tsawler/mosaic/model"
)

// OrderedResult holds the outcome of reading-order reconciliation.
type OrderedResult struct {
	// Regions in reading order, each stamped with its order position.
	Regions []model.Region

	// Dropped counts order entries whose rectangle had no exact match in
	// the region list. The corresponding regions fall out of the ordered
	// output; the count exists so callers can surface the loss.
	Dropped int
}

// ReconcileOrder maps an external reading-order prediction back onto the
// original regions by exact rectangle identity and sorts the survivors by
// order position.
//
// The prediction was computed against a proxy copy of the regions that is
// coordinate-identical by construction, so lookup is by exact value; a
// near-miss (for example from rounding) is treated as no match and the
// region is silently excluded from the ordered output. Positions are
// assumed to be unique integers, so the sort yields a strict total order.
func ReconcileOrder(regions []model.Region, order detect.OrderResult) OrderedResult {
	byRect := make(map[model.Rect]model.Region, len(regions))
	for _, r := range regions {
		byRect[r.Rect] = r
	}

	ordered := make([]model.Region, 0, len(order.Entries))
	dropped := 0
	for _, entry := range order.Entries {
		r, ok := byRect[entry.Rect]
		if !ok {
			dropped++
			continue
		}
		r.Position = entry.Position
		ordered = append(ordered, r)
	}

	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	return OrderedResult{Regions: ordered, Dropped: dropped}
}
