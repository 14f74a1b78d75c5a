package layout

import (
	"sync"

	"github.com/tsawler/mosaic/model"
)

// Expand grows each non-pictorial region toward its neighbors and the
// page edge to fill interstitial whitespace, without creating new
// overlaps. Detection boxes are tight to ink; snapping them outward makes
// downstream crops cleaner.
//
// Two working copies of the region list are grown independently, one on
// the vertical axis and one on the horizontal. Within a copy, every sweep
// re-evaluates the overlap predicate against the current state of all
// boxes; a region that overlaps nothing grows by one pixel on each edge
// of its axis, clamped to [0, pageWidth] x [0, pageHeight]. Sweeps repeat
// until a full sweep changes nothing. Growth is monotone and bounded by
// the page extents, so both passes reach a fixed point.
//
// The merged result takes each region's vertical extent from the vertical
// pass and horizontal extent from the horizontal pass. Pictorial regions
// (Picture, Figure) never grow and keep their input rectangle. Running
// Expand on its own output is a no-op.
func Expand(regions []model.Region, pageWidth, pageHeight float64) []model.Region {
	vertical := make([]model.Region, len(regions))
	copy(vertical, regions)
	horizontal := make([]model.Region, len(regions))
	copy(horizontal, regions)

	// The two passes are independent; both must converge before the
	// merge reads either.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		growVertical(vertical, pageHeight)
	}()
	go func() {
		defer wg.Done()
		growHorizontal(horizontal, pageWidth)
	}()
	wg.Wait()

	merged := make([]model.Region, len(regions))
	for i := range regions {
		if vertical[i].Label.Role() == model.RolePictorial {
			merged[i] = vertical[i]
			continue
		}
		m := vertical[i]
		m.Rect.X1 = horizontal[i].Rect.X1
		m.Rect.X2 = horizontal[i].Rect.X2
		merged[i] = m
	}
	return merged
}

// overlapsAny reports whether box i overlaps any other box in the current
// state of the arena.
func overlapsAny(boxes []model.Region, i int) bool {
	for j := range boxes {
		if j != i && boxes[i].Rect.Overlaps(boxes[j].Rect) {
			return true
		}
	}
	return false
}

func growVertical(boxes []model.Region, yMax float64) {
	for {
		changed := false
		for i := range boxes {
			if boxes[i].Label.Role() == model.RolePictorial {
				continue
			}
			if overlapsAny(boxes, i) {
				continue
			}
			r := boxes[i].Rect
			y1, y2 := r.Y1, r.Y2
			if y2 < yMax {
				y2++
			}
			if y1 > 0 {
				y1--
			}
			if y1 != r.Y1 || y2 != r.Y2 {
				boxes[i].Rect.Y1 = y1
				boxes[i].Rect.Y2 = y2
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

func growHorizontal(boxes []model.Region, xMax float64) {
	for {
		changed := false
		for i := range boxes {
			if boxes[i].Label.Role() == model.RolePictorial {
				continue
			}
			if overlapsAny(boxes, i) {
				continue
			}
			r := boxes[i].Rect
			x1, x2 := r.X1, r.X2
			if x1 > 0 {
				x1--
			}
			if x2 < xMax {
				x2++
			}
			if x1 != r.X1 || x2 != r.X2 {
				boxes[i].Rect.X1 = x1
				boxes[i].Rect.X2 = x2
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}
