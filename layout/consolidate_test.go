package layout

import (
	"testing"

	"github.com/tsawler/mosaic/model"
)

func region(x1, y1, x2, y2 float64, label model.Label) model.Region {
	return model.NewRegion(model.NewRect(x1, y1, x2, y2), label)
}

func TestConsolidateStructuralOverride(t *testing.T) {
	// A Title fully overlapping a Text layout box and dominating its
	// height (2*20 > 15) deletes the layout box.
	sparse := []model.Region{region(0, 0, 100, 20, model.LabelTitle)}
	layoutRegions := []model.Region{region(0, 0, 100, 15, model.LabelText)}

	out := Consolidate(sparse, layoutRegions)
	if len(out) != 1 {
		t.Fatalf("Expected 1 region, got %d", len(out))
	}
	if out[0].Label != model.LabelTitle {
		t.Errorf("Expected Title to survive, got %v", out[0].Label)
	}
}

func TestConsolidateStructuralHeightRule(t *testing.T) {
	// Same overlap, but the sparse box is not tall enough relative to the
	// layout box: nothing is deleted.
	sparse := []model.Region{region(0, 0, 100, 20, model.LabelTitle)}
	layoutRegions := []model.Region{region(0, 0, 100, 50, model.LabelText)}

	out := Consolidate(sparse, layoutRegions)
	if len(out) != 2 {
		t.Fatalf("Expected both regions to survive, got %d", len(out))
	}
}

func TestConsolidateStructuralNeedsOverlap(t *testing.T) {
	sparse := []model.Region{region(0, 0, 100, 20, model.LabelSectionHeader)}
	layoutRegions := []model.Region{region(0, 50, 100, 60, model.LabelText)}

	out := Consolidate(sparse, layoutRegions)
	if len(out) != 2 {
		t.Fatalf("Expected disjoint regions to survive, got %d", len(out))
	}
}

func TestConsolidateEncapsulation(t *testing.T) {
	// A Table fully enclosing a layout box deletes it; a layout box
	// sticking out survives.
	sparse := []model.Region{region(10, 10, 200, 200, model.LabelTable)}
	layoutRegions := []model.Region{
		region(20, 20, 180, 180, model.LabelText),
		region(20, 20, 250, 180, model.LabelText),
	}

	out := Consolidate(sparse, layoutRegions)
	if len(out) != 2 {
		t.Fatalf("Expected 2 regions, got %d", len(out))
	}
	if out[0].Label != model.LabelTable {
		t.Errorf("Expected sparse Table first, got %v", out[0].Label)
	}
	if out[1].Rect.X2 != 250 {
		t.Errorf("Expected the protruding layout box to survive, got %v", out[1].Rect)
	}
}

func TestConsolidatePlainSparseDeletesNothing(t *testing.T) {
	// Formula is neither structural nor encapsulating; it merges without
	// deleting anything even when it encloses a layout box.
	sparse := []model.Region{region(0, 0, 300, 300, model.LabelFormula)}
	layoutRegions := []model.Region{region(50, 50, 100, 100, model.LabelText)}

	out := Consolidate(sparse, layoutRegions)
	if len(out) != 2 {
		t.Fatalf("Expected 2 regions, got %d", len(out))
	}
}

func TestConsolidateOrderSparseThenLayout(t *testing.T) {
	sparse := []model.Region{region(0, 0, 10, 10, model.LabelCaption)}
	layoutRegions := []model.Region{region(100, 100, 200, 200, model.LabelText)}

	out := Consolidate(sparse, layoutRegions)
	if len(out) != 2 || out[0].Label != model.LabelCaption || out[1].Label != model.LabelText {
		t.Errorf("Expected sparse-then-layout concatenation, got %v", out)
	}
}

func TestAssignIDs(t *testing.T) {
	regions := []model.Region{
		region(0, 0, 10, 10, model.LabelText),
		region(20, 0, 30, 10, model.LabelTitle),
		region(40, 0, 50, 10, model.LabelTable),
	}

	regions = AssignIDs(regions)
	for i, r := range regions {
		if r.ID != i {
			t.Errorf("Expected ID %d, got %d", i, r.ID)
		}
	}
}

func TestCollapseIfOverSegmented(t *testing.T) {
	// 300 regions collapse to a single Text region spanning their
	// combined extents.
	regions := make([]model.Region, 0, 300)
	for i := 0; i < 300; i++ {
		x := float64(i % 20 * 30)
		y := float64(i / 20 * 40)
		r := region(x+5, y+5, x+25, y+35, model.LabelText)
		r.ID = i
		regions = append(regions, r)
	}

	out := CollapseIfOverSegmented(regions, DefaultCollapseConfig())
	if len(out) != 1 {
		t.Fatalf("Expected 1 region, got %d", len(out))
	}
	if out[0].Label != model.LabelText {
		t.Errorf("Expected Text label, got %v", out[0].Label)
	}
	if out[0].ID != 0 {
		t.Errorf("Expected ID 0, got %d", out[0].ID)
	}
	want := model.NewRect(5, 5, 595, 595)
	if out[0].Rect != want {
		t.Errorf("Expected bounding rect %v, got %v", want, out[0].Rect)
	}
}

func TestCollapseBelowThresholdUnchanged(t *testing.T) {
	regions := make([]model.Region, 254)
	for i := range regions {
		regions[i] = region(float64(i), 0, float64(i)+1, 10, model.LabelText)
	}

	out := CollapseIfOverSegmented(regions, DefaultCollapseConfig())
	if len(out) != 254 {
		t.Errorf("Expected 254 regions unchanged, got %d", len(out))
	}

	// The threshold is inclusive: exactly 255 regions collapse.
	regions = append(regions, region(300, 0, 301, 10, model.LabelText))
	out = CollapseIfOverSegmented(regions, DefaultCollapseConfig())
	if len(out) != 1 {
		t.Errorf("Expected collapse at exactly 255 regions, got %d", len(out))
	}
}
