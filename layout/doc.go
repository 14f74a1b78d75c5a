// Package layout implements the per-page region fusion stages: extraction
// of predictor output into regions, filtering of generic sparse text
// lines, label-aware consolidation of the sparse and layout region sets,
// stable ID assignment, the degenerate-page collapse, reading-order
// reconciliation, and the gap-filling rectangle expansion.
//
// All stages operate on value slices of [model.Region] owned by a single
// page; nothing here is shared across pages, so pages can run these
// stages concurrently without locking.
package layout
