// Package cost supplies the unary and pairwise terms of a grid labeling
// energy through a single Model contract.
//
// What:
//
//   - Data(site, label): the cost of one label at one site in isolation.
//   - Smooth(edge, l1, l2): the cost of labels l1 at edge.From and l2 at
//     edge.To. No symmetry is required.
//
// Variants:
//
//   - Table: one labels×labels matrix shared by every edge.
//   - EdgeTable: one matrix per directed edge index (spatially varying).
//   - Func: smoothness computed on demand by a pure SmoothFunc.
//
// All variants embed a DataTable and are interchangeable for callers; the
// expansion package never needs to know which one is in use.
//
// Builders such as Potts, TruncatedLinear and WeightedPotts produce the
// matrices most grid problems start from. They panic on nonsensical
// parameters (programmer error); constructors return sentinel errors.
//
// Errors:
//
//   - ErrLabelCount:   fewer than one label.
//   - ErrDimension:    a table length does not match sites×labels or labels×labels.
//   - ErrNegativeCost: a table entry is negative.
//   - ErrNilFunc:      Func built without a SmoothFunc.
package cost
