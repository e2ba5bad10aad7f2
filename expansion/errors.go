package expansion

import "errors"

// Sentinel errors for driver construction and labeling setters.
var (
	// ErrLabelCount indicates fewer than one label, or a model covering a
	// different number of labels than requested.
	ErrLabelCount = errors.New("expansion: label count must be at least 1 and match the cost model")

	// ErrLabelRange indicates a label outside [0, labels).
	ErrLabelRange = errors.New("expansion: label out of range")

	// ErrLabelingLength indicates a labeling whose length differs from the site count.
	ErrLabelingLength = errors.New("expansion: labeling length does not match site count")

	// ErrSiteCount indicates a cost model sized for a different number of sites.
	ErrSiteCount = errors.New("expansion: cost model does not match grid site count")

	// ErrNilInput indicates a nil grid or cost model.
	ErrNilInput = errors.New("expansion: grid and cost model must be non-nil")
)
