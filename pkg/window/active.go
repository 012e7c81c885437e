package window

// ActiveSet tracks, for the key currently being processed, which windows are
// live and where their state is addressed. The reduce engine owns an
// implementation per keyed stage; the addressing layer only consumes this
// boundary.
//
// Callers must only pass windows the set is tracking. Behavior for an unknown
// window is the implementation's to define; the addressing layer does not
// recover from it.
type ActiveSet[W Window] interface {
	// WriteStateAddress returns the window whose namespace currently receives
	// new state for w. This is w itself unless a prior merge renamed it.
	WriteStateAddress(w W) W
	// MergedWriteStateAddress returns the single window whose namespace all
	// future state for the merging set should live under once toBeMerged has
	// merged into mergeResult.
	MergedWriteStateAddress(toBeMerged []W, mergeResult W) W
	// ReadStateAddresses returns every window whose namespace may currently
	// hold state contributing to w. Used before a merge decision is final.
	ReadStateAddresses(w W) []W
}

// NonMergingActiveSet is the ActiveSet for strategies whose windows never
// merge: every window's state lives at its own namespace, always.
type NonMergingActiveSet[W Window] struct{}

var _ ActiveSet[Window] = (*NonMergingActiveSet[Window])(nil)

// NewNonMergingActiveSet returns an ActiveSet with identity addressing.
func NewNonMergingActiveSet[W Window]() *NonMergingActiveSet[W] {
	return &NonMergingActiveSet[W]{}
}

func (n *NonMergingActiveSet[W]) WriteStateAddress(w W) W {
	return w
}

func (n *NonMergingActiveSet[W]) MergedWriteStateAddress(toBeMerged []W, mergeResult W) W {
	panic("window: merge is never legal for a non-merging strategy")
}

func (n *NonMergingActiveSet[W]) ReadStateAddresses(w W) []W {
	return []W{w}
}
