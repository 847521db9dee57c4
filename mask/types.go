package mask

// Info augments the wrapped environment's navenv.Info with the
// masking decisions made for the step that produced it (MaskingApplied,
// OriginalAction, ChosenAction, CyclePenalty) and the action mask for
// the node the agent now occupies (ActionMask, ValidActions).
type Info struct {
	ActionMask     []bool
	ValidActions   []int
	MaskingApplied bool
	OriginalAction int
	ChosenAction   int
	CyclePenalty   float64
}
