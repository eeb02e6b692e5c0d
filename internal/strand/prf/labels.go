package prf

// Label names one independent random stream. The set is closed: label
// strings are part of the hash input, so adding or renaming one changes
// every artifact derived afterwards.
type Label string

const (
	LabelStepCount Label = "STEP_COUNT"
	LabelPadding   Label = "PADDING"
	LabelSharpness Label = "SHARPNESS"
	LabelTargetX   Label = "TARGET_X"
	LabelTargetY   Label = "TARGET_Y"

	LabelDX1 Label = "DX_1"
	LabelDY1 Label = "DY_1"
	LabelDX2 Label = "DX_2"
	LabelDY2 Label = "DY_2"
	LabelDX3 Label = "DX_3"
	LabelDY3 Label = "DY_3"
)

// ScopeTag is sent with every draw (local or remote) so this artifact
// family never collides with another consumer of the same randomness
// endpoint.
const ScopeTag = "strandweave/v1"

// Labels returns the closed label set.
func Labels() []Label {
	return []Label{
		LabelStepCount, LabelPadding, LabelSharpness,
		LabelTargetX, LabelTargetY,
		LabelDX1, LabelDY1, LabelDX2, LabelDY2, LabelDX3, LabelDY3,
	}
}
