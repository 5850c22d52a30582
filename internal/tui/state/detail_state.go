package state

// DetailState holds the candidate shown in the detail layer.
type DetailState struct {
	CandidateID string
}

// NewDetailState creates an empty DetailState.
func NewDetailState() *DetailState {
	return &DetailState{}
}
