package state

// ConfirmState backs a generic confirmation dialog.
// The parent opens it with a display name and a callback; the dialog itself
// knows nothing about what is being confirmed.
type ConfirmState struct {
	open      bool
	name      string
	onConfirm func()
}

// NewConfirmState creates a closed ConfirmState.
func NewConfirmState() *ConfirmState {
	return &ConfirmState{}
}

// Open shows the dialog for the named item.
func (s *ConfirmState) Open(name string, onConfirm func()) {
	s.open = true
	s.name = name
	s.onConfirm = onConfirm
}

// IsOpen reports whether the dialog is visible.
func (s *ConfirmState) IsOpen() bool {
	return s.open
}

// Name returns the display name interpolated into the prompt.
func (s *ConfirmState) Name() string {
	return s.name
}

// Confirm runs the callback once and closes the dialog.
func (s *ConfirmState) Confirm() {
	fn := s.onConfirm
	s.Close()
	if fn != nil {
		fn()
	}
}

// Close hides the dialog without running the callback.
func (s *ConfirmState) Close() {
	s.open = false
	s.name = ""
	s.onConfirm = nil
}
