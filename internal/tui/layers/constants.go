package layers

const (
	ModalWidthNumerator   = 3 // modals take 3/5 of the screen width
	ModalWidthDenominator = 5

	ModalMinWidth = 40
	ModalMaxWidth = 80

	ConfirmWidth = 50
	HelpWidth    = 54
	MenuWidth    = 24
)
