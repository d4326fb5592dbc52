package tui

type ApplicationState int

const (
	StateGallery ApplicationState = iota
	StateError
)

// Button identifies one of the two navigation buttons.
type Button int

const (
	ButtonPrevious Button = iota
	ButtonNext
)

func (b Button) other() Button {
	if b == ButtonPrevious {
		return ButtonNext
	}
	return ButtonPrevious
}
