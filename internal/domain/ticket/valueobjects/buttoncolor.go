package valueobjects

// ButtonColor is a display hint for action buttons. It carries no behavior.
type ButtonColor string

const (
	ColorPrimary   ButtonColor = "primary"
	ColorDanger    ButtonColor = "danger"
	ColorSecondary ButtonColor = "secondary"
	ColorSuccess   ButtonColor = "success"
	ColorWarning   ButtonColor = "warning"
	ColorLink      ButtonColor = "link"
)

var validButtonColors = map[ButtonColor]bool{
	ColorPrimary:   true,
	ColorDanger:    true,
	ColorSecondary: true,
	ColorSuccess:   true,
	ColorWarning:   true,
	ColorLink:      true,
}

func (bc ButtonColor) String() string {
	return string(bc)
}

func (bc ButtonColor) IsValid() bool {
	return validButtonColors[bc]
}

// NormalizeButtonColor falls back to secondary for unknown values; a bad
// display hint should never block ticket flow.
func NormalizeButtonColor(s string) ButtonColor {
	bc := ButtonColor(s)
	if !bc.IsValid() {
		return ColorSecondary
	}
	return bc
}
