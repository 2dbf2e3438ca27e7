package directive

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the action requested by an inline marker.
type Kind int

const (
	KindAppend Kind = iota
	KindDrop
	KindRename
)

// Marker returns the inline marker text for the kind.
func (k Kind) Marker() string {
	switch k {
	case KindAppend:
		return "~+"
	case KindDrop:
		return "~-"
	case KindRename:
		return "~>"
	default:
		return ""
	}
}

// kindOf maps the character following "~" to a Kind.
func kindOf(c byte) (Kind, bool) {
	switch c {
	case '+':
		return KindAppend, true
	case '-':
		return KindDrop, true
	case '>':
		return KindRename, true
	default:
		return 0, false
	}
}
