package selector

// Kind identifies one kind of simple selector fragment. Declaration order is
// the canonical order CSS compound selectors must follow: element, id, class,
// attribute, pseudo-class, pseudo-element.
type Kind int

const (
	KindElement Kind = iota
	KindID
	KindClass
	KindAttribute
	KindPseudoClass
	KindPseudoElement
)

// String returns the human readable name of the fragment kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindID:
		return "id"
	case KindClass:
		return "class"
	case KindAttribute:
		return "attribute"
	case KindPseudoClass:
		return "pseudo-class"
	case KindPseudoElement:
		return "pseudo-element"
	default:
		return "unknown"
	}
}

// singular reports whether the kind may occur at most once per compound selector.
func (k Kind) singular() bool {
	return k == KindElement || k == KindID || k == KindPseudoElement
}
