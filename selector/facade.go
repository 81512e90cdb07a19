package selector

// Construction entry points. Each call returns a fresh independent builder
// seeded with one fragment - there is no shared state between calls.

// Element returns a new builder with its element fragment set.
func Element(v string) *Builder {
	return new(Builder).Element(v)
}

// ID returns a new builder with its id fragment set.
func ID(v string) *Builder {
	return new(Builder).ID(v)
}

// Class returns a new builder with one class fragment.
func Class(v string) *Builder {
	return new(Builder).Class(v)
}

// Attr returns a new builder with one attribute fragment.
func Attr(v string) *Builder {
	return new(Builder).Attr(v)
}

// PseudoClass returns a new builder with one pseudo-class fragment.
func PseudoClass(v string) *Builder {
	return new(Builder).PseudoClass(v)
}

// PseudoElement returns a new builder with its pseudo-element fragment set.
func PseudoElement(v string) *Builder {
	return new(Builder).PseudoElement(v)
}

// Combine joins two selector expressions with a combinator token. Operands
// may be builders or other combined nodes, nesting depth is unrestricted.
func Combine(left Selector, op string, right Selector) *Combined {
	return &Combined{left: left, op: op, right: right}
}

// Combine is also available on any builder for callers used to chaining
// everything off one instance. The receiver's own fragments do not
// participate in the result.
func (b *Builder) Combine(left Selector, op string, right Selector) *Combined {
	return Combine(left, op, right)
}
