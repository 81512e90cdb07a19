// Package selector builds CSS selector strings from composable parts,
// enforcing the ordering and cardinality rules CSS imposes on compound
// selectors. It only goes structure to text - parsing selectors back is out
// of scope.
package selector

import (
	"errors"
	"strings"
)

var (
	// ErrDuplicateFragment is reported when element, id or pseudo-element is
	// supplied a second time on the same builder.
	ErrDuplicateFragment = errors.New("element, id and pseudo-element should not occur more then one time inside the selector")
	// ErrOrder is reported when a fragment is added after a fragment of a
	// later kind.
	ErrOrder = errors.New("selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")
)

// Selector is a renderable selector expression - either a single *Builder or
// a *Combined tree.
type Selector interface {
	// String renders the selector text best-effort, ignoring recorded errors.
	String() string
	// Result renders the selector text or reports the first violation
	// recorded while the expression was assembled.
	Result() (string, error)
}

// Builder accumulates fragments of one compound selector and renders them in
// canonical kind order. Fragments are stored already rendered, repeatable
// kinds keep insertion order.
//
// Methods mutate the receiver and return it for chaining. Since a fluent
// chain has no room for per-call error returns the builder is error-sticky:
// the first cardinality or ordering violation is recorded, every later call
// becomes a no-op and Result surfaces the error. A builder with a recorded
// error must be discarded.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	element       string
	id            string
	classes       []string
	attrs         []string
	pseudoClasses []string
	pseudoElement string

	seen []Kind // distinct kinds in first-insertion order
	err  error
}

// Element sets the element (tag) fragment. At most one per builder.
func (b *Builder) Element(v string) *Builder {
	return b.add(KindElement, v)
}

// ID sets the id fragment, rendered as "#" + v. At most one per builder.
func (b *Builder) ID(v string) *Builder {
	return b.add(KindID, "#"+v)
}

// Class appends a class fragment, rendered as "." + v.
func (b *Builder) Class(v string) *Builder {
	return b.add(KindClass, "."+v)
}

// Attr appends an attribute fragment, rendered as "[" + v + "]". The
// expression inside the brackets is taken literally, no validation.
func (b *Builder) Attr(v string) *Builder {
	return b.add(KindAttribute, "["+v+"]")
}

// PseudoClass appends a pseudo-class fragment, rendered as ":" + v.
func (b *Builder) PseudoClass(v string) *Builder {
	return b.add(KindPseudoClass, ":"+v)
}

// PseudoElement sets the pseudo-element fragment, rendered as "::" + v. At
// most one per builder.
func (b *Builder) PseudoElement(v string) *Builder {
	return b.add(KindPseudoElement, "::"+v)
}

func (b *Builder) add(k Kind, text string) *Builder {
	if b.err != nil {
		return b
	}
	if k.singular() && b.has(k) {
		b.err = ErrDuplicateFragment
		return b
	}
	// Adding a kind already present does not move the current position, so
	// only kinds later in the canonical order can violate ordering.
	for _, s := range b.seen {
		if s > k {
			b.err = ErrOrder
			return b
		}
	}
	if !b.has(k) {
		b.seen = append(b.seen, k)
	}
	switch k {
	case KindElement:
		b.element = text
	case KindID:
		b.id = text
	case KindClass:
		b.classes = append(b.classes, text)
	case KindAttribute:
		b.attrs = append(b.attrs, text)
	case KindPseudoClass:
		b.pseudoClasses = append(b.pseudoClasses, text)
	case KindPseudoElement:
		b.pseudoElement = text
	}
	return b
}

func (b *Builder) has(k Kind) bool {
	for _, s := range b.seen {
		if s == k {
			return true
		}
	}
	return false
}

// Err returns the first violation recorded on the builder, if any.
func (b *Builder) Err() error {
	return b.err
}

// String renders the accumulated fragments in canonical kind order with no
// separators, e.g. "table#data.wide[border]:hover::first-line". Fragments
// added after a violation are not included.
func (b *Builder) String() string {
	var sb strings.Builder
	sb.WriteString(b.element)
	sb.WriteString(b.id)
	for _, c := range b.classes {
		sb.WriteString(c)
	}
	for _, a := range b.attrs {
		sb.WriteString(a)
	}
	for _, p := range b.pseudoClasses {
		sb.WriteString(p)
	}
	sb.WriteString(b.pseudoElement)
	return sb.String()
}

// Result returns the rendered selector or the first recorded violation.
func (b *Builder) Result() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return b.String(), nil
}
