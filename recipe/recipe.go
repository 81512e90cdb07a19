// Package recipe loads declarative selector descriptions from YAML and turns
// them into selector expressions.
package recipe

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	yaml "gopkg.in/yaml.v3"

	"cssb/selector"
)

type (
	// Combinator describes a binary combination of two selector definitions.
	Combinator struct {
		Left  Definition `yaml:"left"`
		Op    string     `yaml:"op"`
		Right Definition `yaml:"right"`
	}

	// Definition describes one selector to build - either a compound
	// selector (fragment fields) or a combination of two other definitions.
	// The two shapes are mutually exclusive.
	Definition struct {
		Name          string      `yaml:"name,omitempty"`
		Element       string      `yaml:"element,omitempty"`
		ID            string      `yaml:"id,omitempty"`
		Classes       []string    `yaml:"classes,omitempty"`
		Attrs         []string    `yaml:"attrs,omitempty"`
		PseudoClasses []string    `yaml:"pseudo-classes,omitempty"`
		PseudoElement string      `yaml:"pseudo-element,omitempty"`
		Combine       *Combinator `yaml:"combine,omitempty"`
	}

	// File is a single recipe file.
	File struct {
		Version   int          `yaml:"version"`
		Selectors []Definition `yaml:"selectors"`
	}
)

// combinator tokens accepted in recipes, keyed by their CSS text
var knownOps = map[string]struct{}{
	selector.Descendant:   {},
	selector.Child:        {},
	selector.NextSibling:  {},
	selector.LaterSibling: {},
	selector.Column:       {},
}

// Load reads and decodes a recipe file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read recipe file: %w", err)
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to process recipe file '%s': %w", path, err)
	}
	return f, nil
}

// Decode reads a recipe from r. Unknown fields are rejected.
func Decode(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode recipe data: %w", err)
	}
	if f.Version != 1 {
		return nil, fmt.Errorf("unsupported recipe version %d", f.Version)
	}
	if len(f.Selectors) == 0 {
		return nil, fmt.Errorf("recipe has no selectors")
	}
	return &f, nil
}

// fragments reports whether any compound selector fields are set.
func (d *Definition) fragments() bool {
	return len(d.Element) > 0 || len(d.ID) > 0 || len(d.Classes) > 0 ||
		len(d.Attrs) > 0 || len(d.PseudoClasses) > 0 || len(d.PseudoElement) > 0
}

// EffectiveName returns the definition name to use on output. Missing names
// get a generated unique one, sanitizing passes the name through slug
// cleanup/transliteration.
func (d *Definition) EffectiveName(sanitize bool) string {
	name := d.Name
	if len(name) == 0 {
		name = "sel-" + uuid.New().String()
	}
	if sanitize {
		name = slug.Make(name)
	}
	return name
}

// Build turns the definition into a selector expression. Fragments are
// applied in canonical kind order, so a well-formed recipe cannot trip
// ordering validation - builder errors still surface for safety.
func (d *Definition) Build() (selector.Selector, error) {
	if d.Combine != nil {
		if d.fragments() {
			return nil, fmt.Errorf("definition '%s' mixes fragments with combine", d.Name)
		}
		if _, ok := knownOps[d.Combine.Op]; !ok {
			return nil, fmt.Errorf("definition '%s' uses unknown combinator %q", d.Name, d.Combine.Op)
		}
		left, err := d.Combine.Left.Build()
		if err != nil {
			return nil, err
		}
		right, err := d.Combine.Right.Build()
		if err != nil {
			return nil, err
		}
		return selector.Combine(left, d.Combine.Op, right), nil
	}

	if !d.fragments() {
		return nil, fmt.Errorf("definition '%s' describes no selector", d.Name)
	}

	b := new(selector.Builder)
	if len(d.Element) > 0 {
		b.Element(d.Element)
	}
	if len(d.ID) > 0 {
		b.ID(d.ID)
	}
	for _, c := range d.Classes {
		b.Class(c)
	}
	for _, a := range d.Attrs {
		b.Attr(a)
	}
	for _, p := range d.PseudoClasses {
		b.PseudoClass(p)
	}
	if len(d.PseudoElement) > 0 {
		b.PseudoElement(d.PseudoElement)
	}
	if err := b.Err(); err != nil {
		return nil, fmt.Errorf("definition '%s': %w", d.Name, err)
	}
	return b, nil
}
