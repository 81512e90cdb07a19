package compose

import (
	"testing"

	"cssb/selector"
)

func TestDumpSelector(t *testing.T) {
	sel := selector.Combine(
		selector.Element("div").ID("main"),
		selector.Child,
		selector.Combine(selector.Element("ul"), selector.Descendant, selector.Element("li")),
	)

	want := "pick\n" +
		"  combine: \">\"\n" +
		"    compound: \"div#main\"\n" +
		"    combine: \" \"\n" +
		"      compound: \"ul\"\n" +
		"      compound: \"li\"\n"
	if got := dumpSelector("pick", sel); got != want {
		t.Errorf("dumpSelector() =\n%q\nwant\n%q", got, want)
	}
}

func TestDumpSelector_Compound(t *testing.T) {
	want := "main\n  compound: \"#main.container\"\n"
	if got := dumpSelector("main", selector.ID("main").Class("container")); got != want {
		t.Errorf("dumpSelector() = %q, want %q", got, want)
	}
}
