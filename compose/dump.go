package compose

import (
	"cssb/selector"
	"cssb/utils/debug"
)

// dumpSelector renders the structure of a selector expression as an indented
// tree - goes into the debug report to make recipe troubleshooting easier.
func dumpSelector(name string, sel selector.Selector) string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "%s", name)
	dumpNode(tw, 1, sel)
	return tw.String()
}

func dumpNode(tw *debug.TreeWriter, depth int, sel selector.Selector) {
	switch s := sel.(type) {
	case *selector.Combined:
		tw.TextBlock(depth, "combine", s.Op())
		dumpNode(tw, depth+1, s.Left())
		dumpNode(tw, depth+1, s.Right())
	default:
		tw.TextBlock(depth, "compound", sel.String())
	}
}
