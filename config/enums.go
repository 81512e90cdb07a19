package config

import (
	"fmt"
	"strings"
)

// OutputFmt specifies requested rendering of built selectors.
type OutputFmt int

const (
	OutputFmtList  OutputFmt = iota // "name: selector" lines
	OutputFmtPlain                  // bare selector per line
	OutputFmtJSON                   // JSON object, name to selector
)

var outputFmtNames = []string{"list", "plain", "json"}

// String returns the configuration name of the format.
func (o OutputFmt) String() string {
	if o < 0 || int(o) >= len(outputFmtNames) {
		return fmt.Sprintf("OutputFmt(%d)", int(o))
	}
	return outputFmtNames[o]
}

// Ext returns file extension used for this format by default naming.
func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtJSON:
		return ".json"
	case OutputFmtPlain:
		return ".css"
	default:
		return ".txt"
	}
}

// ParseOutputFmt converts configuration name to the format value.
func ParseOutputFmt(name string) (OutputFmt, error) {
	for i, n := range outputFmtNames {
		if strings.EqualFold(name, n) {
			return OutputFmt(i), nil
		}
	}
	return OutputFmtList, fmt.Errorf("unknown output format '%s'", name)
}

// OutputFmtNames lists supported format names for usage strings.
func OutputFmtNames() []string {
	return append([]string{}, outputFmtNames...)
}
