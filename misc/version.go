// Package misc provides build time program information.
package misc

import (
	"runtime/debug"
	"sync"
)

// may be overwritten at build time with -ldflags
var (
	appName = "cssb"
	version = ""
)

var buildInfo = sync.OnceValue(func() *debug.BuildInfo {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	return bi
})

// GetAppName returns short program name used in logs and generated file names.
func GetAppName() string {
	return appName
}

// GetVersion returns program version - either set at build time or taken
// from the module build info.
func GetVersion() string {
	if len(version) > 0 {
		return version
	}
	if bi := buildInfo(); bi != nil && len(bi.Main.Version) > 0 {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns shortened revision of the source tree the program was
// built from, if recorded.
func GetGitHash() string {
	bi := buildInfo()
	if bi == nil {
		return "unknown"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return "unknown"
}
