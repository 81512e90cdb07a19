package compose

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"cssb/config"
	"cssb/state"
)

// buildOutputPath returns constructed output file path/name for selectors
// built from the recipe file src. It uses either default naming scheme
// derived from the recipe file name or user-defined template, cleans the
// result up and transliterates it if requested.
func buildOutputPath(src, dst string, names []string, env *state.LocalEnv) string {
	defaultFile := buildDefaultFileName(src, env)

	if env.Cfg.Build.OutputNameTemplate == "" {
		return filepath.Join(dst, defaultFile)
	}

	expandedName := expandOutputNameTemplate(src, names, env)
	if expandedName == "" {
		// fallback to default name if template expansion failed
		return filepath.Join(dst, defaultFile)
	}
	return filepath.Join(dst, config.CleanFileName(expandedName)+env.Format.Ext())
}

func buildDefaultFileName(src string, env *state.LocalEnv) string {
	baseName := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	if env.Cfg.Build.SanitizeNames {
		baseName = slug.Make(baseName)
	}
	return config.CleanFileName(baseName) + env.Format.Ext()
}

func expandOutputNameTemplate(src string, names []string, env *state.LocalEnv) string {
	values := Values{
		Context:    config.OutputNameTemplateFieldName,
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Format:     env.Format.String(),
		Date:       time.Now().Format("2006-01-02"),
		Count:      len(names),
		Names:      names,
	}

	expanded, err := expandTemplate(config.OutputNameTemplateFieldName, env.Cfg.Build.OutputNameTemplate, values)
	if err != nil {
		env.Log.Warn("Unable to expand output name template", zap.Error(err))
		return ""
	}
	return strings.TrimSpace(expanded)
}
