// Package compose implements the build subcommand - it turns recipe files
// into rendered CSS selector text.
package compose

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssb/config"
	"cssb/recipe"
	"cssb/state"
	"cssb/utils/jsonobj"
)

// result is one built selector ready for output.
type result struct {
	name string
	text string
}

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no recipe source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	// empty destination means STDOUT
	dst := cmd.Args().Get(1)
	if len(dst) > 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	requested := cmd.String("format")
	if len(requested) == 0 {
		requested = env.Cfg.Build.Format
	}
	format, err := config.ParseOutputFmt(requested)
	if err != nil {
		log.Warn("Unknown output format requested, switching to list", zap.Error(err))
		format = config.OutputFmtList
	}
	env.Format = format
	env.Overwrite = cmd.Bool("overwrite")

	sanitize := env.Cfg.Build.SanitizeNames
	if cmd.IsSet("sanitize") {
		sanitize = cmd.Bool("sanitize")
	}

	files, err := collectRecipes(src)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no recipe files found under '%s'", src)
	}
	log.Debug("Processing recipes", zap.Int("files", len(files)), zap.String("format", format.String()))

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := processRecipe(path, dst, sanitize, env, log); err != nil {
			return err
		}
	}
	return nil
}

// collectRecipes returns recipe file(s) for the source path - either the
// file itself or all YAML files under the directory, in natural name order.
func collectRecipes(src string) ([]string, error) {
	info, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("unable to access recipe source: %w", err)
	}
	if info.Mode().IsRegular() {
		return []string{src}, nil
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("recipe source '%s' is neither file nor directory", src)
	}

	var files []string
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to scan recipe source: %w", err)
	}
	sort.Sort(natural.StringSlice(files))
	return files, nil
}

func processRecipe(path, dst string, sanitize bool, env *state.LocalEnv, log *zap.Logger) error {
	f, err := recipe.Load(path)
	if err != nil {
		return err
	}
	env.Rpt.Store("recipes/"+filepath.Base(path), path)

	var trees strings.Builder
	results := make([]result, 0, len(f.Selectors))
	for i := range f.Selectors {
		def := &f.Selectors[i]
		sel, err := def.Build()
		if err != nil {
			log.Warn("Skipping selector definition", zap.String("recipe", path), zap.Error(err))
			continue
		}
		text, err := sel.Result()
		if err != nil {
			log.Warn("Skipping selector definition", zap.String("recipe", path), zap.Error(err))
			continue
		}
		name := def.EffectiveName(sanitize)
		if env.Rpt != nil {
			trees.WriteString(dumpSelector(name, sel))
		}
		results = append(results, result{name: name, text: text})
	}
	if env.Rpt != nil && trees.Len() > 0 {
		env.Rpt.StoreData("trees/"+filepath.Base(path)+".txt", []byte(trees.String()))
	}
	if len(results) == 0 {
		return fmt.Errorf("no selectors could be built from '%s'", path)
	}
	if len(results) < len(f.Selectors) {
		log.Info("Some selector definitions were skipped",
			zap.String("recipe", path), zap.Int("built", len(results)), zap.Int("total", len(f.Selectors)))
	}

	sort.Slice(results, func(i, j int) bool {
		return natural.Less(results[i].name, results[j].name)
	})

	data, err := render(results, env.Format)
	if err != nil {
		return err
	}

	if len(dst) == 0 {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("unable to write selectors: %w", err)
		}
		env.Rpt.StoreData("output/"+filepath.Base(path)+".out", data)
		return nil
	}

	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.name)
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("unable to create destination directory: %w", err)
	}
	outPath := buildOutputPath(path, dst, names, env)
	if _, err := os.Stat(outPath); err == nil && !env.Overwrite {
		return fmt.Errorf("destination file '%s' already exists, use overwrite to continue", outPath)
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("unable to write selectors to '%s': %w", outPath, err)
	}
	env.Rpt.StoreData("output/"+filepath.Base(outPath), data)
	log.Info("Selectors written", zap.String("recipe", path), zap.String("output", outPath), zap.Int("count", len(results)))
	return nil
}

// render produces output bytes for built selectors in requested format.
func render(results []result, format config.OutputFmt) ([]byte, error) {
	var sb strings.Builder
	switch format {
	case config.OutputFmtJSON:
		// NOTE: JSON object members are serialized in key order, not in
		// recipe order
		m := make(map[string]string, len(results))
		for _, r := range results {
			m[r.name] = r.text
		}
		text, err := jsonobj.Marshal(m)
		if err != nil {
			return nil, err
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
	case config.OutputFmtPlain:
		for _, r := range results {
			sb.WriteString(r.text)
			sb.WriteByte('\n')
		}
	default:
		for _, r := range results {
			sb.WriteString(r.name)
			sb.WriteString(": ")
			sb.WriteString(r.text)
			sb.WriteByte('\n')
		}
	}
	return []byte(sb.String()), nil
}
