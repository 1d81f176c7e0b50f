package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/dlacgo/internal/config"
	"github.com/vk/dlacgo/internal/ctxlog"
	"github.com/vk/dlacgo/internal/fsutil"
	"github.com/vk/dlacgo/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads every .hcl file reachable from the given paths, decodes them,
// and merges them into a single config.Model. Exactly one model block and
// one target block must be present across all files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := l.collectFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loader: collected description files.", "count", len(files))

	model := &config.Model{}
	for _, path := range files {
		f, diags := l.parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("parsing %s: %w", path, diags)
		}

		var decoded schema.File
		if diags := gohcl.DecodeBody(f.Body, nil, &decoded); diags.HasErrors() {
			return nil, fmt.Errorf("decoding %s: %w", path, diags)
		}

		if decoded.Model != nil {
			if model.Arch != nil {
				return nil, fmt.Errorf("%s: duplicate model block (already defined as %q)",
					path, model.Arch.Name)
			}
			model.Arch = translateModel(decoded.Model)
			logger.Debug("Loader: model block decoded.",
				"path", path, "model", model.Arch.Name, "nodes", len(model.Arch.Nodes))
		}
		if decoded.Target != nil {
			if model.Target != nil {
				return nil, fmt.Errorf("%s: duplicate target block (already defined as %q)",
					path, model.Target.Name)
			}
			model.Target = translateTarget(decoded.Target)
			logger.Debug("Loader: target block decoded.",
				"path", path, "target", model.Target.Name)
		}
	}

	if model.Arch == nil {
		return nil, fmt.Errorf("no model block found in %v", paths)
	}
	return model, nil
}

// collectFiles expands directory paths into the .hcl files they contain.
func (l *Loader) collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("description path: %w", err)
		}
		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
			continue
		}
		files = append(files, path)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found in %v", paths)
	}
	return files, nil
}
