// Package module implements the concurrent module-loading pipeline: a
// per-file loader, a single dependency coordinator, a definition processor,
// and a solver driver, built on top of the external parser/canonicalizer/
// constraint-builder/solver collaborators declared in collaborators.go.
package module

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultExtension is the language's standard source file extension.
const DefaultExtension = ".bl"

// Config holds the ambient, file-driven settings for a loader run: the
// source extension, an optional standard-library directory, and extra
// search paths consulted when a module is not found under SrcDir. It is
// the loader's only configuration surface and is normally read from a
// project's "basil.yaml" via LoadConfig.
type Config struct {
	Extension   string   `yaml:"extension"`
	StdlibDir   string   `yaml:"stdlib_dir"`
	SearchPaths []string `yaml:"search_paths"`
}

// LoadConfig reads a YAML configuration file. A missing file is not an
// error: it yields the zero Config, which Resolver fills in with defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("module: reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("module: parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolver turns a dot-separated module name into a source file path. Per
// the file-layout contract, a module named "Foo.Bar.Baz" lives at
// "<src_dir>/Foo/Bar/Baz.<ext>".
type Resolver struct {
	srcDir      string
	ext         string
	stdlibDir   string
	searchPaths []string
}

// NewResolver builds a Resolver rooted at srcDir, applying cfg's extension,
// stdlib directory and search paths (or their defaults when cfg is nil or
// its fields are empty).
func NewResolver(srcDir string, cfg *Config) *Resolver {
	if cfg == nil {
		cfg = &Config{}
	}
	ext := cfg.Extension
	if ext == "" {
		ext = DefaultExtension
	}
	return &Resolver{
		srcDir:      srcDir,
		ext:         ext,
		stdlibDir:   cfg.StdlibDir,
		searchPaths: cfg.SearchPaths,
	}
}

// Filename resolves a dot-separated module name to the path of its source
// file under srcDir, without checking for the file's existence.
func (r *Resolver) Filename(moduleName string) string {
	rel := strings.ReplaceAll(moduleName, ".", string(filepath.Separator))
	return filepath.Join(r.srcDir, rel+r.ext)
}

// Resolve locates the source file for moduleName, trying srcDir first,
// then the configured stdlib directory, then each extra search path in
// order. It returns the first path that exists on disk, or the srcDir
// candidate (so callers get a sensible path to report an I/O error
// against) if none exist.
func (r *Resolver) Resolve(moduleName string) string {
	primary := r.Filename(moduleName)
	if _, err := os.Stat(primary); err == nil {
		return primary
	}
	rel := strings.ReplaceAll(moduleName, ".", string(filepath.Separator)) + r.ext
	candidates := make([]string, 0, 1+len(r.searchPaths))
	if r.stdlibDir != "" {
		candidates = append(candidates, filepath.Join(r.stdlibDir, rel))
	}
	for _, sp := range r.searchPaths {
		candidates = append(candidates, filepath.Join(sp, rel))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return primary
}
