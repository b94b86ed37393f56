package module

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolverFilename(t *testing.T) {
	r := NewResolver("/src", nil)

	tests := []struct {
		name string
		want string
	}{
		{"Foo", filepath.Join("/src", "Foo"+DefaultExtension)},
		{"Foo.Bar.Baz", filepath.Join("/src", "Foo", "Bar", "Baz"+DefaultExtension)},
	}
	for _, tt := range tests {
		if got := r.Filename(tt.name); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestResolverCustomExtension(t *testing.T) {
	r := NewResolver("/src", &Config{Extension: ".lang"})
	want := filepath.Join("/src", "A", "B.lang")
	if got := r.Filename("A.B"); got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}
}

func TestResolverFallsBackToStdlib(t *testing.T) {
	dir := t.TempDir()
	srcDir := filepath.Join(dir, "src")
	stdlibDir := filepath.Join(dir, "stdlib")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(stdlibDir, 0o755); err != nil {
		t.Fatal(err)
	}
	stdlibFile := filepath.Join(stdlibDir, "List.bl")
	if err := os.WriteFile(stdlibFile, []byte("app exposes [] imports []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(srcDir, &Config{StdlibDir: stdlibDir})
	got := r.Resolve("List")
	if got != stdlibFile {
		t.Errorf("Resolve(List) = %q, want %q", got, stdlibFile)
	}
}

func TestResolverPrefersSrcDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "Main.bl")
	if err := os.WriteFile(file, []byte("app exposes [] imports []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(dir, nil)
	if got := r.Resolve("Main"); got != file {
		t.Errorf("Resolve(Main) = %q, want %q", got, file)
	}
}

func TestLoadConfigMissingFileIsZeroValue(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error for missing file: %v", err)
	}
	if cfg.Extension != "" {
		t.Errorf("expected zero-value Config, got %+v", cfg)
	}
}

func TestLoadConfigParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "basil.yaml")
	contents := "extension: \".bl\"\nstdlib_dir: \"/opt/basil/stdlib\"\nsearch_paths:\n  - \"/opt/basil/extra\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Extension != ".bl" || cfg.StdlibDir != "/opt/basil/stdlib" || len(cfg.SearchPaths) != 1 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}
