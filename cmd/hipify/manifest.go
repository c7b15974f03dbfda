package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// manifest is an optional hipify.toml next to (or above) the
// conversion target supplying per-project defaults.
type manifest struct {
	Path   string
	Root   string
	Config manifestConfig
}

type manifestConfig struct {
	Project projectSection `toml:"project"`
	Convert convertSection `toml:"convert"`
}

type projectSection struct {
	Name string `toml:"name"`
}

type convertSection struct {
	Out      string `toml:"out"`
	Roc      bool   `toml:"roc"`
	ExtTypes bool   `toml:"ext_types"`
	Jobs     int    `toml:"jobs"`
}

// outDir resolves the manifest's output directory relative to the
// manifest location.
func (m *manifest) outDir() string {
	out := strings.TrimSpace(m.Config.Convert.Out)
	if out == "" {
		return ""
	}
	if filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(m.Root, filepath.FromSlash(out))
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "hipify.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadManifest searches upward from the conversion target. A missing
// manifest is not an error; a malformed one is.
func loadManifest(target string) (*manifest, bool, error) {
	startDir := target
	if info, err := os.Stat(target); err != nil || !info.IsDir() {
		startDir = filepath.Dir(target)
	}
	path, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg manifestConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("project") && strings.TrimSpace(cfg.Project.Name) == "" {
		return nil, true, fmt.Errorf("%s: missing [project].name", path)
	}
	return &manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}
