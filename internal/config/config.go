// Package config locates and parses the multilint configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gkze/multilint/internal/tool"
)

// FileName is the well-known configuration filename searched for.
const FileName = ".multilint.yaml"

// ErrNotFound reports that no configuration file exists anywhere between
// the start directory and the filesystem root. Callers decide whether an
// absent config is fatal.
var ErrNotFound = errors.New(FileName + " not found")

// Find searches dir, then each of its ancestors up to and including the
// filesystem root, for the configuration file. It returns the path of
// the first match, or ErrNotFound.
func Find(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	for {
		path := filepath.Join(abs, FileName)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", ErrNotFound
		}
		abs = parent
	}
}

// File is a parsed configuration document. Tool sections live under the
// top-level "tool" key, one subsection per tool name.
type File struct {
	path  string
	tools map[string]map[string]any
}

// Load finds and parses the configuration file starting from dir.
// An absent file is ErrNotFound; an existing but malformed file is a
// hard error.
func Load(dir string) (*File, error) {
	path, err := Find(dir)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc struct {
		Tools map[string]map[string]any `yaml:"tool"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &File{path: path, tools: doc.Tools}, nil
}

// Path returns the location of the parsed file.
func (f *File) Path() string { return f.path }

// Tool returns the named tool's section, or an empty config when the
// section is absent. It never fails.
func (f *File) Tool(t tool.Tool) tool.Config {
	if f == nil || f.tools == nil {
		return tool.Config{}
	}
	section, ok := f.tools[string(t)]
	if !ok {
		return tool.Config{}
	}
	return tool.Config(section)
}
