package tools

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Directories never descended into when resolving source files.
var excludeDirs = map[string]bool{
	".git":          true,
	".mypy_cache":   true,
	".pytest_cache": true,
	".tox":          true,
	".venv":         true,
	"__pycache__":   true,
	"build":         true,
	"dist":          true,
	"venv":          true,
}

// pythonFiles resolves source paths to concrete .py files: file entries
// are kept when they exist, directory entries are walked. The result is
// sorted and deduplicated; entries that do not exist are skipped.
func pythonFiles(srcPaths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, p := range srcPaths {
		info, err := os.Stat(p)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if strings.HasSuffix(p, ".py") {
				add(p)
			}
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if excludeDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(path, ".py") {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
