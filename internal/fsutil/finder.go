// Package fsutil provides file system helpers for locating definition files.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FindHCLFiles walks the given paths and returns every .hcl file found, in
// walk order with duplicates removed. A path may name a single file or a
// directory. Paths that do not exist are skipped rather than reported, so
// optional search locations can be passed unconditionally.
func FindHCLFiles(paths ...string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})

	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}

		if !info.IsDir() {
			if filepath.Ext(path) == ".hcl" {
				add(path)
			}
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(p) == ".hcl" {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}
