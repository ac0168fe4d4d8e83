package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const prsExt = ".prs"

// collectFiles resolves path to the regular files it covers: the path
// itself, or every file under it when it is a directory. The second return
// reports whether path was a directory.
func collectFiles(path string) ([]string, bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, false, err
	}

	if !fi.IsDir() {
		return []string{path}, false, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if d.Type().IsRegular() {
			files = append(files, p)
		}

		return nil
	})
	if err != nil {
		return nil, true, err
	}

	return files, true, nil
}

// hasPrsExt reports whether path ends in .prs, case-insensitively.
func hasPrsExt(path string) bool {
	return strings.EqualFold(filepath.Ext(path), prsExt)
}

// stripPrsExt removes the trailing .prs extension.
func stripPrsExt(path string) string {
	return path[:len(path)-len(prsExt)]
}
