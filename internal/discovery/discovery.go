// Package discovery lists the input documents of a corpus tree.
package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrDiscovery wraps every failure to list the input tree
var ErrDiscovery = errors.New("discovery failed")

// FindFiles returns every non-directory path under dir.
//
// Entries are sorted by name at each level and directories are expanded as
// soon as they are reached, so a/x sorts before b even when b is a file.
func FindFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDiscovery, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDiscovery, dir)
	}

	var files []string
	stack := []string{dir}
	root := true

	for len(stack) > 0 {
		path := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		isDir := root
		if !root {
			// Stat follows symlinks so linked directories are walked too
			st, err := os.Stat(path)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrDiscovery, err)
			}
			isDir = st.IsDir()
		}
		root = false

		if !isDir {
			files = append(files, path)
			continue
		}

		names, err := sortedNames(path)
		if err != nil {
			return nil, err
		}
		// Push in reverse so the smallest name is popped first
		for i := len(names) - 1; i >= 0; i-- {
			stack = append(stack, filepath.Join(path, names[i]))
		}
	}

	return files, nil
}

func sortedNames(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDiscovery, err)
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrDiscovery, dir, err)
	}
	sort.Strings(names)
	return names, nil
}
