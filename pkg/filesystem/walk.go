package filesystem

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/brandforge/brandforge/pkg/types"
)

// WalkFiles visits every regular file under root, depth first, calling fn
// with the file's full path. Directory entries are visited in name order so
// the sequence is deterministic. An error from fn stops the walk.
func WalkFiles(fsys types.FS, root string, fn func(path string) error) error {
	entries, err := fsys.ReadDir(root)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		if entry.IsDir() {
			if err := WalkFiles(fsys, path, fn); err != nil {
				return err
			}
			continue
		}
		if err := fn(path); err != nil {
			return err
		}
	}
	return nil
}

// ListDirs returns the names of the immediate subdirectories of root,
// sorted. Non-directory entries are ignored.
func ListDirs(fsys types.FS, root string) ([]string, error) {
	entries, err := fsys.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// EnsureEmpty recreates path as an empty directory, deleting any previous
// contents. Used by the apply orchestrator for the output tree lifecycle.
func EnsureEmpty(fsys types.FS, path string) error {
	if err := fsys.RemoveAll(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return fsys.MkdirAll(path, 0755)
}

// CopyFile byte-copies src to dst, creating dst's parent directories.
func CopyFile(fsys types.FS, src, dst string) error {
	data, err := fsys.ReadFile(src)
	if err != nil {
		return err
	}
	if err := fsys.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	return fsys.WriteFile(dst, data, 0644)
}

// Exists reports whether path exists on fsys.
func Exists(fsys types.FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}
