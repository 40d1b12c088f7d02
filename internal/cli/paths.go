package cli

import (
	"os"
	"path/filepath"

	"github.com/iscc/isccsum/ignore"
	"github.com/iscc/isccsum/treewalk"
)

// item is one logical object to run an ISCC-SUM processor over: either a
// single file, a stream (stdin), or — in tree mode — the ordered contents of
// a whole directory treated as one object.
type item struct {
	display string   // path as rendered in output, "-" for stdin
	isTree  bool     // path gets a trailing "/" and is one processor run
	files   []string // absolute file paths to feed, in order
	stdin   bool
}

// expand turns the command line's PATH arguments into an ordered list of
// items. With no arguments, the sole item reads from standard input.
func expand(paths []string, tree bool) ([]item, error) {
	if len(paths) == 0 {
		return []item{{display: "-", stdin: true}}, nil
	}

	if tree {
		return expandTree(paths[0])
	}

	var items []item
	for _, p := range paths {
		info, err := os.Lstat(p)
		if err != nil {
			// keep the argument as an item so its open failure is reported
			// per item and the remaining arguments are still processed
			items = append(items, item{display: p, files: []string{p}})
			continue
		}
		switch {
		case info.Mode()&os.ModeSymlink != 0:
			return nil, ioError("%s: symbolic links are not supported as direct arguments", p)
		case info.Mode().IsRegular():
			items = append(items, item{display: p, files: []string{p}})
		case info.IsDir():
			sub, err := expandDir(p)
			if err != nil {
				return nil, err
			}
			items = append(items, sub...)
		default:
			return nil, ioError("%s: not a regular file or directory", p)
		}
	}
	return items, nil
}

// expandDir yields one item per file found under root in treewalk order,
// applying the ".isccignore" filter.
func expandDir(root string) ([]item, error) {
	var items []item
	filter := ignore.NewISCCFilter(root)
	err := treewalk.Walk(root, filter, func(path string, isDir bool) error {
		if isDir {
			return nil
		}
		items = append(items, item{display: path, files: []string{path}})
		return nil
	})
	if err != nil {
		return nil, ioError("%s: %v", root, err)
	}
	return items, nil
}

// expandTree collects a single directory's files into one tree-mode item,
// whose display path always carries a trailing "/".
func expandTree(root string) ([]item, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, ioError("%s: %v", root, err)
	}
	if !info.IsDir() {
		return nil, usageError("--tree requires a directory argument")
	}

	var files []string
	filter := ignore.NewISCCFilter(root)
	err = treewalk.Walk(root, filter, func(path string, isDir bool) error {
		if !isDir {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, ioError("%s: %v", root, err)
	}

	display := root
	if filepath.Base(display) != "/" {
		display += "/"
	}
	return []item{{display: display, isTree: true, files: files}}, nil
}
