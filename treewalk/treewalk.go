// Package treewalk implements the deterministic directory traversal this
// system uses for tree mode and batch generation: a pure function of
// directory contents, independent of the underlying filesystem's listing
// order or the platform it runs on.
//
// Its shape follows this codebase's older storage-driver walker — list one
// directory, sort the children, recurse — generalized with the ignore-style
// and NFC ordering rules the specification requires.
package treewalk

import (
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Entry describes one directory child after filtering. Symbolic links and
// other non-regular entries never produce an Entry; it is built transiently
// per listing and never persisted.
type Entry struct {
	Name   string
	IsFile bool
	IsDir  bool
}

// Listdir reads one directory's immediate children, in the deterministic
// sort order this package uses everywhere: by NFC-normalized name first,
// falling back to the original byte representation to break ties between
// distinct names that normalize to the same string.
func Listdir(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		info, err := de.Info()
		if err != nil {
			continue
		}
		mode := info.Mode()
		switch {
		case mode&os.ModeSymlink != 0:
			continue
		case mode.IsRegular():
			entries = append(entries, Entry{Name: de.Name(), IsFile: true})
		case mode.IsDir():
			entries = append(entries, Entry{Name: de.Name(), IsDir: true})
		default:
			continue // devices, sockets, pipes and the like are never yielded
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		ni, nj := norm.NFC.String(entries[i].Name), norm.NFC.String(entries[j].Name)
		if ni != nj {
			return ni < nj
		}
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// IsIgnoreFile reports whether name matches the ".*ignore" pattern that
// ignore-style files (".isccignore", ".gitignore", ...) are given priority
// ordering for within a directory's file listing.
func IsIgnoreFile(name string) bool {
	matched, _ := filepath.Match(".*ignore", name)
	return matched
}

// Filter decides whether a path reached during a Walk should be yielded (and,
// for directories, whether the walk should recurse into it). Implementations
// such as the ignore-cascade engine use it to apply exclude/whitelist rules.
type Filter interface {
	// Allow reports whether path (a file or directory) should be yielded.
	Allow(path string, isDir bool) bool
	// Descend reports whether a directory, even one Allow rejected, still
	// needs to be visited because it contains whitelisted descendants.
	Descend(path string) bool
	// Enter is called before listing a child directory and returns the
	// Filter to use inside it (ignore rules cascade additively).
	Enter(path string) Filter
}

// passFilter allows everything and descends everywhere; it is the default
// when the caller has no ignore rules to apply.
type passFilter struct{}

func (passFilter) Allow(string, bool) bool { return true }
func (passFilter) Descend(string) bool     { return true }
func (passFilter) Enter(string) Filter     { return passFilter{} }

// Walk yields absolute paths under root in deterministic order: within each
// directory, ignore-style files first, then other regular files, then a
// recursive visit to each subdirectory, all sorted per Listdir. Symbolic
// links are never followed or yielded. If filter is nil, every entry is
// yielded and every directory is descended.
func Walk(root string, filter Filter, yield func(path string, isDir bool) error) error {
	if filter == nil {
		filter = passFilter{}
	}
	return walk(root, filter, yield)
}

func walk(dir string, filter Filter, yield func(path string, isDir bool) error) error {
	entries, err := Listdir(dir)
	if err != nil {
		return err
	}

	var ignoreFiles, otherFiles, dirs []Entry
	for _, e := range entries {
		switch {
		case e.IsFile && IsIgnoreFile(e.Name):
			ignoreFiles = append(ignoreFiles, e)
		case e.IsFile:
			otherFiles = append(otherFiles, e)
		case e.IsDir:
			dirs = append(dirs, e)
		}
	}

	for _, group := range [][]Entry{ignoreFiles, otherFiles} {
		for _, e := range group {
			p := filepath.Join(dir, e.Name)
			if !filter.Allow(p, false) {
				continue
			}
			if err := yield(p, false); err != nil {
				return err
			}
		}
	}

	for _, e := range dirs {
		p := filepath.Join(dir, e.Name)
		allowed := filter.Allow(p, true)
		if !allowed && !filter.Descend(p) {
			continue
		}
		if allowed {
			if err := yield(p, true); err != nil {
				return err
			}
		}
		if err := walk(p, filter.Enter(p), yield); err != nil {
			return err
		}
	}

	return nil
}
