// Package ignore implements the gitignore-style pattern engine used to prune
// treewalk traversals: per-directory ignore files whose rules cascade
// additively into subdirectories, with whitelist overrides and a
// has-whitelisted-descendant check so an excluded directory is still entered
// when something beneath it was whitelisted back in.
//
// Matching is built on a globbing primitive (gobwas/glob) with whitelist
// precedence layered on top, per the pattern the rest of this codebase's
// object-path matching already follows.
package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/iscc/isccsum/treewalk"
)

// rule is one parsed ignore-file line, anchored to the directory it was
// declared in.
type rule struct {
	declDir   string
	g         glob.Glob
	anchored  bool
	dirOnly   bool
	whitelist bool
}

// Engine is a treewalk.Filter applying an accumulated, cascading set of
// ignore rules. New instances are produced by Enter as the walk descends;
// the zero value has no rules and allows everything.
type Engine struct {
	fileName string
	rules    []rule
}

// New returns a root Engine that reads ignoreFileName (e.g. ".isccignore")
// at every directory it enters. root's own ignore file, if present, is
// loaded immediately.
func New(ignoreFileName, root string) *Engine {
	e := &Engine{fileName: ignoreFileName}
	return e.withRulesFrom(root)
}

func (e *Engine) withRulesFrom(dir string) *Engine {
	next := &Engine{fileName: e.fileName, rules: append([]rule{}, e.rules...)}
	path := filepath.Join(dir, e.fileName)
	f, err := os.Open(path)
	if err != nil {
		return next
	}
	defer f.Close()

	next.rules = append(next.rules, parseFile(f, dir)...)
	return next
}

// parseFile parses gitignore-style lines from r, anchoring every resulting
// rule to declDir.
func parseFile(r *os.File, declDir string) []rule {
	var rules []rule
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if ru, ok := parseLine(sc.Text(), declDir); ok {
			rules = append(rules, ru)
		}
	}
	return rules
}

func parseLine(line, declDir string) (rule, bool) {
	// Trailing spaces are trimmed unless escaped with a backslash.
	trimmed := strings.TrimRight(line, " ")
	if strings.HasSuffix(line, "\\ ") && !strings.HasSuffix(line, "\\\\ ") {
		trimmed += " "
	}
	line = trimmed

	if line == "" || strings.HasPrefix(line, "#") {
		return rule{}, false
	}

	whitelist := false
	if strings.HasPrefix(line, "!") {
		whitelist = true
		line = line[1:]
	}
	line = strings.TrimPrefix(line, "\\")

	dirOnly := false
	if strings.HasSuffix(line, "/") && len(line) > 1 {
		dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}

	anchored := strings.Contains(line, "/")
	pattern := strings.TrimPrefix(line, "/")

	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return rule{}, false
	}

	return rule{
		declDir:   declDir,
		g:         g,
		anchored:  anchored,
		dirOnly:   dirOnly,
		whitelist: whitelist,
	}, true
}

// matches reports whether rule r matches path (a file or directory at the
// given absolute path).
func (r rule) matches(path string, isDir bool) bool {
	if r.dirOnly && !isDir {
		return false
	}
	rel, err := filepath.Rel(r.declDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	rel = filepath.ToSlash(rel)

	if r.anchored {
		return r.g.Match(rel)
	}
	return r.g.Match(filepath.Base(rel))
}

// Allow reports whether path should be yielded: the last matching rule in
// the accumulated set wins, so a path is "not ignored" when that last match
// is a whitelist rule or when no rule matches at all.
func (e *Engine) Allow(path string, isDir bool) bool {
	ignored := false
	for _, r := range e.rules {
		if r.matches(path, isDir) {
			ignored = !r.whitelist
		}
	}
	return !ignored
}

// Descend reports whether a directory excluded by Allow still needs to be
// visited because something beneath it is whitelisted.
func (e *Engine) Descend(path string) bool {
	return e.withRulesFrom(path).hasAllowedDescendant(path)
}

// Enter returns the Filter to use while listing the children of path: the
// accumulated rule set plus whatever path's own ignore file adds.
func (e *Engine) Enter(path string) treewalk.Filter {
	return e.withRulesFrom(path)
}

// hasAllowedDescendant recursively checks dir (whose own ignore rules are
// already folded into e) for any file or directory that Allow would accept.
func (e *Engine) hasAllowedDescendant(dir string) bool {
	entries, err := treewalk.Listdir(dir)
	if err != nil {
		return false
	}
	for _, ent := range entries {
		p := filepath.Join(dir, ent.Name)
		if ent.IsFile {
			if e.Allow(p, false) {
				return true
			}
			continue
		}
		if e.Allow(p, true) {
			return true
		}
		if e.withRulesFrom(p).hasAllowedDescendant(p) {
			return true
		}
	}
	return false
}
