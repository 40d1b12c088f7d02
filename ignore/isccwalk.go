package ignore

import (
	"strings"

	"github.com/iscc/isccsum/treewalk"
)

// IgnoreFileName is the ignore-file name treewalk-iscc looks for in every
// directory it visits.
const IgnoreFileName = ".isccignore"

// isccFilter is Treewalk-Ignore(".isccignore") with one unconditional
// post-filter: paths ending in ".iscc.json" are never yielded, regardless of
// what any .isccignore file says. That exclusion cannot be overridden by a
// whitelist rule.
type isccFilter struct {
	inner *Engine
}

// NewISCCFilter returns the root filter for tree-mode and batch traversal.
func NewISCCFilter(root string) treewalk.Filter {
	return isccFilter{inner: New(IgnoreFileName, root)}
}

func (f isccFilter) Allow(path string, isDir bool) bool {
	if !isDir && strings.HasSuffix(path, ".iscc.json") {
		return false
	}
	return f.inner.Allow(path, isDir)
}

func (f isccFilter) Descend(path string) bool {
	return f.inner.Descend(path)
}

func (f isccFilter) Enter(path string) treewalk.Filter {
	return isccFilter{inner: f.inner.withRulesFrom(path)}
}
