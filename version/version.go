// Package version holds build-time version metadata for the isccsum binary.
package version

// mainpkg is the canonical module path this binary was built from.
var mainpkg = "github.com/iscc/isccsum"

// version is replaced at link time with the actual release tag; the value
// here is used for a plain `go install`.
var version = "v0.0.0+unknown"

// revision is filled with the VCS revision used to build the binary, at
// link time.
var revision = ""

// Package returns the canonical module path this binary was built from.
func Package() string {
	return mainpkg
}

// Version returns the module version this binary was built from.
func Version() string {
	return version
}

// Revision returns the VCS revision used to build this binary, if known.
func Revision() string {
	return revision
}
