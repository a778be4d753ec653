package matrix

import "github.com/go-git/go-git/v5/plumbing"

// classifyRef splits a source-control reference into branch and tag short
// names. At most one result is non-empty: "refs/heads/*" yields a branch,
// "refs/tags/*" yields a tag, anything else yields neither. Unrecognized
// references are not an error.
func classifyRef(ref string) (branch, tag string) {
	name := plumbing.ReferenceName(ref)
	switch {
	case name.IsBranch():
		branch = name.Short()
	case name.IsTag():
		tag = name.Short()
	}
	return branch, tag
}
