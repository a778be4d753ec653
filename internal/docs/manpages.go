// Package docs holds static metadata for the manual pages shipped with the
// project. It is configuration data only; rendering is the documentation
// toolchain's job.
package docs

// Author is the attribution line used by every shipped page.
const Author = "This page is maintained by the cimatrix community."

// ManPage describes one manual page entry.
type ManPage struct {
	// Path is the page's source path relative to the doc root, without
	// extension.
	Path string

	// Name is the page name as installed.
	Name string

	// Description is the one-line summary shown by apropos.
	Description string

	// Section is the manual section the page installs into.
	Section int
}

// ManPages lists every manual page built from the doc sources.
var ManPages = []ManPage{
	{
		Path:        "man1/cimatrix",
		Name:        "cimatrix",
		Description: "generate a CI build matrix",
		Section:     1,
	},
	{
		Path:        "man5/cimatrix-builds",
		Name:        "cimatrix-builds",
		Description: "cimatrix build definition files",
		Section:     5,
	},
}

// BySection returns the pages belonging to the given manual section, in
// table order.
func BySection(section int) []ManPage {
	var pages []ManPage
	for _, p := range ManPages {
		if p.Section == section {
			pages = append(pages, p)
		}
	}
	return pages
}
