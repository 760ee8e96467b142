package core

import (
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depsolve/internal/types"
)

// CatalogEntry is one indexed (version, ref-variable, encoding-string)
// row for a package name, plus the ref0 variable that pins its presence
// in the initial installed set.
type CatalogEntry struct {
	Package  types.RepoPackage
	RefVar   int
	Ref0Var  int
	Encoding string
}

// Catalog groups repository entries by name, sorted ascending by
// version, and owns the two SAT variables (ref, ref0) each entry needs.
// Built once per resolution and discarded afterward.
type Catalog struct {
	byName     map[string][]CatalogEntry
	byEncoding map[string]CatalogEntry
	numVars    int
	cache      *versionCache
}

// NewCatalog indexes the given packages by name, sorts each bucket
// ascending by version, and allocates a (ref, ref0) variable pair per
// entry. Fails if the same (name, version) pair appears twice.
func NewCatalog(packages []types.RepoPackage) (*Catalog, error) {
	cat := &Catalog{
		byName:     map[string][]CatalogEntry{},
		byEncoding: map[string]CatalogEntry{},
		cache:      newVersionCache(),
	}
	nextVar := 1
	for _, pkg := range packages {
		encoding := pkg.Encoding()
		if _, exists := cat.byEncoding[encoding]; exists {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("duplicate catalog entry: %s", encoding))
		}
		if pkg.Size < 0 {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("package %s has negative size: %d", encoding, pkg.Size))
		}
		entry := CatalogEntry{
			Package:  pkg,
			RefVar:   nextVar,
			Ref0Var:  nextVar + 1,
			Encoding: encoding,
		}
		nextVar += 2
		cat.byName[pkg.Name] = append(cat.byName[pkg.Name], entry)
		cat.byEncoding[encoding] = entry
	}
	for name, entries := range cat.byName {
		sorted := append([]CatalogEntry(nil), entries...)
		sort.Slice(sorted, func(i, j int) bool {
			return cat.cache.compare(sorted[i].Package, sorted[j].Package) < 0
		})
		cat.byName[name] = sorted
	}
	cat.numVars = nextVar - 1
	return cat, nil
}

// NumVars returns the number of SAT variables this catalog allocated
// (two per entry: ref and ref0).
func (c *Catalog) NumVars() int {
	return c.numVars
}

// Entries returns every catalog entry across every name, in no
// particular cross-name order (each name's own bucket stays version
// ascending).
func (c *Catalog) Entries() []CatalogEntry {
	var out []CatalogEntry
	for _, bucket := range c.byName {
		out = append(out, bucket...)
	}
	return out
}

// Names returns every distinct package name in the catalog.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns the version-ascending bucket for name, or nil if the
// name is not present.
func (c *Catalog) ByName(name string) []CatalogEntry {
	return c.byName[name]
}

// ByEncoding looks up a single entry by its "name@version" encoding.
func (c *Catalog) ByEncoding(encoding string) (CatalogEntry, bool) {
	entry, ok := c.byEncoding[encoding]
	return entry, ok
}

// Match returns every catalog entry whose (name, version) satisfies ref,
// preserving the name's version-ascending bucket order. An unversioned
// reference returns the whole bucket. A reference whose name is absent
// from the catalog returns an empty (never nil-panicking) result.
func (c *Catalog) Match(ref types.Reference) []CatalogEntry {
	bucket := c.byName[ref.Name]
	if len(bucket) == 0 {
		return nil
	}
	if !ref.IsVersioned() {
		return append([]CatalogEntry(nil), bucket...)
	}
	var out []CatalogEntry
	for _, entry := range bucket {
		cmp, err := c.cache.compareVersions(entry.Package, ref.Version.String())
		if err != nil {
			continue
		}
		if ref.Op.Matches(cmp) {
			out = append(out, entry)
		}
	}
	return out
}

// MatchVars is a convenience projection of Match returning ref variable
// IDs instead of full entries.
func (c *Catalog) MatchVars(ref types.Reference) []int {
	matches := c.Match(ref)
	vars := make([]int, 0, len(matches))
	for _, entry := range matches {
		vars = append(vars, entry.RefVar)
	}
	return vars
}
