package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"depsolve/internal/ports"
	"depsolve/internal/types"
)

// repoPackageDoc is the on-disk shape of one repository entry: a
// structured record with optional depends/conflicts lists, per the
// repository document grammar.
type repoPackageDoc struct {
	Name      string     `yaml:"name"`
	Version   string     `yaml:"version"`
	Scheme    string     `yaml:"scheme,omitempty"`
	Size      int64      `yaml:"size,omitempty"`
	Depends   [][]string `yaml:"depends,omitempty"`
	Conflicts []string   `yaml:"conflicts,omitempty"`
}

type repoDoc struct {
	Packages []repoPackageDoc `yaml:"packages"`
}

// CatalogFileAdapter loads the repository document from a YAML file,
// caching the parsed result for the lifetime of one resolution.
type CatalogFileAdapter struct {
	Path   string
	cached []types.RepoPackage
	loaded bool
}

func NewCatalogFileAdapter(path string) *CatalogFileAdapter {
	return &CatalogFileAdapter{Path: path}
}

func (a *CatalogFileAdapter) LoadPackages() ([]types.RepoPackage, error) {
	if a.loaded {
		return a.cached, nil
	}
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("repository document not found").
			WithCause(err)
	}
	var doc repoDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid repository document").
			WithCause(err)
	}

	packages := make([]types.RepoPackage, 0, len(doc.Packages))
	for _, entry := range doc.Packages {
		version, err := types.ParseVersion(entry.Version)
		if err != nil {
			return nil, err
		}
		pkg := types.RepoPackage{
			Name:    entry.Name,
			Version: version,
			Scheme:  types.VersionScheme(entry.Scheme),
			Size:    entry.Size,
		}
		for _, conflict := range entry.Conflicts {
			ref, err := types.ParseReference(conflict)
			if err != nil {
				return nil, err
			}
			pkg.Conflicts = append(pkg.Conflicts, ref)
		}
		for _, altClause := range entry.Depends {
			var clause []types.Reference
			for _, alt := range altClause {
				ref, err := types.ParseReference(alt)
				if err != nil {
					return nil, err
				}
				clause = append(clause, ref)
			}
			pkg.Depends = append(pkg.Depends, clause)
		}
		packages = append(packages, pkg)
	}

	a.cached = packages
	a.loaded = true
	return packages, nil
}

var _ ports.CatalogSource = (*CatalogFileAdapter)(nil)
