package ports

import "depsolve/internal/types"

// CatalogSource loads the repository catalog document: the full set of
// available RepoPackage entries a resolution may choose among.
type CatalogSource interface {
	LoadPackages() ([]types.RepoPackage, error)
}
