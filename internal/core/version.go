package core

import (
	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"

	"depsolve/internal/types"
)

// versionCache memoizes parsed ecosystem-specific version objects so a
// resolution's repeated comparisons (sorting, constraint checks, SAT
// candidate filtering) don't re-parse the same string over and over.
// Comparisons under the default scheme use types.Version directly and
// never touch the cache.
type versionCache struct {
	deb map[string]debversion.Version
	pep map[string]pep440.Version
}

func newVersionCache() *versionCache {
	return &versionCache{
		deb: map[string]debversion.Version{},
		pep: map[string]pep440.Version{},
	}
}

func (c *versionCache) debVersion(value string) (debversion.Version, error) {
	if v, ok := c.deb[value]; ok {
		return v, nil
	}
	v, err := debversion.NewVersion(value)
	if err != nil {
		return debversion.Version{}, err
	}
	c.deb[value] = v
	return v, nil
}

func (c *versionCache) pepVersion(value string) (pep440.Version, error) {
	if v, ok := c.pep[value]; ok {
		return v, nil
	}
	v, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, err
	}
	c.pep[value] = v
	return v, nil
}

// compare orders two catalog packages of the same name under their
// shared scheme. Falls back to the default dotted-component order if an
// ecosystem-specific parse fails (a malformed version is ordered by
// types.Version.Compare instead of aborting the whole catalog build).
func (c *versionCache) compare(a, b types.RepoPackage) int {
	switch a.Scheme {
	case types.SchemeDebian:
		va, errA := c.debVersion(a.Version.String())
		vb, errB := c.debVersion(b.Version.String())
		if errA == nil && errB == nil {
			return va.Compare(vb)
		}
	case types.SchemePep440:
		va, errA := c.pepVersion(a.Version.String())
		vb, errB := c.pepVersion(b.Version.String())
		if errA == nil && errB == nil {
			return va.Compare(vb)
		}
	}
	return a.Version.Compare(b.Version)
}

// compareVersions compares a catalog package's version against a raw
// version string (typically from a Reference) under the package's
// scheme, returning the same sign convention as types.Version.Compare.
func (c *versionCache) compareVersions(pkg types.RepoPackage, other string) (int, error) {
	switch pkg.Scheme {
	case types.SchemeDebian:
		va, err := c.debVersion(pkg.Version.String())
		if err != nil {
			return 0, err
		}
		vb, err := c.debVersion(other)
		if err != nil {
			return 0, err
		}
		return va.Compare(vb), nil
	case types.SchemePep440:
		va, err := c.pepVersion(pkg.Version.String())
		if err != nil {
			return 0, err
		}
		vb, err := c.pepVersion(other)
		if err != nil {
			return 0, err
		}
		return va.Compare(vb), nil
	default:
		parsedOther, err := types.ParseVersion(other)
		if err != nil {
			return 0, err
		}
		return pkg.Version.Compare(parsedOther), nil
	}
}
