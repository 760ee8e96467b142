package core

import (
	"depsolve/internal/types"
)

// cycleError is the typed cycle signal Design Notes §9 calls for: the
// encoding reached twice on the current DFS path, distinguished from an
// arbitrary recursion failure.
type cycleError struct {
	witness string
}

func (e *cycleError) Error() string {
	return "unlinearizable cycle at " + e.witness
}

// linearizeContext is the explicit resolution context threaded through
// one linearization attempt: the shared command buffer, the mutable
// installed set, and the model/catalog/reverse-index it traverses.
type linearizeContext struct {
	cat            *Catalog
	model          []bool
	reverseDepends map[string][]string
	installed      map[string]bool
	path           map[string]bool
	commands       []types.Command
}

func (c *linearizeContext) selected(entry CatalogEntry) bool {
	v := entry.RefVar
	if v-1 < 0 || v-1 >= len(c.model) {
		return false
	}
	return c.model[v-1]
}

// Linearize converts the delta between the initial installed set and
// the model's chosen final set into an ordered command list. Removals
// are processed before installs; within each phase, dependents leave
// before dependees and dependencies precede dependents. Returns a
// *cycleError if a same-path repeat is detected, naming the witness
// encoding the driver should pin and re-solve on.
func Linearize(cat *Catalog, model []bool, reverseDepends map[string][]string, initial []types.Reference) ([]types.Command, error) {
	ctx := &linearizeContext{
		cat:            cat,
		model:          model,
		reverseDepends: reverseDepends,
		installed:      map[string]bool{},
		path:           map[string]bool{},
	}
	for _, ref := range initial {
		ctx.installed[types.Encoding(ref.Name, ref.Version)] = true
	}

	for _, entry := range cat.Entries() {
		if ctx.installed[entry.Encoding] && !ctx.selected(entry) {
			if err := ctx.uninstall(entry.Encoding); err != nil {
				return nil, err
			}
		}
	}
	for _, entry := range cat.Entries() {
		if !ctx.installed[entry.Encoding] && ctx.selected(entry) {
			if err := ctx.install(entry.Encoding); err != nil {
				return nil, err
			}
		}
	}
	return ctx.commands, nil
}

// uninstall removes e and everything that depends on e which is itself
// scheduled for removal, before e, so no dangling-dependency moment
// exists.
func (c *linearizeContext) uninstall(e string) error {
	if !c.installed[e] {
		return nil
	}
	if c.path[e] {
		return &cycleError{witness: e}
	}
	c.path[e] = true
	defer delete(c.path, e)

	for _, dependent := range c.reverseDepends[e] {
		entry, ok := c.cat.ByEncoding(dependent)
		if !ok || !c.installed[dependent] {
			continue
		}
		if c.selected(entry) {
			continue
		}
		if err := c.uninstall(dependent); err != nil {
			return err
		}
	}

	delete(c.installed, e)
	entry, _ := c.cat.ByEncoding(e)
	c.commands = append(c.commands, types.Command{Install: false, Name: entry.Package.Name, Version: entry.Package.Version})
	return nil
}

// install adds e after every selected, still-uninstalled alternative
// satisfying each of e's dependency clauses, so dependencies precede
// dependents.
func (c *linearizeContext) install(e string) error {
	if c.installed[e] {
		return nil
	}
	if c.path[e] {
		return &cycleError{witness: e}
	}
	c.path[e] = true
	defer delete(c.path, e)

	entry, ok := c.cat.ByEncoding(e)
	if ok {
		for _, altClause := range entry.Package.Depends {
			for _, alt := range altClause {
				for _, candidate := range c.cat.Match(alt) {
					if !c.selected(candidate) || c.installed[candidate.Encoding] {
						continue
					}
					if err := c.install(candidate.Encoding); err != nil {
						return err
					}
				}
			}
		}
	}

	c.installed[e] = true
	c.commands = append(c.commands, types.Command{Install: true, Name: entry.Package.Name, Version: entry.Package.Version})
	return nil
}
