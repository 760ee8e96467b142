package ports

import "depsolve/internal/types"

// DocumentSource loads the two remaining input documents: the initial
// installed state and the user's install/uninstall constraints.
type DocumentSource interface {
	LoadInitialState() ([]types.Reference, error)
	LoadConstraints() ([]types.UserConstraint, error)
}
