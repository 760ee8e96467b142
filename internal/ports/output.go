package ports

import "depsolve/internal/types"

// PlanSink writes the resolver's ordered install/uninstall command
// sequence to its destination.
type PlanSink interface {
	WritePlan(commands []types.Command) error
}
