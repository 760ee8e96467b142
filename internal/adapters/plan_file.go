package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depsolve/internal/ports"
	"depsolve/internal/types"
)

// PlanFileAdapter writes the resolver's ordered command sequence to a
// file, one command per line, preserving emission order exactly: unlike
// the other documents, plan order is semantically meaningful and must
// never be sorted.
type PlanFileAdapter struct {
	Dir string
}

func NewPlanFileAdapter(dir string) PlanFileAdapter {
	return PlanFileAdapter{Dir: dir}
}

func (a PlanFileAdapter) WritePlan(commands []types.Command) error {
	if a.Dir == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	lines := make([]string, len(commands))
	for i, cmd := range commands {
		lines[i] = cmd.String()
	}
	path := filepath.Join(a.Dir, "plan.txt")
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644)
}

var _ ports.PlanSink = PlanFileAdapter{}
