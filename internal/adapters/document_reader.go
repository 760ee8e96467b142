package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depsolve/internal/ports"
	"depsolve/internal/types"
)

// DocumentReaderAdapter reads the initial-state and constraints
// documents: one fully-qualified reference string, or one signed
// constraint string, per non-blank line.
type DocumentReaderAdapter struct {
	InitialStatePath string
	ConstraintsPath  string
}

func NewDocumentReaderAdapter(initialStatePath, constraintsPath string) DocumentReaderAdapter {
	return DocumentReaderAdapter{InitialStatePath: initialStatePath, ConstraintsPath: constraintsPath}
}

func (a DocumentReaderAdapter) LoadInitialState() ([]types.Reference, error) {
	lines, err := readNonBlankLines(a.InitialStatePath, "initial state")
	if err != nil {
		return nil, err
	}
	refs := make([]types.Reference, 0, len(lines))
	for _, line := range lines {
		ref, err := types.ParseReference(line)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (a DocumentReaderAdapter) LoadConstraints() ([]types.UserConstraint, error) {
	lines, err := readNonBlankLines(a.ConstraintsPath, "constraints")
	if err != nil {
		return nil, err
	}
	constraints := make([]types.UserConstraint, 0, len(lines))
	for _, line := range lines {
		c, err := types.ParseUserConstraint(line)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, c)
	}
	return constraints, nil
}

func readNonBlankLines(path, label string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(label + " document not found").
			WithCause(err)
	}
	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lines = append(lines, trimmed)
	}
	return lines, nil
}

var _ ports.DocumentSource = DocumentReaderAdapter{}
