package types

import (
	"strings"
)

// Op is the parsed relation of a Reference: a non-empty subset of
// {<, =, >}. A candidate version matches if it satisfies any one of the
// selected relations (so ">=" means "greater-or-equal").
type Op struct {
	Lt bool
	Eq bool
	Gt bool
}

// Matches reports whether a version whose Compare(ref) result is cmp
// (negative: less than ref, zero: equal, positive: greater than ref)
// satisfies this operator.
func (o Op) Matches(cmp int) bool {
	switch {
	case cmp < 0:
		return o.Lt
	case cmp > 0:
		return o.Gt
	default:
		return o.Eq
	}
}

// IsZero reports whether no relation was parsed (an unversioned reference).
func (o Op) IsZero() bool {
	return !o.Lt && !o.Eq && !o.Gt
}

// String renders the operator back to its canonical token ordering:
// ">=", "<=", ">", "<", "=", or "" for an unversioned reference.
func (o Op) String() string {
	var b strings.Builder
	if o.Lt {
		b.WriteByte('<')
	}
	if o.Gt {
		b.WriteByte('>')
	}
	if o.Eq {
		b.WriteByte('=')
	}
	return b.String()
}

// Reference is the (name, op?, version?) triple the spec calls
// PackageReference. When Op is zero, the reference matches every version
// of Name.
type Reference struct {
	Name    string
	Op      Op
	Version Version
}

// IsVersioned reports whether this reference constrains a version.
func (r Reference) IsVersioned() bool {
	return !r.Op.IsZero()
}

// Encoding returns the canonical "name@version" identity string for a
// fully resolved (name, version) pair. It is never parsed back — treat it
// as an opaque identifier.
func Encoding(name string, version Version) string {
	return name + "@" + version.String()
}

// Unparse renders the reference as name, operator and version (e.g.
// "name=version" or "name>=version"), or the bare name for an
// unversioned reference.
func (r Reference) Unparse() string {
	if r.Op.IsZero() {
		return r.Name
	}
	return r.Name + r.Op.String() + r.Version.String()
}

// isOpChar reports whether b is one of the three operator characters.
func isOpChar(b byte) bool {
	return b == '<' || b == '=' || b == '>'
}

// ParseReference splits a reference token into (name, op, version) by
// locating the single maximal run of characters from {<, =, >}. Absence
// of any operator character yields an unversioned reference. A second,
// separate run of operator characters later in the string (e.g.
// "foo>=1.0=2.0") is rejected as BadReference rather than silently
// downgraded to unversioned, per the spec's Open Question resolution.
func ParseReference(raw string) (Reference, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Reference{}, NewBadReference(raw, nil)
	}

	runs := findOpRuns(trimmed)
	if len(runs) == 0 {
		return Reference{Name: trimmed}, nil
	}
	if len(runs) > 1 {
		return Reference{}, NewBadReference(raw, nil)
	}

	run := runs[0]
	name := strings.TrimSpace(trimmed[:run.start])
	opToken := trimmed[run.start:run.end]
	versionText := strings.TrimSpace(trimmed[run.end:])
	if name == "" || versionText == "" {
		return Reference{}, NewBadReference(raw, nil)
	}

	op, ok := parseOp(opToken)
	if !ok {
		return Reference{}, NewBadReference(raw, nil)
	}
	version, err := ParseVersion(versionText)
	if err != nil {
		return Reference{}, NewBadReference(raw, err)
	}
	return Reference{Name: name, Op: op, Version: version}, nil
}

type opRun struct {
	start, end int
}

// findOpRuns returns every maximal contiguous run of operator characters
// in s, in order.
func findOpRuns(s string) []opRun {
	var runs []opRun
	i := 0
	for i < len(s) {
		if !isOpChar(s[i]) {
			i++
			continue
		}
		start := i
		for i < len(s) && isOpChar(s[i]) {
			i++
		}
		runs = append(runs, opRun{start: start, end: i})
	}
	return runs
}

func parseOp(token string) (Op, bool) {
	var op Op
	for i := 0; i < len(token); i++ {
		switch token[i] {
		case '<':
			op.Lt = true
		case '=':
			op.Eq = true
		case '>':
			op.Gt = true
		default:
			return Op{}, false
		}
	}
	if op.IsZero() {
		return Op{}, false
	}
	return op, true
}
