package app

import (
	"time"

	"depsolve/internal/types"
)

// ResolveRequest names the three input documents and the cost/timing
// coefficients governing one resolution.
type ResolveRequest struct {
	RepositoryPath   string
	InitialStatePath string
	ConstraintsPath  string
	OutputDir        string
	InstallWeight    int
	UninstallWeight  int
	// Timeout bounds a single optimizer invocation. Zero means use
	// core.DefaultOptimizerTimeout.
	Timeout time.Duration
	// MaxRetries bounds the cycle-escape re-solve loop. Zero means use
	// core.DefaultMaxLinearizeRetries.
	MaxRetries int
}

// ResolveResult reports the outcome of one resolution: the plan itself
// and the directory the plan file was written to.
type ResolveResult struct {
	Plan      []types.Command
	OutputDir string
}
