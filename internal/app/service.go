package app

import (
	"time"

	"depsolve/internal/adapters"
	"depsolve/internal/ports"
)

// Service wires the ports a resolution needs: the three document
// sources, the plan sink, and the optimizer backend.
type Service struct {
	Catalog   ports.CatalogSource
	Documents ports.DocumentSource
	Output    ports.PlanSink
	Optimizer ports.OptimizerPort
	Clock     func() time.Time
}

// NewService wires the default file-backed adapters and the gophersat
// optimizer. The document sources are repointed per request since their
// paths come from ResolveRequest, not from process-wide configuration.
func NewService() Service {
	return Service{
		Optimizer: adapters.NewGophersatOptimizer(),
		Clock:     time.Now,
	}
}
