package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depsolve/internal/adapters"
	"depsolve/internal/core"
)

// Resolve loads the three input documents, compiles and solves the
// constraint model, and writes the resulting plan to req.OutputDir.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	repoPath := strings.TrimSpace(req.RepositoryPath)
	if repoPath == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("repository document path is required")
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		outputDir = "out"
	}

	catalogSource := s.Catalog
	if catalogSource == nil {
		catalogSource = adapters.NewCatalogFileAdapter(repoPath)
	}
	documents := s.Documents
	if documents == nil {
		documents = adapters.NewDocumentReaderAdapter(req.InitialStatePath, req.ConstraintsPath)
	}
	output := s.Output
	if output == nil {
		output = adapters.NewPlanFileAdapter(outputDir)
	}

	packages, err := catalogSource.LoadPackages()
	if err != nil {
		return ResolveResult{}, err
	}
	initial, err := documents.LoadInitialState()
	if err != nil {
		return ResolveResult{}, err
	}
	constraints, err := documents.LoadConstraints()
	if err != nil {
		return ResolveResult{}, err
	}

	cat, err := core.NewCatalog(packages)
	if err != nil {
		return ResolveResult{}, err
	}

	weights := core.DefaultWeights()
	if req.InstallWeight > 0 {
		weights.Install = req.InstallWeight
	}
	if req.UninstallWeight > 0 {
		weights.Uninstall = req.UninstallWeight
	}

	resolver := core.NewResolverCore(s.Optimizer, weights)
	if req.Timeout > 0 {
		resolver.Timeout = req.Timeout
	}
	if req.MaxRetries > 0 {
		resolver.MaxRetries = req.MaxRetries
	}
	plan := resolver.Resolve(ctx, cat, initial, constraints)

	if err := output.WritePlan(plan); err != nil {
		return ResolveResult{}, err
	}

	return ResolveResult{Plan: plan, OutputDir: outputDir}, nil
}
