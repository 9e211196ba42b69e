package app

import (
	"context"
	"fmt"

	"github.com/vk/sizecalc/internal/ctxlog"
	"github.com/vk/sizecalc/internal/dag"
	"github.com/vk/sizecalc/internal/nodeid"
	"github.com/vk/sizecalc/internal/report"
	"github.com/vk/sizecalc/internal/units"
)

// inputs is the merged view of the positional arguments and the profile.
type inputs struct {
	objectSize         string
	blockSize          string
	exprs              dag.Expressions
	requests           bool
	allowBareReference bool
}

// Run performs one calculation and writes the result.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	if len(a.config.ExtraArgs) > 0 {
		a.logger.Warn("Extra positional arguments given; request count conversion is disabled.", "extra", a.config.ExtraArgs)
	}

	in, err := a.inputs(ctx)
	if err != nil {
		return err
	}

	objectSize, err := units.Parse(in.objectSize)
	if err != nil {
		return fmt.Errorf("object size: %w", err)
	}
	blockSize, err := units.Parse(in.blockSize)
	if err != nil {
		return fmt.Errorf("block size: %w", err)
	}
	a.logger.Debug("Reference sizes parsed.", "object_size", objectSize, "block_size", blockSize)

	graph, err := dag.Build(ctx, in.exprs, dag.Options{AllowBareReference: in.allowBareReference})
	if err != nil {
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}

	if a.config.Explain {
		if err := graph.WriteTable(a.errW, "Original"); err != nil {
			return err
		}
	}

	if err := graph.ResolveAll(ctx, objectSize); err != nil {
		return fmt.Errorf("resolution failed: %w", err)
	}

	if a.config.Explain {
		if err := graph.WriteTable(a.errW, "Final"); err != nil {
			return err
		}
	}

	result := report.Result{
		ObjectCount: graph.Node(nodeid.ObjectCount).Text,
		CacheSize:   graph.Node(nodeid.CacheSize).Text,
		BenchSize:   graph.Node(nodeid.BenchSize).Text,
	}

	if in.requests {
		result.Requests, err = requestCount(graph.Node(nodeid.BenchSize).Value, blockSize)
		if err != nil {
			return fmt.Errorf("request count conversion failed: %w", err)
		}
		a.logger.Debug("Bench size converted to requests.", "requests", result.Requests)
	}

	a.logger.Info("Calculation finished.", "co", result.ObjectCount, "cs", result.CacheSize, "bs", result.BenchSize)
	return report.Write(a.outW, a.config.Output, result)
}

// inputs returns the configured inputs, loading the profile if one is set.
// Flags that enable behavior apply on top of the profile.
func (a *App) inputs(ctx context.Context) (*inputs, error) {
	in := &inputs{
		objectSize:         a.config.ObjectSize,
		blockSize:          a.config.BlockSize,
		exprs:              a.config.Expressions,
		requests:           a.config.Requests,
		allowBareReference: a.config.AllowBareReference,
	}
	if a.config.ProfilePath == "" {
		return in, nil
	}

	p, err := a.loader.Load(ctx, a.config.ProfilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	in.objectSize = p.ObjectSize
	in.blockSize = p.BlockSize
	in.exprs = p.Expressions
	in.requests = in.requests || p.Requests
	in.allowBareReference = in.allowBareReference || p.AllowBareReference
	return in, nil
}

// requestCount expresses a bench size in bytes as a number of block sized
// requests, rendered with units.
func requestCount(benchBytes, blockSize int64) (string, error) {
	if blockSize == 0 {
		return "", fmt.Errorf("%w: block size is zero", dag.ErrDivideByZero)
	}
	return units.Render(benchBytes / blockSize)
}
