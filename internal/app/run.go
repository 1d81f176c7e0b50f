package app

import (
	"context"
	"fmt"

	"github.com/vk/dlacgo/internal/ctxlog"
	"github.com/vk/dlacgo/internal/ir"
	"github.com/vk/dlacgo/internal/pass"
	"github.com/vk/dlacgo/internal/sched"
	"github.com/vk/dlacgo/internal/shape"
	"github.com/vk/dlacgo/internal/target"
)

// Run executes the compilation pipeline based on the provided configuration.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.logger.Debug("Building dataflow graph from model description...")
	graph, err := ir.Build(ctx, a.config.Arch)
	if err != nil {
		return fmt.Errorf("failed to build dataflow graph: %w", err)
	}
	a.logger.Debug("Dataflow graph built.", "node_count", len(graph.Nodes()))

	// A missing target block is not a startup error: the scheduler reports
	// it as a pass failure, keeping the graph untouched.
	var backend *target.Backend
	if a.config.Target != nil {
		backend, err = target.New(ctx, a.config.Target, a.registry)
		if err != nil {
			return fmt.Errorf("failed to build target backend: %w", err)
		}
		a.logger.Debug("Target backend built.", "target", backend.Name())
	} else {
		a.logger.Warn("No target block found in descriptions; scheduling will fail.")
	}

	schedPass := sched.NewPass(backend, sched.Options{
		AdvancePerRound: appConfig.AdvancePerRound,
	})

	var pipeline pass.Pipeline
	pipeline.Add(shape.NewPass())
	pipeline.Add(schedPass)

	a.logger.Info("Starting compilation pipeline.", "model", graph.Name)
	if err := pipeline.Run(ctx, graph); err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}
	a.logger.Info("Compilation pipeline finished.")

	a.printReport(graph, backend, schedPass.Result())
	return nil
}
