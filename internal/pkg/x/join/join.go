// Package join runs a fixed set of concurrent tasks where each task declares
// what its failure means for the group.
//
// A Required task failing cancels the shared context and fails the join. A
// BestEffort task failing is logged and otherwise ignored; its result slot is
// left untouched by the caller's closure.
package join

import (
	"context"

	"github.com/gabapcia/walletfeed/internal/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Policy decides how a task's error affects the join.
type Policy int

const (
	// PolicyRequired propagates the error and cancels sibling tasks.
	PolicyRequired Policy = iota
	// PolicyBestEffort logs the error and drops it.
	PolicyBestEffort
)

// Task is a named unit of work with an error policy.
type Task struct {
	Name   string
	Policy Policy
	Run    func(ctx context.Context) error
}

// Required builds a task whose failure fails the whole join.
func Required(name string, fn func(ctx context.Context) error) Task {
	return Task{Name: name, Policy: PolicyRequired, Run: fn}
}

// BestEffort builds a task whose failure is logged and swallowed.
func BestEffort(name string, fn func(ctx context.Context) error) Task {
	return Task{Name: name, Policy: PolicyBestEffort, Run: fn}
}

// All runs every task concurrently and waits for all of them. It returns the
// first Required failure, if any. Best-effort tasks observe the same context,
// so they are canceled when a required sibling fails.
func All(ctx context.Context, tasks ...Task) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, task := range tasks {
		g.Go(func() error {
			err := task.Run(gctx)
			if err == nil {
				return nil
			}

			if task.Policy == PolicyBestEffort {
				logger.Debug(gctx, "best-effort task failed", "task", task.Name, "error", err)
				return nil
			}

			return err
		})
	}

	return g.Wait()
}
