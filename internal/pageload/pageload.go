// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package pageload runs the independent fetches a page needs in parallel
// and joins them before render. Each fetch settles to either live data or
// its fallback, so Wait never fails; it reports which sources degraded so
// the caller can skip caching the result.
package pageload

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"bridalstudio/internal/client"
)

// Group is a set of in-flight fetches for one page.
type Group struct {
	ctx context.Context
	eg  errgroup.Group

	mu       sync.Mutex
	degraded []string
}

// New starts an empty group bound to ctx. Cancelling ctx cancels every
// fetch, which then settles to its fallback.
func New(ctx context.Context) *Group {
	return &Group{ctx: ctx}
}

// Fetch runs fn in its own goroutine and stores the settled value in dst:
// the live result, or fallback when fn fails. dst must not be read before
// Wait returns.
func Fetch[T any](g *Group, name string, dst *T, fallback T, fn func(context.Context) (T, error)) {
	g.eg.Go(func() error {
		v, err := fn(g.ctx)
		env := client.Settle(v, err, fallback)
		*dst = env.Data
		if !env.Success {
			slog.Warn("page fetch degraded, using fallback", "source", name, "error", env.Message)
			g.mu.Lock()
			g.degraded = append(g.degraded, name)
			g.mu.Unlock()
		}
		return nil
	})
}

// Result describes a joined page load.
type Result struct {
	// Degraded lists the sources that fell back, sorted by name.
	Degraded []string
}

// OK reports whether every fetch returned live data.
func (r Result) OK() bool {
	return len(r.Degraded) == 0
}

// Wait blocks until every fetch has settled.
func (g *Group) Wait() Result {
	_ = g.eg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	degraded := append([]string(nil), g.degraded...)
	sort.Strings(degraded)
	return Result{Degraded: degraded}
}
