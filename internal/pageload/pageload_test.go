// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pageload

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestWaitJoinsAllFetches(t *testing.T) {
	g := New(context.Background())

	fastDone := make(chan struct{})
	release := make(chan struct{})
	var banners, services []string

	Fetch(g, "banners", &banners, nil, func(context.Context) ([]string, error) {
		defer close(fastDone)
		return []string{"b"}, nil
	})
	Fetch(g, "services", &services, nil, func(context.Context) ([]string, error) {
		<-release
		return []string{"s"}, nil
	})

	waited := make(chan Result)
	go func() { waited <- g.Wait() }()

	<-fastDone
	select {
	case <-waited:
		t.Fatal("Wait returned before the slow fetch settled")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	res := <-waited
	if !res.OK() {
		t.Errorf("unexpected degraded sources: %v", res.Degraded)
	}
	if len(banners) != 1 || len(services) != 1 {
		t.Errorf("banners=%v services=%v", banners, services)
	}
}

func TestFailedFetchSettlesToFallback(t *testing.T) {
	g := New(context.Background())

	var services []string
	var settings string
	Fetch(g, "services", &services, []string{"fallback"}, func(context.Context) ([]string, error) {
		return nil, errors.New("connection refused")
	})
	Fetch(g, "settings", &settings, "default", func(context.Context) (string, error) {
		return "live", nil
	})

	res := g.Wait()
	if res.OK() {
		t.Error("expected a degraded result")
	}
	if len(res.Degraded) != 1 || res.Degraded[0] != "services" {
		t.Errorf("Degraded = %v", res.Degraded)
	}
	if len(services) != 1 || services[0] != "fallback" {
		t.Errorf("services = %v, want fallback", services)
	}
	if settings != "live" {
		t.Errorf("settings = %q, want live", settings)
	}
}

func TestFetchesRunConcurrently(t *testing.T) {
	g := New(context.Background())

	var inFlight, peak atomic.Int32
	results := make([]int, 3)
	for i := range results {
		Fetch(g, "n", &results[i], -1, func(context.Context) (int, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(30 * time.Millisecond)
			inFlight.Add(-1)
			return 1, nil
		})
	}
	g.Wait()

	if peak.Load() < 2 {
		t.Errorf("peak concurrency = %d, want >= 2", peak.Load())
	}
}

func TestCancelledContextFallsBack(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := New(ctx)

	var v string
	Fetch(g, "seo", &v, "fallback", func(ctx context.Context) (string, error) {
		return "", ctx.Err()
	})
	res := g.Wait()
	if v != "fallback" || res.OK() {
		t.Errorf("v=%q res=%+v", v, res)
	}
}

func TestDegradedSorted(t *testing.T) {
	g := New(context.Background())
	var a, b, c int
	fail := func(context.Context) (int, error) { return 0, errors.New("x") }
	Fetch(g, "zeta", &a, 0, fail)
	Fetch(g, "alpha", &b, 0, fail)
	Fetch(g, "mid", &c, 0, fail)

	res := g.Wait()
	want := []string{"alpha", "mid", "zeta"}
	for i, name := range want {
		if res.Degraded[i] != name {
			t.Fatalf("Degraded = %v, want %v", res.Degraded, want)
		}
	}
}
