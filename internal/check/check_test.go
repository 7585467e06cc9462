package check

import (
	"testing"

	"layerpaint/internal/layer"
	"layerpaint/internal/session"
	"layerpaint/internal/store"
)

func TestRunReplaysIdentically(t *testing.T) {
	for _, p := range []store.Policy{store.Overwrite, store.Additive, store.TypeToggle} {
		cfg := session.DefaultConfig()
		cfg.Grid.Policy = p
		cfg.Grid.Width = 12
		cfg.Grid.Height = 9
		for seed := int64(1); seed <= 3; seed++ {
			res, err := Run(cfg, layer.Default(), seed, 200, layer.RGB(255, 255, 255), 5)
			if err != nil {
				t.Fatalf("%s seed %d: %v", p, seed, err)
			}
			if !res.Match || res.Diff != 0 {
				t.Fatalf("%s: %s", p, res)
			}
			if res.Played != res.Recorded {
				t.Fatalf("%s: played %d of %d recorded actions", p, res.Played, res.Recorded)
			}
		}
	}
}

func TestRunIsDeterministicPerSeed(t *testing.T) {
	cfg := session.DefaultConfig()
	cfg.Grid.Width, cfg.Grid.Height = 6, 6
	a, err := Run(cfg, layer.Default(), 42, 50, layer.Color{}, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := Run(cfg, layer.Default(), 42, 50, layer.Color{}, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if a.Recorded != b.Recorded || a.total() != 50 {
		t.Fatalf("runs differ: %s vs %s", a, b)
	}
	for op, n := range a.Ops {
		if b.Ops[op] != n {
			t.Fatalf("op %s count %d vs %d", op, n, b.Ops[op])
		}
	}
}

func TestRunRejectsEmptyRegistry(t *testing.T) {
	if _, err := Run(session.DefaultConfig(), layer.NewRegistry(), 1, 10, layer.Color{}, 0); err == nil {
		t.Fatal("expected error for empty registry")
	}
}
