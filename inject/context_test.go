package inject_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/km-arc/go-inject/inject"
)

// ── Exotic entries ───────────────────────────────────────────────────────────

func TestContext_Exotic_ShadowsRegisteredService(t *testing.T) {
	factory, calls := counting()
	p := inject.New(func(b *inject.Builder) {
		b.AddSingleton("cfg", inject.UseFactory(factory))
	})

	ctx := p.BeginScope().CreateContext(inject.Exotic{"cfg": "override"})

	if got := ctx.MustGet("cfg"); got != "override" {
		t.Errorf("got %v want the exotic value", got)
	}
	if *calls != 0 {
		t.Errorf("registered factory must never run, got %d calls", *calls)
	}
}

func TestContext_Exotic_PlainValueIsStable(t *testing.T) {
	p := inject.New(func(b *inject.Builder) {})
	ctx := p.BeginScope().CreateContext(inject.Exotic{"answer": 42})

	if ctx.MustGet("answer") != ctx.MustGet("answer") {
		t.Error("a plain exotic value should behave singleton-like")
	}
}

func TestContext_Exotic_ComputedRunsPerAccess(t *testing.T) {
	calls := 0
	p := inject.New(func(b *inject.Builder) {})
	ctx := p.BeginScope().CreateContext(inject.Exotic{
		"tick": inject.Computed(func(*inject.Context) any {
			calls++
			return calls
		}),
	})

	if got := ctx.MustGet("tick"); got != 1 {
		t.Errorf("first access: got %v want 1", got)
	}
	if got := ctx.MustGet("tick"); got != 2 {
		t.Errorf("second access: got %v want 2", got)
	}
}

func TestContext_Exotic_ComputedSeesTheSameContext(t *testing.T) {
	p := inject.New(func(b *inject.Builder) {
		b.AddSingleton("base", inject.UseValue("hello"))
	})
	ctx := p.BeginScope().CreateContext(inject.Exotic{
		"loud": inject.Computed(func(c *inject.Context) any {
			return strings.ToUpper(c.MustGet("base").(string))
		}),
	})

	if got := ctx.MustGet("loud"); got != "HELLO" {
		t.Errorf("got %v want HELLO", got)
	}
}

func TestContext_Exotic_LaterMappingWins(t *testing.T) {
	p := inject.New(func(b *inject.Builder) {})
	ctx := p.BeginScope().CreateContext(
		inject.Exotic{"k": "first"},
		inject.Exotic{"k": "second"},
	)

	if got := ctx.MustGet("k"); got != "second" {
		t.Errorf("got %v want second", got)
	}
}

// ── Get / MustGet / Has ──────────────────────────────────────────────────────

func TestContext_Get_EmptyNameFails(t *testing.T) {
	p := inject.New(func(b *inject.Builder) {})

	_, err := p.Begin().Get("")
	re := resolveErr(t, err)
	if !strings.Contains(re.Reason, "must not be empty") {
		t.Errorf("reason: got %q", re.Reason)
	}
}

func TestContext_MustGet_PanicsOnError(t *testing.T) {
	p := inject.New(func(b *inject.Builder) {})

	defer func() {
		if recover() == nil {
			t.Error("expected MustGet to panic for an unregistered name")
		}
	}()
	p.Begin().MustGet("missing")
}

func TestContext_Has(t *testing.T) {
	p := inject.New(func(b *inject.Builder) {
		b.AddSingleton("registered", inject.UseValue(1))
	})
	ctx := p.BeginScope().CreateContext(inject.Exotic{"exotic": 2})

	tests := []struct {
		name string
		want bool
	}{
		{"registered", true},
		{"exotic", true},
		{"missing", false},
	}
	for _, tt := range tests {
		if got := ctx.Has(tt.name); got != tt.want {
			t.Errorf("Has(%q): got %v want %v", tt.name, got, tt.want)
		}
	}
}

func TestContext_Has_ConstructsNothing(t *testing.T) {
	factory, calls := counting()
	p := inject.New(func(b *inject.Builder) {
		b.AddSingleton("svc", inject.UseFactory(factory))
	})

	p.Begin().Has("svc")
	if *calls != 0 {
		t.Errorf("Has must not construct, got %d calls", *calls)
	}
}

// ── All ──────────────────────────────────────────────────────────────────────

func TestContext_All_ResolvesEverything(t *testing.T) {
	p := inject.New(func(b *inject.Builder) {
		b.AddSingleton("one", inject.UseValue(1))
		b.AddScoped("two", inject.UseValue(2))
	})
	ctx := p.BeginScope().CreateContext(inject.Exotic{"three": 3})

	all, err := ctx.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	want := map[string]any{"one": 1, "two": 2, "three": 3}
	if len(all) != len(want) {
		t.Fatalf("got %d entries want %d", len(all), len(want))
	}
	for k, v := range want {
		if all[k] != v {
			t.Errorf("all[%q]: got %v want %v", k, all[k], v)
		}
	}
}

func TestContext_All_ExoticShadowsRegistered(t *testing.T) {
	factory, calls := counting()
	p := inject.New(func(b *inject.Builder) {
		b.AddSingleton("svc", inject.UseFactory(factory))
	})
	ctx := p.BeginScope().CreateContext(inject.Exotic{"svc": "override"})

	all, err := ctx.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if all["svc"] != "override" {
		t.Errorf("got %v want override", all["svc"])
	}
	if *calls != 0 {
		t.Errorf("shadowed factory must not run, got %d calls", *calls)
	}
}

func TestContext_All_PropagatesResolutionErrors(t *testing.T) {
	boom := errors.New("boom")
	p := inject.New(func(b *inject.Builder) {
		b.AddTransient("bad", inject.UseFactory(func(*inject.Context) (any, error) {
			return nil, boom
		}))
	})

	if _, err := p.Begin().All(); !errors.Is(err, boom) {
		t.Errorf("got %v want the factory error", err)
	}
}

// ── Generic helpers ──────────────────────────────────────────────────────────

func TestResolve_TypedResult(t *testing.T) {
	p := inject.New(func(b *inject.Builder) {
		b.AddSingleton("n", inject.UseValue(7))
	})

	n, err := inject.Resolve[int](p.Begin(), "n")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if n != 7 {
		t.Errorf("got %d want 7", n)
	}
}

func TestResolve_TypeMismatchFails(t *testing.T) {
	p := inject.New(func(b *inject.Builder) {
		b.AddSingleton("n", inject.UseValue(7))
	})

	_, err := inject.Resolve[string](p.Begin(), "n")
	re := resolveErr(t, err)
	if !strings.Contains(re.Reason, "resolved to int") {
		t.Errorf("reason: got %q", re.Reason)
	}
}

func TestMustResolve_PanicsOnMismatch(t *testing.T) {
	p := inject.New(func(b *inject.Builder) {
		b.AddSingleton("n", inject.UseValue(7))
	})

	defer func() {
		if recover() == nil {
			t.Error("expected MustResolve to panic on type mismatch")
		}
	}()
	inject.MustResolve[string](p.Begin(), "n")
}
