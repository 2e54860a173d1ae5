package axis_test

import (
	"errors"
	"testing"

	"github.com/desertthunder/playaxis/internal/axis"
	"github.com/desertthunder/playaxis/internal/shared"
	tu "github.com/desertthunder/playaxis/internal/testing"
)

func TestReady(t *testing.T) {
	cases := []struct {
		name     string
		snapshot *axis.Snapshot
		want     bool
	}{
		{"nil snapshot", nil, false},
		{"nil categorical", &axis.Snapshot{}, false},
		{"no categories", &axis.Snapshot{Categorical: &axis.Categorical{}}, false},
		{
			"undefined source",
			&axis.Snapshot{Categorical: &axis.Categorical{
				Categories: []axis.CategoryColumn{{Source: "", Values: []any{"a"}}},
			}},
			false,
		},
		{"bound category field", tu.NewSnapshot("month", "Jan"), true},
		{"bound but empty rows", tu.NewSnapshot("month"), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := axis.Ready(tc.snapshot); got != tc.want {
				t.Errorf("Ready() = %t, want %t", got, tc.want)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	t.Run("builds one point per row in host order", func(t *testing.T) {
		snapshot := tu.NewSnapshot("month", "Jan", "Feb", "Mar")

		vm, err := axis.Build(snapshot, shared.DefaultConfig(), tu.SeqIdentity{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(vm.DataPoints) != 3 {
			t.Fatalf("expected 3 points, got %d", len(vm.DataPoints))
		}

		want := []axis.DataPoint{
			{Category: "Jan", SelectionID: "month:0"},
			{Category: "Feb", SelectionID: "month:1"},
			{Category: "Mar", SelectionID: "month:2"},
		}
		for i, point := range want {
			if vm.DataPoints[i] != point {
				t.Errorf("point %d: expected %+v, got %+v", i, point, vm.DataPoints[i])
			}
		}
	})

	t.Run("stringifies non-string cells", func(t *testing.T) {
		snapshot := tu.NewSnapshot("year", 2023, 2024, nil)

		vm, err := axis.Build(snapshot, shared.DefaultConfig(), tu.SeqIdentity{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if vm.DataPoints[0].Category != "2023" {
			t.Errorf("expected 2023, got %q", vm.DataPoints[0].Category)
		}
		if vm.DataPoints[2].Category != "(blank)" {
			t.Errorf("expected (blank) for nil cell, got %q", vm.DataPoints[2].Category)
		}
	})

	t.Run("not-ready snapshot returns ErrNotReady", func(t *testing.T) {
		_, err := axis.Build(&axis.Snapshot{}, shared.DefaultConfig(), tu.SeqIdentity{})
		if !errors.Is(err, shared.ErrNotReady) {
			t.Errorf("expected ErrNotReady, got %v", err)
		}
	})

	t.Run("nil config falls back to defaults", func(t *testing.T) {
		vm, err := axis.Build(tu.NewSnapshot("m", "a"), nil, tu.SeqIdentity{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if vm.Settings.Playback.StepInterval != 5 {
			t.Errorf("expected default interval 5, got %d", vm.Settings.Playback.StepInterval)
		}
	})
}

func TestResolveSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		settings := axis.ResolveSettings(shared.DefaultConfig())

		if settings.Playback.AutoStart {
			t.Error("expected autoStart default false")
		}
		if settings.Playback.Loop {
			t.Error("expected loop default false")
		}
		if settings.Playback.StepInterval != 5 {
			t.Errorf("expected interval default 5, got %d", settings.Playback.StepInterval)
		}
		if !settings.Caption.Show {
			t.Error("expected caption shown by default")
		}
	})

	t.Run("clamps the step interval", func(t *testing.T) {
		cases := []struct {
			name string
			in   int
			want int
		}{
			{"below minimum", 0, 1},
			{"negative", -7, 1},
			{"above maximum", 300, 60},
			{"in range", 12, 12},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				config := shared.DefaultConfig()
				config.Playback.StepInterval = tc.in

				settings := axis.ResolveSettings(config)
				if settings.Playback.StepInterval != tc.want {
					t.Errorf("expected interval %d, got %d", tc.want, settings.Playback.StepInterval)
				}
			})
		}
	})
}

func TestButtonColor(t *testing.T) {
	appearance := axis.AppearanceSettings{
		ShowAll:       false,
		PickedColor:   "#111111",
		PlayColor:     "#222222",
		PauseColor:    "#333333",
		StopColor:     "#444444",
		PreviousColor: "#555555",
		NextColor:     "#666666",
	}

	t.Run("single color mode uses the picked color everywhere", func(t *testing.T) {
		for _, button := range []string{"play", "pause", "stop", "previous", "next"} {
			if got := appearance.ButtonColor(button); got != "#111111" {
				t.Errorf("%s: expected picked color, got %s", button, got)
			}
		}
	})

	t.Run("per-button mode uses each button's color", func(t *testing.T) {
		appearance := appearance
		appearance.ShowAll = true

		cases := map[string]string{
			"play":     "#222222",
			"pause":    "#333333",
			"stop":     "#444444",
			"previous": "#555555",
			"next":     "#666666",
		}
		for button, want := range cases {
			if got := appearance.ButtonColor(button); got != want {
				t.Errorf("%s: expected %s, got %s", button, want, got)
			}
		}
	})
}
