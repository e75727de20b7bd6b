package joystick

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.OuterScale != (Vec2{1, 1}) || cfg.InnerScale != (Vec2{1, 1}) {
		t.Errorf("scales = %+v %+v, want {1 1}", cfg.OuterScale, cfg.InnerScale)
	}
	if *cfg.ActiveAlpha != 1 || *cfg.StandbyAlpha != 0.5 {
		t.Errorf("alphas = %v/%v, want 1/0.5", *cfg.ActiveAlpha, *cfg.StandbyAlpha)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	data := []byte(`
position: {x: 120, y: 400}
outer_scale: {x: 0.5, y: 0.5}
inner_scale: {x: 0.8, y: 0.8}
standby_alpha: 0.4
fade_duration: 0.2
fade_ease: outQuad
fixed_origin: true
`)
	cfg, err := LoadConfig(data)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Position != (Vec2{120, 400}) {
		t.Errorf("Position = %+v", cfg.Position)
	}
	if cfg.OuterScale != (Vec2{0.5, 0.5}) || cfg.InnerScale != (Vec2{0.8, 0.8}) {
		t.Errorf("scales = %+v %+v", cfg.OuterScale, cfg.InnerScale)
	}
	if *cfg.StandbyAlpha != 0.4 {
		t.Errorf("StandbyAlpha = %v, want 0.4", *cfg.StandbyAlpha)
	}
	if *cfg.ActiveAlpha != 1 {
		t.Errorf("ActiveAlpha = %v, want default 1", *cfg.ActiveAlpha)
	}
	if cfg.FadeDuration != 0.2 || cfg.FadeEase != "outQuad" || !cfg.FixedOrigin {
		t.Errorf("fade/origin = %v %q %v", cfg.FadeDuration, cfg.FadeEase, cfg.FixedOrigin)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "outer_scale: [1, 2"},
		{"negative fade", "fade_duration: -1"},
		{"alpha out of range", "active_alpha: 1.5"},
		{"negative standby alpha", "standby_alpha: -0.1"},
		{"unknown ease", "fade_ease: wobble"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{StandbyAlpha: Float64(0.1)}.withDefaults()
	if cfg.OuterScale != (Vec2{1, 1}) || cfg.InnerScale != (Vec2{1, 1}) {
		t.Errorf("zero scales not defaulted: %+v %+v", cfg.OuterScale, cfg.InnerScale)
	}
	if *cfg.ActiveAlpha != 1 {
		t.Errorf("ActiveAlpha = %v, want 1", *cfg.ActiveAlpha)
	}
	if *cfg.StandbyAlpha != 0.1 {
		t.Errorf("StandbyAlpha = %v, want 0.1 (explicit value kept)", *cfg.StandbyAlpha)
	}
}

func TestLoadConfigExplicitZeroAlpha(t *testing.T) {
	cfg, err := LoadConfig([]byte("standby_alpha: 0\n"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	cfg = cfg.withDefaults()
	if *cfg.StandbyAlpha != 0 {
		t.Errorf("StandbyAlpha = %v, want explicit 0 kept", *cfg.StandbyAlpha)
	}
	if *cfg.ActiveAlpha != 1 {
		t.Errorf("ActiveAlpha = %v, want default 1", *cfg.ActiveAlpha)
	}
}
