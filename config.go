package joystick

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Config configures a Controller or Widget. Visuals and callbacks are set in
// code; the remaining fields can also be loaded from YAML with LoadConfig.
type Config struct {
	// Outer is the base visual and Inner the draggable stick. NewController
	// requires both; NewWidget substitutes circle placeholders when nil.
	Outer Visual `yaml:"-"`
	Inner Visual `yaml:"-"`

	// Position is the joystick center in screen coordinates (Widget only).
	Position Vec2 `yaml:"position"`

	// Scales applied to the visuals before the radii are measured.
	// The zero value means {1, 1}.
	OuterScale Vec2 `yaml:"outer_scale"`
	InnerScale Vec2 `yaml:"inner_scale"`

	// Inner alpha while dragging and while idle. Nil means the default
	// (1 and 0.5 respectively); an explicit 0 hides the stick. Use Float64
	// to set them in code.
	ActiveAlpha  *float64 `yaml:"active_alpha"`
	StandbyAlpha *float64 `yaml:"standby_alpha"`

	// FadeDuration in seconds animates the alpha change with FadeEase.
	// Zero switches alpha instantly.
	FadeDuration float32 `yaml:"fade_duration"`
	FadeEase     string  `yaml:"fade_ease"`

	// FixedOrigin measures displacement from the widget center instead of
	// from the press position (Widget only).
	FixedOrigin bool `yaml:"fixed_origin"`

	OnStart  func()            `yaml:"-"`
	OnEnd    func()            `yaml:"-"`
	OnChange func(ChangeEvent) `yaml:"-"`
}

const (
	defaultActiveAlpha  = 1.0
	defaultStandbyAlpha = DefaultPlaceholderAlpha
)

// Float64 returns a pointer to v, for the optional Config fields.
func Float64(v float64) *float64 {
	return &v
}

// DefaultConfig returns a Config with every tunable at its default.
func DefaultConfig() Config {
	return Config{
		OuterScale:   Vec2{1, 1},
		InnerScale:   Vec2{1, 1},
		ActiveAlpha:  Float64(defaultActiveAlpha),
		StandbyAlpha: Float64(defaultStandbyAlpha),
		FadeEase:     "linear",
	}
}

// LoadConfig parses YAML over DefaultConfig and validates the result.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse joystick config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("parse joystick config: %w", err)
	}
	return cfg, nil
}

// withDefaults returns a copy with zero-valued tunables replaced by defaults.
func (c Config) withDefaults() Config {
	if c.OuterScale == (Vec2{}) {
		c.OuterScale = Vec2{1, 1}
	}
	if c.InnerScale == (Vec2{}) {
		c.InnerScale = Vec2{1, 1}
	}
	if c.ActiveAlpha == nil {
		c.ActiveAlpha = Float64(defaultActiveAlpha)
	}
	if c.StandbyAlpha == nil {
		c.StandbyAlpha = Float64(defaultStandbyAlpha)
	}
	return c
}

var errNegativeFade = errors.New("fade_duration must not be negative")

func (c Config) validate() error {
	if c.FadeDuration < 0 {
		return errNegativeFade
	}
	if err := checkAlpha("active_alpha", c.ActiveAlpha); err != nil {
		return err
	}
	if err := checkAlpha("standby_alpha", c.StandbyAlpha); err != nil {
		return err
	}
	if _, err := EaseByName(c.FadeEase); err != nil {
		return err
	}
	return nil
}

func checkAlpha(name string, a *float64) error {
	if a != nil && (*a < 0 || *a > 1 || math.IsNaN(*a)) {
		return fmt.Errorf("%s %v out of range [0, 1]", name, *a)
	}
	return nil
}
