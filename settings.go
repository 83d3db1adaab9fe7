package hud

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Settings holds the tunables of a canvas. Files may be TOML or YAML; keys
// missing from a file keep their DefaultSettings value.
type Settings struct {
	// LongPressMS is how long a press must be held inside a widget before it
	// starts dragging.
	LongPressMS int `toml:"long_press_ms" yaml:"long_press_ms"`
	// Widget scale limits and wheel step while dragging, in percent.
	ScaleMinPercent  int `toml:"scale_min_percent" yaml:"scale_min_percent"`
	ScaleMaxPercent  int `toml:"scale_max_percent" yaml:"scale_max_percent"`
	ScaleStepPercent int `toml:"scale_step_percent" yaml:"scale_step_percent"`
	// ResolutionPollFrames is the tick interval of the resolution check.
	ResolutionPollFrames int `toml:"resolution_poll_frames" yaml:"resolution_poll_frames"`
	// Assets is the texture directory scanned when a canvas starts.
	Assets string `toml:"assets" yaml:"assets"`
	// HighlightFadeSeconds is the hover highlight fade duration. Zero snaps.
	HighlightFadeSeconds float64 `toml:"highlight_fade_seconds" yaml:"highlight_fade_seconds"`
	// PauseOnInteract pauses the host instead of disabling world controls.
	PauseOnInteract bool `toml:"pause_on_interact" yaml:"pause_on_interact"`
	Debug           bool `toml:"debug" yaml:"debug"`
}

// DefaultSettings returns the stock tunables.
func DefaultSettings() Settings {
	return Settings{
		LongPressMS:          500,
		ScaleMinPercent:      50,
		ScaleMaxPercent:      200,
		ScaleStepPercent:     5,
		ResolutionPollFrames: 30,
		Assets:               "textures",
		HighlightFadeSeconds: 0.15,
	}
}

// LongPress returns the drag threshold as a duration.
func (s Settings) LongPress() time.Duration {
	return time.Duration(s.LongPressMS) * time.Millisecond
}

// ScaleRange returns the widget scale limits as factors.
func (s Settings) ScaleRange() (lo, hi float64) {
	return float64(s.ScaleMinPercent) / 100, float64(s.ScaleMaxPercent) / 100
}

// ScaleStep returns the per-wheel-step widget scale change as a factor.
func (s Settings) ScaleStep() float64 {
	return float64(s.ScaleStepPercent) / 100
}

// Validate reports inconsistent settings.
func (s Settings) Validate() error {
	var errs []error
	if s.LongPressMS <= 0 {
		errs = append(errs, fmt.Errorf("long_press_ms must be positive, got %d", s.LongPressMS))
	}
	if s.ScaleMinPercent <= 0 {
		errs = append(errs, fmt.Errorf("scale_min_percent must be positive, got %d", s.ScaleMinPercent))
	}
	if s.ScaleMaxPercent < s.ScaleMinPercent {
		errs = append(errs, fmt.Errorf("scale_max_percent %d is below scale_min_percent %d",
			s.ScaleMaxPercent, s.ScaleMinPercent))
	}
	if s.ScaleStepPercent < 0 {
		errs = append(errs, fmt.Errorf("scale_step_percent must not be negative, got %d", s.ScaleStepPercent))
	}
	if s.ResolutionPollFrames <= 0 {
		errs = append(errs, fmt.Errorf("resolution_poll_frames must be positive, got %d", s.ResolutionPollFrames))
	}
	if len(errs) > 0 {
		return fmt.Errorf("hud: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}

// LoadSettings reads a .toml, .yaml or .yml file. A missing file yields the
// defaults without error.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Info("hud: settings file not found, using defaults", "path", path)
		return DefaultSettings(), nil
	}
	if err != nil {
		return DefaultSettings(), fmt.Errorf("hud: read settings: %w", err)
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return ParseSettings(data, format)
}

// ParseSettings decodes settings in the given format ("toml", "yaml" or
// "yml") on top of the defaults and validates the result.
func ParseSettings(data []byte, format string) (Settings, error) {
	s := DefaultSettings()
	var err error
	switch format {
	case "toml":
		err = toml.Unmarshal(data, &s)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &s)
	default:
		return DefaultSettings(), fmt.Errorf("hud: unsupported settings format %q", format)
	}
	if err != nil {
		return DefaultSettings(), fmt.Errorf("hud: parse %s settings: %w", format, err)
	}
	if err := s.Validate(); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}
