package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ironsheep/icon-cleaner/internal/imaging"
	"github.com/ironsheep/icon-cleaner/internal/segment"
)

// Mode selects how the selection mask is derived from the threshold mask.
type Mode string

const (
	// ModeComponents drops noise and frame components before composing.
	ModeComponents Mode = "components"

	// ModeThreshold keeps every pixel at or below the threshold.
	ModeThreshold Mode = "threshold"
)

// CleanSuffix is inserted before the extension of derived output paths.
const CleanSuffix = "_clean"

// Environment variables read by WithEnv.
const (
	EnvThreshold     = "ICON_CLEANER_THRESHOLD"
	EnvNoiseFloor    = "ICON_CLEANER_NOISE_FLOOR"
	EnvFrameCoverage = "ICON_CLEANER_FRAME_COVERAGE"
	EnvDilate        = "ICON_CLEANER_DILATE"
	EnvColor         = "ICON_CLEANER_COLOR"
	EnvMode          = "ICON_CLEANER_MODE"
)

// Config controls one extraction.
type Config struct {
	// Threshold is the luminance level; pixels at or below it are content.
	Threshold uint8 `json:"threshold"`

	// NoiseFloor is the minimum component area in pixels.
	NoiseFloor int `json:"noise_floor"`

	// FrameCoverage is the bounding-box coverage (0-1] above which a
	// component is treated as the enclosing frame.
	FrameCoverage float64 `json:"frame_coverage"`

	// Mode is ModeComponents or ModeThreshold. Empty means ModeComponents.
	Mode Mode `json:"mode"`

	// Dilate grows the kept mask by this radius in pixels. 0 keeps edges sharp.
	Dilate float64 `json:"dilate"`

	// Color is the foreground colour as hex. Empty means white.
	Color string `json:"color"`

	// Trim crops the result to the kept artwork plus Padding pixels.
	Trim    bool `json:"trim"`
	Padding int  `json:"padding"`

	// DebugPath, when set, receives an overlay of the source with every
	// component tinted by class.
	DebugPath string `json:"debug_path,omitempty"`

	// Verbose logs one line per component.
	Verbose bool `json:"-"`
}

// Hands is the preset for light-background hand icons with a drawn frame.
func Hands() Config {
	return Config{
		Threshold:     200,
		NoiseFloor:    segment.DefaultNoiseFloor,
		FrameCoverage: segment.DefaultFrameCoverage,
		Mode:          ModeComponents,
		Color:         "#FFFFFF",
	}
}

// Wave is the preset for the darker-background wave icon.
func Wave() Config {
	c := Hands()
	c.Threshold = 100
	return c
}

// Preset returns the named preset: "hands" or "wave".
func Preset(name string) (Config, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "hands":
		return Hands(), nil
	case "wave":
		return Wave(), nil
	}
	return Config{}, fmt.Errorf("unknown preset: %s", name)
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch c.Mode {
	case "", ModeComponents, ModeThreshold:
	default:
		return fmt.Errorf("unknown mode: %s", c.Mode)
	}
	if c.NoiseFloor < 0 {
		return fmt.Errorf("noise floor must be >= 0, got %d", c.NoiseFloor)
	}
	if c.FrameCoverage <= 0 || c.FrameCoverage > 1 {
		return fmt.Errorf("frame coverage must be in (0, 1], got %g", c.FrameCoverage)
	}
	if c.Dilate < 0 {
		return fmt.Errorf("dilate radius must be >= 0, got %g", c.Dilate)
	}
	if c.Padding < 0 {
		return fmt.Errorf("padding must be >= 0, got %d", c.Padding)
	}
	if c.Color != "" {
		if _, err := imaging.ParseColor(c.Color); err != nil {
			return err
		}
	}
	return nil
}

// classifier returns the segment classifier for this config.
func (c Config) classifier() segment.Classifier {
	return segment.Classifier{
		NoiseFloor:    c.NoiseFloor,
		FrameCoverage: c.FrameCoverage,
	}
}

// WithEnv overlays the ICON_CLEANER_* variables found through getenv.
// Unset or empty variables leave the field untouched.
func (c Config) WithEnv(getenv func(string) string) (Config, error) {
	if v := getenv(EnvThreshold); v != "" {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvThreshold, err)
		}
		c.Threshold = uint8(n)
	}
	if v := getenv(EnvNoiseFloor); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvNoiseFloor, err)
		}
		c.NoiseFloor = n
	}
	if v := getenv(EnvFrameCoverage); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvFrameCoverage, err)
		}
		c.FrameCoverage = f
	}
	if v := getenv(EnvDilate); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvDilate, err)
		}
		c.Dilate = f
	}
	if v := getenv(EnvColor); v != "" {
		c.Color = v
	}
	if v := getenv(EnvMode); v != "" {
		c.Mode = Mode(strings.ToLower(v))
	}
	return c, c.Validate()
}
