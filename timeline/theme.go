package timeline

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

type (
	// Theme is the read-only palette the engine draws with. The embedded
	// defaults can be overridden by a theme.yml in the user config
	// directory; only the keys present in the file are replaced.
	Theme struct {
		Primary         color.NRGBA    `yaml:",flow"`
		Secondary       color.NRGBA    `yaml:",flow"`
		Background      color.NRGBA    `yaml:",flow"`
		Card            color.NRGBA    `yaml:",flow"`
		Border          color.NRGBA    `yaml:",flow"`
		Muted           color.NRGBA    `yaml:",flow"`
		Foreground      color.NRGBA    `yaml:",flow"`
		MutedForeground color.NRGBA    `yaml:"muted_foreground,flow"`
		Destructive     color.NRGBA    `yaml:",flow"`
		Chart           [5]color.NRGBA `yaml:",flow"`
		TextSize        float32        `yaml:"text_size"`
		Spacing         Spacing
	}

	Spacing struct {
		XS                float32 `yaml:"xs"`
		SM                float32 `yaml:"sm"`
		MD                float32 `yaml:"md"`
		LG                float32 `yaml:"lg"`
		XL                float32 `yaml:"xl"`
		CornerRadiusSmall float32 `yaml:"corner_radius_small"`
	}
)

//go:embed theme.yml
var defaultThemeYaml []byte

// NewTheme returns the default palette, overlaid with the user's theme.yml
// if one exists. A broken user file is reported as a warning; the defaults
// still apply.
func NewTheme() (*Theme, error) {
	var theme Theme
	if err := yaml.UnmarshalStrict(defaultThemeYaml, &theme); err != nil {
		panic(fmt.Errorf("failed to unmarshal default theme: %w", err))
	}
	exists, err := ReadCustomConfigYml("theme.yml", &theme)
	if exists && err != nil {
		return &theme, fmt.Errorf("theme.yml: %w", err)
	}
	return &theme, nil
}

// ReadCustomConfigYml modifies the target argument, i.e. needs a pointer
func ReadCustomConfigYml(filename string, target interface{}) (exists bool, err error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return false, err
	}
	path := filepath.Join(configDir, "arrangeview", filename)
	bytes, err2 := os.ReadFile(path)
	if err2 != nil {
		return false, err2
	}
	err = yaml.Unmarshal(bytes, target)
	return true, err
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

func lerpColor(a, b color.NRGBA, t float32) color.NRGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}
