package timeline_test

import (
	"testing"

	"github.com/velhot/arrangeview/timeline"
)

func TestIDStable(t *testing.T) {
	if timeline.NewID("demo") != timeline.NewID("demo") {
		t.Error("same name should hash to the same id")
	}
	if timeline.NewID("a") == timeline.NewID("b") {
		t.Error("different names should hash to different ids")
	}
}

func TestIDNamespacing(t *testing.T) {
	root := timeline.NewID("demo")
	if root.With("scroll") == root.With("momentum") {
		t.Error("different keys under one root collided")
	}
	if root.With("scroll") == timeline.NewID("other").With("scroll") {
		t.Error("same key under different roots collided")
	}
	if root.WithInt(0) == root.WithInt(1) {
		t.Error("different indices collided")
	}
	if root.With("lane").WithInt(3) == root.With("header").WithInt(3) {
		t.Error("same index in different namespaces collided")
	}
}

func TestThemeDefaults(t *testing.T) {
	th, warn := timeline.NewTheme()
	if th == nil {
		t.Fatal("no theme")
	}
	_ = warn // a broken user override is a warning, not a failure
	if th.TextSize <= 0 {
		t.Errorf("text size: %v", th.TextSize)
	}
	if th.Background.A == 0 || th.Primary.A == 0 {
		t.Error("default palette has transparent core colors")
	}
	if th.Spacing.XL <= th.Spacing.XS {
		t.Error("spacing scale is not increasing")
	}
}

func TestWithAlpha(t *testing.T) {
	th, _ := timeline.NewTheme()
	c := timeline.WithAlpha(th.Primary, 40)
	if c.A != 40 {
		t.Errorf("alpha: got %d, expected 40", c.A)
	}
	if c.R != th.Primary.R || c.G != th.Primary.G || c.B != th.Primary.B {
		t.Error("with_alpha changed the color channels")
	}
}
