package arrangeview

import "image/color"

type (
	// Track is one row in the timeline. A track is either a leaf carrying
	// regions, or a folder whose children render below it while it is
	// expanded. Only folders may have children; Collapsed is meaningless on
	// a leaf and ignored.
	Track struct {
		Name     string        `yaml:",omitempty"`
		Color    color.NRGBA   `yaml:",flow,omitempty"`
		Controls TrackControls `yaml:",omitempty"`
		Selected bool          `yaml:",omitempty"`
		IsFolder bool          `yaml:"folder,omitempty"`

		// Collapsed hides the children of a folder track. The track itself
		// stays visible.
		Collapsed bool `yaml:",omitempty"`

		Regions  []Region `yaml:",omitempty"`
		Children []Track  `yaml:",omitempty"`
	}

	// TrackControls are the three per-track toggles of the header column.
	TrackControls struct {
		Muted  bool `yaml:",omitempty"`
		Soloed bool `yaml:",omitempty"`
		Armed  bool `yaml:",omitempty"`
	}
)

func (t *Track) Copy() Track {
	regions := make([]Region, len(t.Regions))
	for i, r := range t.Regions {
		regions[i] = r.Copy()
	}
	children := make([]Track, len(t.Children))
	for i, c := range t.Children {
		children[i] = c.Copy()
	}
	ret := *t
	ret.Regions = regions
	ret.Children = children
	return ret
}

// HasColor tells whether the track carries an explicit color; a fully
// transparent zero value means "inherit".
func (t *Track) HasColor() bool {
	return t.Color.A > 0
}

func (t *Track) clamp() {
	for i := range t.Regions {
		t.Regions[i].Clamp()
	}
	for i := range t.Children {
		t.Children[i].clamp()
	}
}
