package timeline

import (
	"image/color"

	"github.com/velhot/arrangeview"
)

type (
	// FlatTrack is one visible row of the flattened track tree.
	FlatTrack struct {
		Track  *arrangeview.Track
		Path   []int // child indices from the root
		Index  int   // position in the flat list; stable while the tree shape is
		Indent int
		// ParentColor is the effective color of the enclosing folder, used
		// for the lineage gradient on header color bars. Zero alpha at the
		// root.
		ParentColor color.NRGBA
	}
)

// Flatten walks the track tree depth-first in pre-order, descending into a
// folder's children only while it is expanded. The result is rebuilt every
// frame; it only holds pointers into the caller's tree, valid for the
// frame.
func Flatten(tracks []arrangeview.Track) []FlatTrack {
	var flat []FlatTrack
	var walk func(tracks []arrangeview.Track, path []int, depth int, parent color.NRGBA)
	walk = func(tracks []arrangeview.Track, path []int, depth int, parent color.NRGBA) {
		for i := range tracks {
			t := &tracks[i]
			p := make([]int, len(path)+1)
			copy(p, path)
			p[len(path)] = i
			flat = append(flat, FlatTrack{
				Track:       t,
				Path:        p,
				Index:       len(flat),
				Indent:      depth,
				ParentColor: parent,
			})
			if t.IsFolder && !t.Collapsed {
				pc := t.Color
				if !t.HasColor() {
					pc = parent
				}
				walk(t.Children, p, depth+1, pc)
			}
		}
	}
	walk(tracks, nil, 0, color.NRGBA{})
	return flat
}

// CountVisible returns how many rows Flatten would produce.
func CountVisible(tracks []arrangeview.Track) int {
	n := 0
	for i := range tracks {
		n++
		if tracks[i].IsFolder && !tracks[i].Collapsed {
			n += CountVisible(tracks[i].Children)
		}
	}
	return n
}

// TrackAt resolves a path of child indices to a track. Ill-formed paths
// report false; the caller skips that row and carries on.
func TrackAt(tracks []arrangeview.Track, path []int) (*arrangeview.Track, bool) {
	if len(path) == 0 {
		return nil, false
	}
	cur := tracks
	var t *arrangeview.Track
	for _, i := range path {
		if i < 0 || i >= len(cur) {
			return nil, false
		}
		t = &cur[i]
		cur = t.Children
	}
	return t, true
}
