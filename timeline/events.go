package timeline

import "github.com/velhot/arrangeview/timeline/types"

type (
	// Events summarizes everything the user did to the timeline this frame.
	// Track indices refer to the flat track list; the engine has already
	// written the edits into the borrowed model, but the caller stays
	// authoritative and may re-validate or undo them.
	Events struct {
		TrackClicked         types.Optional[int]
		TrackMuteClicked     types.Optional[int]
		TrackSoloClicked     types.Optional[int]
		TrackArmClicked      types.Optional[int]
		TrackCollapseClicked types.Optional[int]

		RegionClicked       types.Optional[RegionRef]
		RegionDoubleClicked types.Optional[RegionRef] // rename request
		RegionEdgeDragged   types.Optional[RegionEdgeDrag]
		FadeHandleDragged   types.Optional[FadeDrag]
		RegionBodyDragged   types.Optional[RegionMove]

		EmptyClicked  types.Optional[EmptyClick]
		PlayheadMoved types.Optional[float32] // new position, beats
		MarkerMoved   types.Optional[int]     // point marker index, on release
	}

	RegionRef struct {
		Track  int
		Region int
	}

	RegionEdgeDrag struct {
		Track  int
		Region int
		Edge   RegionEdge
		Beats  float32 // new position of the dragged edge
	}

	FadeDrag struct {
		Track  int
		Region int
		Handle FadeHandle
		Beats  float32 // new fade length
	}

	RegionMove struct {
		Track  int
		Region int
		Start  float32 // new region start
	}

	EmptyClick struct {
		Track int
		Beat  float32
	}

	RegionEdge int
	FadeHandle int
)

const (
	EdgeStart RegionEdge = iota
	EdgeEnd
)

const (
	FadeIn FadeHandle = iota
	FadeOut
)
