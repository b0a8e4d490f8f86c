// Command arrangeview-demo opens a window with a demo arrangement in a
// timeline. Pass a .yml or .json arrangement file as the argument, or load
// one at runtime with the folder button; space toggles the transport.
package main

import (
	"bytes"
	_ "embed"
	"flag"
	"image"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/x/explorer"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/velhot/arrangeview"
	"github.com/velhot/arrangeview/timeline"
	"github.com/velhot/arrangeview/timeline/gioui"
)

//go:embed arrangement.yml
var defaultArrangement []byte

type (
	demoUI struct {
		theme    *timeline.Theme
		host     *gioui.Host
		tl       *timeline.Timeline
		arr      arrangeview.Arrangement
		explorer *explorer.Explorer
		loaded   chan arrangeview.Arrangement

		playing  bool
		lastTick float64 // gtx.Now of the previous frame, seconds

		playBtn, stopBtn, openBtn, saveBtn       widget.Clickable
		followBtn, snapBtn, zoomInBtn, zoomOutBtn widget.Clickable

		playIcon, pauseIcon, stopIcon, openIcon *widget.Icon
		saveIcon, followIcon, snapIcon          *widget.Icon
		zoomInIcon, zoomOutIcon                 *widget.Icon
	}

	C = layout.Context
	D = layout.Dimensions
)

func main() {
	flag.Parse()
	arr, err := arrangeview.Read(bytes.NewReader(defaultArrangement))
	if err != nil {
		log.Fatal(err)
	}
	if a := flag.Args(); len(a) > 0 {
		f, err := os.Open(a[0])
		if err != nil {
			log.Fatal(err)
		}
		arr, err = arrangeview.Read(f)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
	}
	d := newDemoUI(arr)
	go func() {
		d.main()
		os.Exit(0)
	}()
	app.Main()
}

func newDemoUI(arr arrangeview.Arrangement) *demoUI {
	theme, warn := timeline.NewTheme()
	if warn != nil {
		log.Println(warn)
	}
	shaper := text.NewShaper(text.WithCollection(gofont.Collection()))
	tl := timeline.New("demo")
	tl.Options.Measures = 12
	tl.Options.AutoFollowPlayhead = true
	return &demoUI{
		theme:  theme,
		host:   gioui.NewHost(theme, shaper),
		tl:     tl,
		arr:    arr,
		loaded: make(chan arrangeview.Arrangement),

		playIcon:    widgetForIcon(icons.AVPlayArrow),
		pauseIcon:   widgetForIcon(icons.AVPause),
		stopIcon:    widgetForIcon(icons.AVStop),
		openIcon:    widgetForIcon(icons.FileFolderOpen),
		saveIcon:    widgetForIcon(icons.ContentSave),
		followIcon:  widgetForIcon(icons.AVFastForward),
		snapIcon:    widgetForIcon(icons.ImageGridOn),
		zoomInIcon:  widgetForIcon(icons.ContentAdd),
		zoomOutIcon: widgetForIcon(icons.ContentRemove),
	}
}

func widgetForIcon(data []byte) *widget.Icon {
	ic, err := widget.NewIcon(data)
	if err != nil {
		panic(err)
	}
	return ic
}

func (d *demoUI) main() {
	w := new(app.Window)
	w.Option(app.Title("arrangeview demo"), app.Size(unit.Dp(1200), unit.Dp(640)))
	d.explorer = explorer.NewExplorer(w)
	events := make(chan event.Event)
	acks := make(chan struct{})
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()
	var ops op.Ops
	for {
		select {
		case arr := <-d.loaded:
			d.arr = arr
			w.Invalidate()
		case e := <-events:
			switch e := e.(type) {
			case app.DestroyEvent:
				acks <- struct{}{}
				if e.Err != nil {
					log.Println(e.Err)
				}
				return
			case app.FrameEvent:
				gtx := app.NewContext(&ops, e)
				d.layout(gtx)
				e.Frame(gtx.Ops)
				acks <- struct{}{}
			default:
				acks <- struct{}{}
			}
		}
	}
}

func (d *demoUI) layout(gtx C) {
	now := float64(gtx.Now.UnixNano()) / 1e9
	if d.playing {
		d.advanceTransport(float32(now - d.lastTick))
		gtx.Execute(op.InvalidateCmd{})
	}
	d.lastTick = now

	d.handleButtons(gtx)

	paint.Fill(gtx.Ops, d.theme.Background)
	layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(d.layoutToolbar),
		layout.Flexed(1, d.layoutTimeline),
	)

	// global transport keys
	event.Op(gtx.Ops, d)
	for {
		e, ok := gtx.Event(
			key.Filter{Name: key.NameSpace},
			key.Filter{Name: key.NameHome},
			key.Filter{Name: "O", Required: key.ModShortcut},
			key.Filter{Name: "S", Required: key.ModShortcut},
		)
		if !ok {
			break
		}
		if ke, ok := e.(key.Event); ok && ke.State == key.Press {
			switch ke.Name {
			case key.NameSpace:
				d.playing = !d.playing
			case key.NameHome:
				d.arr.Playhead = 0
				d.tl.Options.ScrollToBeat.Set(0)
			case "O":
				d.chooseArrangement()
			case "S":
				d.saveArrangement()
			}
		}
	}
}

// advanceTransport moves the playhead by dt seconds worth of beats, wrapping
// at the loop when one is set and at the arrangement end otherwise.
func (d *demoUI) advanceTransport(dt float32) {
	bpm := d.arr.BPM
	if bpm <= 0 {
		bpm = 120
	}
	d.arr.Playhead += dt * float32(bpm) / 60
	if loop := d.arr.Loop; loop.Length() > 0 && d.arr.Playhead >= loop.End {
		d.arr.Playhead = loop.Start
		return
	}
	end := float32(d.tl.Options.Measures * d.tl.Options.BeatsPerMeasure)
	if d.arr.Playhead >= end {
		d.arr.Playhead = 0
	}
}

func (d *demoUI) handleButtons(gtx C) {
	if d.playBtn.Clicked(gtx) {
		d.playing = !d.playing
	}
	if d.stopBtn.Clicked(gtx) {
		d.playing = false
		d.arr.Playhead = 0
		d.tl.Options.ScrollToBeat.Set(0)
	}
	if d.openBtn.Clicked(gtx) {
		d.chooseArrangement()
	}
	if d.saveBtn.Clicked(gtx) {
		d.saveArrangement()
	}
	if d.followBtn.Clicked(gtx) {
		d.tl.Options.AutoFollowPlayhead = !d.tl.Options.AutoFollowPlayhead
	}
	if d.snapBtn.Clicked(gtx) {
		d.tl.Options.SnapToGrid = !d.tl.Options.SnapToGrid
	}
	if d.zoomInBtn.Clicked(gtx) {
		d.tl.Options.BeatWidth *= 1.25
	}
	if d.zoomOutBtn.Clicked(gtx) {
		d.tl.Options.BeatWidth /= 1.25
	}
}

func (d *demoUI) layoutToolbar(gtx C) D {
	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	rec := op.Record(gtx.Ops)
	dims := layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx C) D {
		playIcon := d.playIcon
		if d.playing {
			playIcon = d.pauseIcon
		}
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(d.iconButton(&d.openBtn, d.openIcon, true)),
			layout.Rigid(d.iconButton(&d.saveBtn, d.saveIcon, true)),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Rigid(d.iconButton(&d.playBtn, playIcon, true)),
			layout.Rigid(d.iconButton(&d.stopBtn, d.stopIcon, true)),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Rigid(d.iconButton(&d.followBtn, d.followIcon, d.tl.Options.AutoFollowPlayhead)),
			layout.Rigid(d.iconButton(&d.snapBtn, d.snapIcon, d.tl.Options.SnapToGrid)),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Rigid(d.iconButton(&d.zoomOutBtn, d.zoomOutIcon, true)),
			layout.Rigid(d.iconButton(&d.zoomInBtn, d.zoomInIcon, true)),
		)
	})
	call := rec.Stop()
	paint.FillShape(gtx.Ops, d.theme.Card, clip.Rect(image.Rectangle{Max: dims.Size}).Op())
	call.Add(gtx.Ops)
	return dims
}

func (d *demoUI) iconButton(btn *widget.Clickable, ic *widget.Icon, active bool) layout.Widget {
	c := d.theme.MutedForeground
	if active {
		c = d.theme.Foreground
	}
	return func(gtx C) D {
		return btn.Layout(gtx, func(gtx C) D {
			return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx C) D {
				size := gtx.Dp(unit.Dp(20))
				gtx.Constraints.Min = image.Pt(size, size)
				return ic.Layout(gtx, c)
			})
		})
	}
}

func (d *demoUI) layoutTimeline(gtx C) D {
	r := timeline.Rct(0, 0, float32(gtx.Constraints.Max.X), float32(gtx.Constraints.Max.Y))
	ctx := d.host.Frame(gtx, r)
	ev := d.tl.Show(ctx, r, &d.arr)
	d.applySelection(ev)
	return D{Size: gtx.Constraints.Max}
}

// applySelection turns the engine's additive clicks into the exclusive
// selection most DAWs have: clicking a region or a track header deselects
// everything else.
func (d *demoUI) applySelection(ev timeline.Events) {
	ref, regionClicked := ev.RegionClicked.Unpack()
	trk, trackClicked := ev.TrackClicked.Unpack()
	if !regionClicked && !trackClicked {
		return
	}
	for i, ft := range timeline.Flatten(d.arr.Tracks) {
		if trackClicked {
			ft.Track.Selected = i == trk
		}
		if regionClicked {
			for ri := range ft.Track.Regions {
				ft.Track.Regions[ri].Selected = i == ref.Track && ri == ref.Region
			}
		}
	}
}

func (d *demoUI) chooseArrangement() {
	go func() {
		file, err := d.explorer.ChooseFile(".yml", ".json")
		if err != nil {
			if err != explorer.ErrUserDecline {
				log.Println(err)
			}
			return
		}
		arr, err := arrangeview.Read(file)
		file.Close()
		if err != nil {
			log.Println(err)
			return
		}
		d.loaded <- arr
	}()
}

func (d *demoUI) saveArrangement() {
	arr := d.arr.Copy()
	go func() {
		file, err := d.explorer.CreateFile("arrangement.yml")
		if err != nil {
			if err != explorer.ErrUserDecline {
				log.Println(err)
			}
			return
		}
		err = arr.Write(file)
		if cerr := file.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			log.Println(err)
		}
	}()
}
