package demo

import (
	"github.com/gogpu/ggcv"
	"github.com/gogpu/ggcv/capture"
	"github.com/gogpu/ggcv/gui"
	"github.com/gogpu/ggcv/internal/config"
)

// preview reads one video frame per layout and fits it into the Preview
// panel.
type preview struct {
	src     capture.Source
	policy  config.FailurePolicy
	video   *ggcv.Frame
	resized *ggcv.Frame

	// good is true once a frame has been read and scaled.
	good     bool
	degraded bool
}

func newPreview(src capture.Source, policy config.FailurePolicy) preview {
	return preview{
		src:     src,
		policy:  policy,
		video:   ggcv.NewFrame(0, 0),
		resized: ggcv.NewFrame(0, 0),
	}
}

// update reads the next frame and rescales it to fit bounds. It reports
// whether there is a frame to show.
func (p *preview) update(bounds gui.Rect) bool {
	if !p.src.Read(p.video) || p.video.Empty() {
		if !p.degraded {
			ggcv.Logger().Warn("demo: capture read failed", "policy", p.policy, "have_frame", p.good)
			p.degraded = true
		}
		return p.good && p.policy == config.FailureReuse
	}
	if p.degraded {
		ggcv.Logger().Info("demo: capture recovered")
		p.degraded = false
	}

	fx := bounds.W / float64(p.video.Width())
	fy := bounds.H / float64(p.video.Height())
	f := min(fx, fy)
	ggcv.Resize(p.resized, p.video, f, f)
	p.good = !p.resized.Empty()
	return p.good
}

func (p *preview) layout(ctx *gui.Context) {
	bounds := ctx.Content()
	show := p.update(bounds)
	ctx.LayoutRowDynamic(bounds.H, 1)
	if show {
		ctx.Image(p.resized)
	}
}
