package nodeimg

import (
	"context"
	"errors"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/nodeimg/internal/encode"
	"github.com/gogpu/nodeimg/node"
)

// Frame is one frame of an animation: a tree shown for Duration
// milliseconds.
type Frame struct {
	Root     *node.Node
	Duration uint32
}

// RenderAnimation renders every frame in vp and writes them to w as an
// animated PNG (format PNG) or animated WebP (format WebP).
//
// Images of all frames are resolved in one fetch phase. Frames are then
// rendered concurrently and written in order. The first frame that fails
// cancels the rest and its error is returned; nothing is written.
func RenderAnimation(ctx context.Context, w io.Writer, frames []Frame, vp Viewport, g *GlobalContext, format Format, opts ...AnimationOption) error {
	o := defaultAnimationOptions()
	for _, opt := range opts {
		opt(&o)
	}
	var ro renderOptions
	for _, opt := range o.render {
		opt(&ro)
	}
	if len(frames) == 0 {
		return stageError(StageEncode, encode.ErrNoFrames)
	}
	if format != PNG && format != WebP {
		return stageError(StageEncode, encode.ErrUnsupportedFormat)
	}
	if err := vp.Validate(); err != nil {
		return err
	}

	roots := make([]*node.Node, len(frames))
	for i, f := range frames {
		if f.Root == nil {
			return stageError(StageLayout, errors.New("frame has no root"))
		}
		roots[i] = f.Root
	}
	images, err := g.resolve(ctx, vp, roots...)
	if err != nil {
		return err
	}

	start := time.Now()
	out := make([]encode.Frame, len(frames))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.concurrency)
	for i, f := range frames {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			box, err := g.layout(f.Root, vp, images, ro.debug)
			if err != nil {
				return err
			}
			out[i] = encode.Frame{Image: paint(box, vp), Duration: f.Duration}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	Logger().Debug("animation rendered", "frames", len(out), "format", format, "elapsed", time.Since(start))

	if err := encode.Animation(w, out, format, o.loops); err != nil {
		return stageError(StageEncode, err)
	}
	return nil
}
