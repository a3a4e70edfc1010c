package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/nodeimg"
)

// newAnimateCmd creates the `animate` command.
func newAnimateCmd() *cobra.Command {
	var (
		out         string
		format      string
		loops       uint16
		concurrency int
	)
	cmd := &cobra.Command{
		Use:   "animate <document.json|->",
		Short: "Render the frames of a document to an animated PNG or WebP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			f, err := outputFormat(format, out, nodeimg.PNG)
			if err != nil {
				return err
			}
			doc, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			if len(doc.Frames) == 0 {
				return errors.New("document has no frames")
			}
			g, err := newGlobal(cfg)
			if err != nil {
				return err
			}

			frames := make([]nodeimg.Frame, len(doc.Frames))
			for i, fr := range doc.Frames {
				frames[i] = nodeimg.Frame{Root: fr.Root, Duration: fr.Duration}
			}
			opts := []nodeimg.AnimationOption{
				nodeimg.WithLoopCount(loops),
				nodeimg.WithFrameConcurrency(concurrency),
				nodeimg.WithFrameOptions(renderOptions(cmd)...),
			}
			vp := cfg.viewport(doc.Viewport)
			return writeOutput(cmd, out, func(w io.Writer) error {
				if err := nodeimg.RenderAnimation(cmd.Context(), w, frames, vp, g, f, opts...); err != nil {
					return fmt.Errorf("animate %s: %w", args[0], err)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: png or webp")
	cmd.Flags().Uint16Var(&loops, "loops", 0, "times to play the animation, 0 loops forever")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "frames rendered at once (default GOMAXPROCS)")
	addViewportFlags(cmd)
	return cmd
}
