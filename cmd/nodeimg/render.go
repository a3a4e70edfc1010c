package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/nodeimg"
)

// newRenderCmd creates the `render` command.
func newRenderCmd() *cobra.Command {
	var (
		out    string
		format string
	)
	cmd := &cobra.Command{
		Use:   "render <document.json|->",
		Short: "Render a document to an image",
		Long: `Render reads a JSON document, lays it out and writes the picture.

The format comes from --format, else from the extension of --out, else PNG.
Without --out the image is written to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFrom(cmd)

			f, err := outputFormat(format, out, nodeimg.PNG)
			if err != nil {
				return err
			}
			doc, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			if doc.Root == nil {
				return errors.New("document has frames; use the animate command")
			}
			g, err := newGlobal(cfg)
			if err != nil {
				return err
			}

			start := time.Now()
			img, err := nodeimg.Render(ctx, doc.Root, cfg.viewport(doc.Viewport), g, renderOptions(cmd)...)
			if err != nil {
				return fmt.Errorf("render %s: %w", args[0], err)
			}
			nodeimg.Logger().Info("rendered",
				"document", args[0],
				"width", img.Bounds().Dx(),
				"height", img.Bounds().Dy(),
				"format", f,
				"elapsed", time.Since(start),
			)
			return writeOutput(cmd, out, func(w io.Writer) error {
				return nodeimg.Encode(w, img, f, nodeimg.WithQuality(cfg.Quality))
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: png, jpeg or webp")
	cmd.Flags().Int("quality", 0, "JPEG quality 1-100")
	addViewportFlags(cmd)
	return cmd
}

func renderOptions(cmd *cobra.Command) []nodeimg.RenderOption {
	var opts []nodeimg.RenderOption
	if debug, _ := cmd.Flags().GetBool("debug-border"); debug {
		opts = append(opts, nodeimg.WithDebugBorder())
	}
	return opts
}
