package main

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/gogpu/nodeimg"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// newMeasureCmd creates the `measure` command.
func newMeasureCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "measure <document.json|->",
		Short: "Lay out a document and print its box geometry as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			doc, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			if doc.Root == nil {
				return errors.New("document has frames; measure takes a single root")
			}
			g, err := newGlobal(cfg)
			if err != nil {
				return err
			}
			m, err := nodeimg.Measure(cmd.Context(), doc.Root, cfg.viewport(doc.Viewport), g, renderOptions(cmd)...)
			if err != nil {
				return fmt.Errorf("measure %s: %w", args[0], err)
			}
			return writeOutput(cmd, out, func(w io.Writer) error {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(m)
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	addViewportFlags(cmd)
	return cmd
}
