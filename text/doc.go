// Package text loads fonts and shapes text for the renderer.
//
// The pipeline is split the same way on every call:
//
//   - Registry: long-lived, shared set of parsed fonts (TTF, OTF, TTC, WOFF)
//   - Session: per-render view of the registry that resolves a family,
//     weight and style to a face for each rune and shapes runs with HarfBuzz
//   - Breaks: UAX #14 line-break opportunities for a paragraph
//
// # Example usage
//
//	reg := text.NewRegistry(nil)
//	if err := reg.RegisterDefaults(); err != nil {
//	    return err
//	}
//
//	s := reg.NewSession()
//	runs := s.Shape("Hello, world", text.Query{Size: 32})
//
// # Thread Safety
//
// Registry is safe for concurrent use. Session is not: it owns a font map
// and a shaper, both of which carry mutable state. Create one Session per
// goroutine; sessions are cheap since parsed fonts are shared.
package text
