package text

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/nodeimg/style"
)

// Query describes the font wanted for a run of text.
type Query struct {
	// Families in priority order. Empty means the first registered family.
	Families []string
	Weight   style.FontWeight
	Style    style.FontStyle
	// Size is the font size in pixels.
	Size float32
	// Language is a BCP 47 tag used for shaping; empty means English.
	Language string
}

func (q Query) aspect() font.Aspect {
	a := font.Aspect{Style: fontStyle(q.Style), Weight: font.Weight(q.Weight)}
	a.SetDefaults()
	return a
}

// Glyph is one shaped glyph. Positions are in pixels relative to the pen.
type Glyph struct {
	ID font.GID
	// Cluster is the index of the first rune of the glyph's cluster in the
	// shaped text; Runes is the cluster's rune count.
	Cluster int
	Runes   int
	XOffset float32
	YOffset float32
	Advance float32
}

// Run is a sequence of glyphs sharing one face, script and direction.
type Run struct {
	Face *font.Face
	Size float32
	// Start and End delimit the run's runes in the shaped text.
	Start, End int
	RTL        bool
	Glyphs     []Glyph
	Advance    float32
	Metrics    Metrics
}

// Metrics are font-wide line metrics in pixels. Ascent and Descent are
// both positive distances from the baseline.
type Metrics struct {
	Ascent  float32
	Descent float32
	Gap     float32

	// UnderlinePosition is the distance below the baseline to the top of
	// the underline; StrikePosition is the distance above the baseline.
	UnderlinePosition  float32
	UnderlineThickness float32
	StrikePosition     float32
	StrikeThickness    float32
	XHeight            float32
}

// Height is the content-area height, ascent plus descent.
func (m Metrics) Height() float32 { return m.Ascent + m.Descent }

// FaceMetrics reads the line metrics of face scaled to size pixels.
func FaceMetrics(face *font.Face, size float32) Metrics {
	upem := float32(face.Upem())
	if upem == 0 {
		upem = 1000
	}
	scale := size / upem
	ext, _ := face.FontHExtents()
	m := Metrics{
		Ascent:             ext.Ascender * scale,
		Descent:            -ext.Descender * scale,
		Gap:                ext.LineGap * scale,
		UnderlinePosition:  -face.LineMetric(font.UnderlinePosition) * scale,
		UnderlineThickness: face.LineMetric(font.UnderlineThickness) * scale,
		StrikePosition:     face.LineMetric(font.StrikethroughPosition) * scale,
		StrikeThickness:    face.LineMetric(font.StrikethroughThickness) * scale,
		XHeight:            face.LineMetric(font.XHeight) * scale,
	}
	if m.UnderlineThickness <= 0 {
		m.UnderlineThickness = size / 14
	}
	if m.StrikeThickness <= 0 {
		m.StrikeThickness = m.UnderlineThickness
	}
	if m.StrikePosition <= 0 {
		m.StrikePosition = m.Ascent / 3
	}
	if m.XHeight <= 0 {
		m.XHeight = m.Ascent / 2
	}
	return m
}

// Session shapes text against a snapshot of a Registry.
// A Session must not be used from more than one goroutine.
type Session struct {
	reg    *Registry
	fonts  *fontscan.FontMap
	empty  bool
	family string
	shaper shaping.HarfbuzzShaper
	seg    shaping.Segmenter
}

// NewSession snapshots the registered fonts. Fonts loaded afterwards are
// not visible to the session.
func (r *Registry) NewSession() *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fm := fontscan.NewFontMap(printfLogger{r.logger})
	for _, e := range r.entries {
		fm.AddFace(font.NewFace(e.font), e.location, e.desc)
	}
	s := &Session{reg: r, fonts: fm, empty: len(r.entries) == 0}
	if !s.empty {
		s.family = r.entries[0].desc.Family
	}
	return s
}

func (s *Session) setQuery(q Query) {
	families := q.Families
	if len(families) == 0 {
		families = []string{s.family}
	}
	s.fonts.SetQuery(fontscan.Query{Families: families, Aspect: q.aspect()})
}

// Registry returns the registry the session was created from.
func (s *Session) Registry() *Registry { return s.reg }

// Face resolves the face used for r under q, or nil when no font is loaded.
func (s *Session) Face(q Query, r rune) *font.Face {
	if s.empty {
		return nil
	}
	s.setQuery(q)
	s.fonts.SetScript(language.LookupScript(r))
	return s.fonts.ResolveFace(r)
}

// Metrics returns the line metrics of the primary face for q.
func (s *Session) Metrics(q Query) Metrics {
	face := s.Face(q, ' ')
	if face == nil {
		return Metrics{Ascent: q.Size * 0.8, Descent: q.Size * 0.2}
	}
	return FaceMetrics(face, q.Size)
}

// Shape shapes text under q. Runs are split by face, script and bidi
// level, and returned in logical order. Shape returns nil for empty text
// or when the registry holds no fonts.
func (s *Session) Shape(text []rune, q Query) []Run {
	if len(text) == 0 || s.empty {
		return nil
	}
	s.setQuery(q)

	lang := language.NewLanguage("en")
	if q.Language != "" {
		lang = language.NewLanguage(q.Language)
	}
	dir := di.DirectionLTR
	if Direction(text) == RightToLeft {
		dir = di.DirectionRTL
	}
	input := shaping.Input{
		Text:      text,
		RunStart:  0,
		RunEnd:    len(text),
		Direction: dir,
		Size:      floatToFixed(q.Size),
		Script:    detectScript(text),
		Language:  lang,
	}

	items := s.seg.Split(input, s.fonts)
	runs := make([]Run, 0, len(items))
	for _, in := range items {
		if in.Face == nil {
			continue
		}
		out := s.shaper.Shape(in)
		runs = append(runs, convertRun(out, in, q.Size))
	}
	return runs
}

// Width returns the total advance of text under q.
func (s *Session) Width(text []rune, q Query) float32 {
	var w float32
	for _, r := range s.Shape(text, q) {
		w += r.Advance
	}
	return w
}

func convertRun(out shaping.Output, in shaping.Input, size float32) Run {
	run := Run{
		Face:    out.Face,
		Size:    size,
		Start:   in.RunStart,
		End:     in.RunEnd,
		RTL:     in.Direction.Progression() == di.TowardTopLeft,
		Advance: fixedToFloat(out.Advance),
		Glyphs:  make([]Glyph, len(out.Glyphs)),
	}
	for i, g := range out.Glyphs {
		run.Glyphs[i] = Glyph{
			ID:      g.GlyphID,
			Cluster: g.TextIndex(),
			Runes:   g.RunesCount(),
			XOffset: fixedToFloat(g.XOffset),
			YOffset: fixedToFloat(g.YOffset),
			Advance: fixedToFloat(g.Advance),
		}
	}
	run.Metrics = FaceMetrics(out.Face, size)
	return run
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
