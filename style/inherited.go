package style

// InheritedStyle is the complete style in effect for one node: its own
// properties with defaults filled in, plus inheritable properties taken
// from the parent when unset. It is built once per node and never mutated.
type InheritedStyle struct {
	Display        Display
	Position       Position
	BoxSizing      BoxSizing
	Width          Length
	Height         Length
	MinWidth       Length
	MinHeight      Length
	MaxWidth       Length
	MaxHeight      Length
	AspectRatio    float32 // 0 when unset
	Inset          Sides[Length]
	Margin         Sides[Length]
	Padding        Sides[Length]
	BorderWidth    Sides[Length]
	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	FlexGrow       float32
	FlexShrink     float32
	FlexBasis      Length
	JustifyContent JustifyContent
	AlignContent   JustifyContent
	AlignItems     AlignItems
	AlignSelf      AlignItems
	RowGap         Length
	ColumnGap      Length
	OverflowX      Overflow
	OverflowY      Overflow

	GridTemplateColumns GridTracks
	GridTemplateRows    GridTracks

	BorderColor        Sides[ColorInput]
	BorderRadius       Corners[Length]
	Opacity            float32
	BackgroundColor    ColorInput
	BackgroundImage    Images
	BackgroundPosition []Anchor
	BackgroundSize     []BackgroundSize
	BackgroundRepeat   []BackgroundRepeat
	BackgroundClip     BackgroundClip
	BoxShadow          []BoxShadow
	Transform          []TransformOp
	TransformOrigin    Anchor
	Translate          Optional[Translation]
	Rotate             Optional[float32]
	Scale              Optional[Scaling]
	MaskImage          Images
	MaskPosition       []Anchor
	MaskSize           []BackgroundSize
	MaskRepeat         []BackgroundRepeat
	Filter             []Filter
	BackdropFilter     []Filter
	MixBlendMode       BlendMode
	Isolation          Isolation
	ClipPath           Optional[ClipPath]
	VerticalAlign      VerticalAlign

	// Color is the resolved color property; it is what currentColor means
	// for this node.
	Color                   Color
	FontFamily              []string
	FontSize                float32 // device pixels
	FontWeight              FontWeight
	FontStyle               FontStyle
	LineHeight              LineHeight
	LetterSpacing           Length
	WordSpacing             Length
	TextAlign               TextAlign
	TextTransform           TextTransform
	WhiteSpace              WhiteSpace
	WordBreak               WordBreak
	OverflowWrap            OverflowWrap
	TextWrap                TextWrap
	TextOverflow            TextOverflow
	LineClamp               Optional[LineClamp]
	TextShadow              []TextShadow
	TextStrokeWidth         Length
	TextStrokeColor         ColorInput
	TextDecorationLine      DecorationLine
	TextDecorationColor     ColorInput
	TextDecorationThickness Length // auto derives from the font
	TextDecorationSkipInk   bool
	ImageRendering          ImageRendering
	ObjectFit               ObjectFit
	ObjectPosition          Anchor
}

// DefaultFontSize is the base font size in CSS pixels.
const DefaultFontSize = 16

// Initial returns the root style for a viewport: every property at its
// initial value, font size at the viewport base size.
func Initial(m Metrics) InheritedStyle {
	root := m.RootFontSize
	if root == 0 {
		root = DefaultFontSize
	}
	dpr := m.DPR
	if dpr == 0 {
		dpr = 1
	}
	s := initialBox()
	s.Color = Black
	s.FontSize = root * dpr
	s.FontWeight = WeightNormal
	s.LineHeight = LineHeightNormal
	s.LetterSpacing = Px(0)
	s.WordSpacing = Px(0)
	s.TextStrokeWidth = Px(0)
	s.TextStrokeColor = CurrentColor()
	s.TextDecorationColor = CurrentColor()
	s.TextDecorationThickness = Auto
	s.TextDecorationSkipInk = true
	s.ObjectPosition = Center
	return s
}

// initialBox holds the initial values of the non-inherited properties.
func initialBox() InheritedStyle {
	return InheritedStyle{
		Display:         DisplayFlex,
		Width:           Auto,
		Height:          Auto,
		MinWidth:        Auto,
		MinHeight:       Auto,
		MaxWidth:        Auto,
		MaxHeight:       Auto,
		Inset:           AllSides(Auto),
		Margin:          AllSides(Px(0)),
		Padding:         AllSides(Px(0)),
		BorderWidth:     AllSides(Px(0)),
		FlexShrink:      1,
		FlexBasis:       Auto,
		RowGap:          Px(0),
		ColumnGap:       Px(0),
		BorderColor:     AllSides(CurrentColor()),
		BorderRadius:    AllCorners(Px(0)),
		Opacity:         1,
		BackgroundColor: ColorOf(Transparent),
		TransformOrigin: Center,
	}
}

// Resolve builds the InheritedStyle for a node whose merged patch is s.
// m carries the viewport; its FontSize is ignored and the parent's font
// size is used as the em base.
func Resolve(s *Style, parent *InheritedStyle, m Metrics) InheritedStyle {
	d := initialBox()
	m.FontSize = parent.FontSize

	out := InheritedStyle{
		Display:        s.Display.Or(d.Display),
		Position:       s.Position.Or(d.Position),
		BoxSizing:      s.BoxSizing.Or(d.BoxSizing),
		Width:          s.Width.Or(d.Width),
		Height:         s.Height.Or(d.Height),
		MinWidth:       s.MinWidth.Or(d.MinWidth),
		MinHeight:      s.MinHeight.Or(d.MinHeight),
		MaxWidth:       s.MaxWidth.Or(d.MaxWidth),
		MaxHeight:      s.MaxHeight.Or(d.MaxHeight),
		AspectRatio:    s.AspectRatio.Or(0),
		Inset:          sidesOr(s.Inset, Auto),
		Margin:         sidesOr(s.Margin, Px(0)),
		Padding:        sidesOr(s.Padding, Px(0)),
		BorderWidth:    sidesOr(s.BorderWidth, Px(0)),
		FlexDirection:  s.FlexDirection.Or(d.FlexDirection),
		FlexWrap:       s.FlexWrap.Or(d.FlexWrap),
		FlexGrow:       s.FlexGrow.Or(d.FlexGrow),
		FlexShrink:     s.FlexShrink.Or(d.FlexShrink),
		FlexBasis:      s.FlexBasis.Or(d.FlexBasis),
		JustifyContent: s.JustifyContent.Or(d.JustifyContent),
		AlignContent:   s.AlignContent.Or(d.AlignContent),
		AlignItems:     s.AlignItems.Or(d.AlignItems),
		AlignSelf:      s.AlignSelf.Or(d.AlignSelf),
		RowGap:         s.RowGap.Or(d.RowGap),
		ColumnGap:      s.ColumnGap.Or(d.ColumnGap),
		OverflowX:      s.OverflowX.Or(d.OverflowX),
		OverflowY:      s.OverflowY.Or(d.OverflowY),

		GridTemplateColumns: s.GridTemplateColumns.Or(nil),
		GridTemplateRows:    s.GridTemplateRows.Or(nil),

		BorderColor:        sidesOr(s.BorderColor, CurrentColor()),
		BorderRadius:       cornersOr(s.BorderRadius, Px(0)),
		Opacity:            clampUnit(s.Opacity.Or(d.Opacity)),
		BackgroundColor:    s.BackgroundColor.Or(d.BackgroundColor),
		BackgroundImage:    s.BackgroundImage.Or(nil),
		BackgroundPosition: s.BackgroundPosition.Or(nil),
		BackgroundSize:     s.BackgroundSize.Or(nil),
		BackgroundRepeat:   s.BackgroundRepeat.Or(nil),
		BackgroundClip:     s.BackgroundClip.Or(d.BackgroundClip),
		BoxShadow:          s.BoxShadow.Or(nil),
		Transform:          s.Transform.Or(nil),
		TransformOrigin:    s.TransformOrigin.Or(d.TransformOrigin),
		Translate:          s.Translate,
		Rotate:             s.Rotate,
		Scale:              s.Scale,
		MaskImage:          s.MaskImage.Or(nil),
		MaskPosition:       s.MaskPosition.Or(nil),
		MaskSize:           s.MaskSize.Or(nil),
		MaskRepeat:         s.MaskRepeat.Or(nil),
		Filter:             s.Filter.Or(nil),
		BackdropFilter:     s.BackdropFilter.Or(nil),
		MixBlendMode:       s.MixBlendMode.Or(d.MixBlendMode),
		Isolation:          s.Isolation.Or(d.Isolation),
		ClipPath:           s.ClipPath,
		VerticalAlign:      s.VerticalAlign.Or(d.VerticalAlign),

		FontFamily:              s.FontFamily.Or(parent.FontFamily),
		FontWeight:              s.FontWeight.Or(parent.FontWeight),
		FontStyle:               s.FontStyle.Or(parent.FontStyle),
		LineHeight:              s.LineHeight.Or(parent.LineHeight),
		LetterSpacing:           s.LetterSpacing.Or(parent.LetterSpacing),
		WordSpacing:             s.WordSpacing.Or(parent.WordSpacing),
		TextAlign:               s.TextAlign.Or(parent.TextAlign),
		TextTransform:           s.TextTransform.Or(parent.TextTransform),
		WhiteSpace:              s.WhiteSpace.Or(parent.WhiteSpace),
		WordBreak:               s.WordBreak.Or(parent.WordBreak),
		OverflowWrap:            s.OverflowWrap.Or(parent.OverflowWrap),
		TextWrap:                s.TextWrap.Or(parent.TextWrap),
		TextOverflow:            s.TextOverflow.Or(parent.TextOverflow),
		LineClamp:               orOptional(s.LineClamp, parent.LineClamp),
		TextShadow:              s.TextShadow.Or(parent.TextShadow),
		TextStrokeWidth:         s.TextStrokeWidth.Or(parent.TextStrokeWidth),
		TextStrokeColor:         s.TextStrokeColor.Or(parent.TextStrokeColor),
		TextDecorationLine:      s.TextDecorationLine.Or(parent.TextDecorationLine),
		TextDecorationColor:     s.TextDecorationColor.Or(parent.TextDecorationColor),
		TextDecorationThickness: s.TextDecorationThickness.Or(parent.TextDecorationThickness),
		TextDecorationSkipInk:   s.TextDecorationSkipInk.Or(parent.TextDecorationSkipInk),
		ImageRendering:          s.ImageRendering.Or(parent.ImageRendering),
		ObjectFit:               s.ObjectFit.Or(parent.ObjectFit),
		ObjectPosition:          s.ObjectPosition.Or(parent.ObjectPosition),
	}

	// em and % in font-size resolve against the parent's font size.
	out.FontSize = parent.FontSize
	if fs, ok := s.FontSize.Get(); ok && !fs.IsAuto() {
		out.FontSize = fs.Resolve(m, parent.FontSize)
	}

	// currentColor in the color property means the inherited color.
	out.Color = parent.Color
	if c, ok := s.Color.Get(); ok {
		out.Color = c.Resolve(parent.Color)
	}
	return out
}

// Metrics returns m with FontSize set to this node's font size.
func (s *InheritedStyle) Metrics(m Metrics) Metrics {
	m.FontSize = s.FontSize
	return m
}

// Overflows reports whether either axis clips its content.
func (s *InheritedStyle) Overflows() bool {
	return s.OverflowX != OverflowVisible || s.OverflowY != OverflowVisible
}

// IsIsolated reports whether the node must be composited as its own group.
func (s *InheritedStyle) IsIsolated() bool {
	return s.Isolation == IsolationIsolate || s.MixBlendMode != BlendModeNormal ||
		len(s.Filter) > 0 || len(s.MaskImage) > 0 || s.ClipPath.IsSet() || s.Opacity < 1
}

func orOptional[T any](o, parent Optional[T]) Optional[T] {
	if o.IsSet() {
		return o
	}
	return parent
}

func clampUnit(v float32) float32 {
	return max(0, min(1, v))
}
