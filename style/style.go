package style

// Style is a patch of optional properties. The zero Style sets nothing.
type Style struct {
	// Box and flex layout.
	Display        Optional[Display]        `json:"display,omitempty"`
	Position       Optional[Position]       `json:"position,omitempty"`
	BoxSizing      Optional[BoxSizing]      `json:"boxSizing,omitempty"`
	Width          Optional[Length]         `json:"width,omitempty"`
	Height         Optional[Length]         `json:"height,omitempty"`
	MinWidth       Optional[Length]         `json:"minWidth,omitempty"`
	MinHeight      Optional[Length]         `json:"minHeight,omitempty"`
	MaxWidth       Optional[Length]         `json:"maxWidth,omitempty"`
	MaxHeight      Optional[Length]         `json:"maxHeight,omitempty"`
	AspectRatio    Optional[float32]        `json:"aspectRatio,omitempty"`
	Inset          Sides[Optional[Length]]  `json:"inset,omitempty"`
	Margin         Sides[Optional[Length]]  `json:"margin,omitempty"`
	Padding        Sides[Optional[Length]]  `json:"padding,omitempty"`
	BorderWidth    Sides[Optional[Length]]  `json:"borderWidth,omitempty"`
	FlexDirection  Optional[FlexDirection]  `json:"flexDirection,omitempty"`
	FlexWrap       Optional[FlexWrap]       `json:"flexWrap,omitempty"`
	FlexGrow       Optional[float32]        `json:"flexGrow,omitempty"`
	FlexShrink     Optional[float32]        `json:"flexShrink,omitempty"`
	FlexBasis      Optional[Length]         `json:"flexBasis,omitempty"`
	JustifyContent Optional[JustifyContent] `json:"justifyContent,omitempty"`
	AlignContent   Optional[JustifyContent] `json:"alignContent,omitempty"`
	AlignItems     Optional[AlignItems]     `json:"alignItems,omitempty"`
	AlignSelf      Optional[AlignItems]     `json:"alignSelf,omitempty"`
	RowGap         Optional[Length]         `json:"rowGap,omitempty"`
	ColumnGap      Optional[Length]         `json:"columnGap,omitempty"`
	OverflowX      Optional[Overflow]       `json:"overflowX,omitempty"`
	OverflowY      Optional[Overflow]       `json:"overflowY,omitempty"`

	// Grid layout.
	GridTemplateColumns Optional[GridTracks] `json:"gridTemplateColumns,omitempty"`
	GridTemplateRows    Optional[GridTracks] `json:"gridTemplateRows,omitempty"`

	// Painting.
	BorderColor        Sides[Optional[ColorInput]]  `json:"borderColor,omitempty"`
	BorderRadius       Corners[Optional[Length]]    `json:"borderRadius,omitempty"`
	Opacity            Optional[float32]            `json:"opacity,omitempty"`
	BackgroundColor    Optional[ColorInput]         `json:"backgroundColor,omitempty"`
	BackgroundImage    Optional[Images]             `json:"backgroundImage,omitempty"`
	BackgroundPosition Optional[[]Anchor]           `json:"backgroundPosition,omitempty"`
	BackgroundSize     Optional[[]BackgroundSize]   `json:"backgroundSize,omitempty"`
	BackgroundRepeat   Optional[[]BackgroundRepeat] `json:"backgroundRepeat,omitempty"`
	BackgroundClip     Optional[BackgroundClip]     `json:"backgroundClip,omitempty"`
	BoxShadow          Optional[[]BoxShadow]        `json:"boxShadow,omitempty"`
	Transform          Optional[[]TransformOp]      `json:"transform,omitempty"`
	TransformOrigin    Optional[Anchor]             `json:"transformOrigin,omitempty"`
	Translate          Optional[Translation]        `json:"translate,omitempty"`
	Rotate             Optional[float32]            `json:"rotate,omitempty"`
	Scale              Optional[Scaling]            `json:"scale,omitempty"`
	MaskImage          Optional[Images]             `json:"maskImage,omitempty"`
	MaskPosition       Optional[[]Anchor]           `json:"maskPosition,omitempty"`
	MaskSize           Optional[[]BackgroundSize]   `json:"maskSize,omitempty"`
	MaskRepeat         Optional[[]BackgroundRepeat] `json:"maskRepeat,omitempty"`
	Filter             Optional[[]Filter]           `json:"filter,omitempty"`
	BackdropFilter     Optional[[]Filter]           `json:"backdropFilter,omitempty"`
	MixBlendMode       Optional[BlendMode]          `json:"mixBlendMode,omitempty"`
	Isolation          Optional[Isolation]          `json:"isolation,omitempty"`
	ClipPath           Optional[ClipPath]           `json:"clipPath,omitempty"`
	VerticalAlign      Optional[VerticalAlign]      `json:"verticalAlign,omitempty"`

	// Inherited text and image properties.
	Color                   Optional[ColorInput]     `json:"color,omitempty"`
	FontFamily              Optional[[]string]       `json:"fontFamily,omitempty"`
	FontSize                Optional[Length]         `json:"fontSize,omitempty"`
	FontWeight              Optional[FontWeight]     `json:"fontWeight,omitempty"`
	FontStyle               Optional[FontStyle]      `json:"fontStyle,omitempty"`
	LineHeight              Optional[LineHeight]     `json:"lineHeight,omitempty"`
	LetterSpacing           Optional[Length]         `json:"letterSpacing,omitempty"`
	WordSpacing             Optional[Length]         `json:"wordSpacing,omitempty"`
	TextAlign               Optional[TextAlign]      `json:"textAlign,omitempty"`
	TextTransform           Optional[TextTransform]  `json:"textTransform,omitempty"`
	WhiteSpace              Optional[WhiteSpace]     `json:"whiteSpace,omitempty"`
	WordBreak               Optional[WordBreak]      `json:"wordBreak,omitempty"`
	OverflowWrap            Optional[OverflowWrap]   `json:"overflowWrap,omitempty"`
	TextWrap                Optional[TextWrap]       `json:"textWrap,omitempty"`
	TextOverflow            Optional[TextOverflow]   `json:"textOverflow,omitempty"`
	LineClamp               Optional[LineClamp]      `json:"lineClamp,omitempty"`
	TextShadow              Optional[[]TextShadow]   `json:"textShadow,omitempty"`
	TextStrokeWidth         Optional[Length]         `json:"textStrokeWidth,omitempty"`
	TextStrokeColor         Optional[ColorInput]     `json:"textStrokeColor,omitempty"`
	TextDecorationLine      Optional[DecorationLine] `json:"textDecorationLine,omitempty"`
	TextDecorationColor     Optional[ColorInput]     `json:"textDecorationColor,omitempty"`
	TextDecorationThickness Optional[Length]         `json:"textDecorationThickness,omitempty"`
	TextDecorationSkipInk   Optional[bool]           `json:"textDecorationSkipInk,omitempty"`
	ImageRendering          Optional[ImageRendering] `json:"imageRendering,omitempty"`
	ObjectFit               Optional[ObjectFit]      `json:"objectFit,omitempty"`
	ObjectPosition          Optional[Anchor]         `json:"objectPosition,omitempty"`
}

// Merge overwrites the fields of s that src sets.
func (s *Style) Merge(src *Style) {
	if src == nil {
		return
	}
	s.Display.Merge(src.Display)
	s.Position.Merge(src.Position)
	s.BoxSizing.Merge(src.BoxSizing)
	s.Width.Merge(src.Width)
	s.Height.Merge(src.Height)
	s.MinWidth.Merge(src.MinWidth)
	s.MinHeight.Merge(src.MinHeight)
	s.MaxWidth.Merge(src.MaxWidth)
	s.MaxHeight.Merge(src.MaxHeight)
	s.AspectRatio.Merge(src.AspectRatio)
	mergeSides(&s.Inset, src.Inset)
	mergeSides(&s.Margin, src.Margin)
	mergeSides(&s.Padding, src.Padding)
	mergeSides(&s.BorderWidth, src.BorderWidth)
	s.FlexDirection.Merge(src.FlexDirection)
	s.FlexWrap.Merge(src.FlexWrap)
	s.FlexGrow.Merge(src.FlexGrow)
	s.FlexShrink.Merge(src.FlexShrink)
	s.FlexBasis.Merge(src.FlexBasis)
	s.JustifyContent.Merge(src.JustifyContent)
	s.AlignContent.Merge(src.AlignContent)
	s.AlignItems.Merge(src.AlignItems)
	s.AlignSelf.Merge(src.AlignSelf)
	s.RowGap.Merge(src.RowGap)
	s.ColumnGap.Merge(src.ColumnGap)
	s.GridTemplateColumns.Merge(src.GridTemplateColumns)
	s.GridTemplateRows.Merge(src.GridTemplateRows)
	s.OverflowX.Merge(src.OverflowX)
	s.OverflowY.Merge(src.OverflowY)

	mergeSides(&s.BorderColor, src.BorderColor)
	mergeCorners(&s.BorderRadius, src.BorderRadius)
	s.Opacity.Merge(src.Opacity)
	s.BackgroundColor.Merge(src.BackgroundColor)
	s.BackgroundImage.Merge(src.BackgroundImage)
	s.BackgroundPosition.Merge(src.BackgroundPosition)
	s.BackgroundSize.Merge(src.BackgroundSize)
	s.BackgroundRepeat.Merge(src.BackgroundRepeat)
	s.BackgroundClip.Merge(src.BackgroundClip)
	s.BoxShadow.Merge(src.BoxShadow)
	s.Transform.Merge(src.Transform)
	s.TransformOrigin.Merge(src.TransformOrigin)
	s.Translate.Merge(src.Translate)
	s.Rotate.Merge(src.Rotate)
	s.Scale.Merge(src.Scale)
	s.MaskImage.Merge(src.MaskImage)
	s.MaskPosition.Merge(src.MaskPosition)
	s.MaskSize.Merge(src.MaskSize)
	s.MaskRepeat.Merge(src.MaskRepeat)
	s.Filter.Merge(src.Filter)
	s.BackdropFilter.Merge(src.BackdropFilter)
	s.MixBlendMode.Merge(src.MixBlendMode)
	s.Isolation.Merge(src.Isolation)
	s.ClipPath.Merge(src.ClipPath)
	s.VerticalAlign.Merge(src.VerticalAlign)

	s.Color.Merge(src.Color)
	s.FontFamily.Merge(src.FontFamily)
	s.FontSize.Merge(src.FontSize)
	s.FontWeight.Merge(src.FontWeight)
	s.FontStyle.Merge(src.FontStyle)
	s.LineHeight.Merge(src.LineHeight)
	s.LetterSpacing.Merge(src.LetterSpacing)
	s.WordSpacing.Merge(src.WordSpacing)
	s.TextAlign.Merge(src.TextAlign)
	s.TextTransform.Merge(src.TextTransform)
	s.WhiteSpace.Merge(src.WhiteSpace)
	s.WordBreak.Merge(src.WordBreak)
	s.OverflowWrap.Merge(src.OverflowWrap)
	s.TextWrap.Merge(src.TextWrap)
	s.TextOverflow.Merge(src.TextOverflow)
	s.LineClamp.Merge(src.LineClamp)
	s.TextShadow.Merge(src.TextShadow)
	s.TextStrokeWidth.Merge(src.TextStrokeWidth)
	s.TextStrokeColor.Merge(src.TextStrokeColor)
	s.TextDecorationLine.Merge(src.TextDecorationLine)
	s.TextDecorationColor.Merge(src.TextDecorationColor)
	s.TextDecorationThickness.Merge(src.TextDecorationThickness)
	s.TextDecorationSkipInk.Merge(src.TextDecorationSkipInk)
	s.ImageRendering.Merge(src.ImageRendering)
	s.ObjectFit.Merge(src.ObjectFit)
	s.ObjectPosition.Merge(src.ObjectPosition)
}

// MergeAll folds layers left to right into a new Style.
func MergeAll(layers ...*Style) Style {
	var out Style
	for _, l := range layers {
		out.Merge(l)
	}
	return out
}
