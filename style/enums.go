package style

// Display selects how a box lays out its children. Block is laid out as a
// vertical flex column; Inline boxes join their parent's inline formatting context.
// Grid places children row by row into the tracks of GridTemplateColumns.
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayBlock
	DisplayInline
	DisplayNone
	DisplayGrid
)

var displayKeywords = keywords[Display]{"display", []string{"flex", "block", "inline", "none", "grid"}}

func (v Display) String() string { return displayKeywords.name(v) }

// UnmarshalText parses a display keyword.
func (v *Display) UnmarshalText(b []byte) error { return displayKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v Display) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseDisplay parses a display keyword.
func ParseDisplay(s string) (Display, error) { return displayKeywords.parse(s) }

// Position is the position property.
type Position uint8

const (
	PositionRelative Position = iota
	PositionAbsolute
)

var positionKeywords = keywords[Position]{"position", []string{"relative", "absolute"}}

func (v Position) String() string { return positionKeywords.name(v) }

// UnmarshalText parses a position keyword.
func (v *Position) UnmarshalText(b []byte) error { return positionKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v Position) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParsePosition parses a position keyword.
func ParsePosition(s string) (Position, error) { return positionKeywords.parse(s) }

// BoxSizing is the box-sizing property.
type BoxSizing uint8

const (
	BoxSizingBorderBox BoxSizing = iota
	BoxSizingContentBox
)

var boxSizingKeywords = keywords[BoxSizing]{"box-sizing", []string{"border-box", "content-box"}}

func (v BoxSizing) String() string { return boxSizingKeywords.name(v) }

// UnmarshalText parses a box-sizing keyword.
func (v *BoxSizing) UnmarshalText(b []byte) error { return boxSizingKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v BoxSizing) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseBoxSizing parses a box-sizing keyword.
func ParseBoxSizing(s string) (BoxSizing, error) { return boxSizingKeywords.parse(s) }

// FlexDirection is the flex-direction property.
type FlexDirection uint8

const (
	FlexDirectionRow FlexDirection = iota
	FlexDirectionColumn
	FlexDirectionRowReverse
	FlexDirectionColumnReverse
)

var flexDirectionKeywords = keywords[FlexDirection]{"flex-direction", []string{"row", "column", "row-reverse", "column-reverse"}}

func (v FlexDirection) String() string { return flexDirectionKeywords.name(v) }

// UnmarshalText parses a flex-direction keyword.
func (v *FlexDirection) UnmarshalText(b []byte) error { return flexDirectionKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v FlexDirection) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseFlexDirection parses a flex-direction keyword.
func ParseFlexDirection(s string) (FlexDirection, error) { return flexDirectionKeywords.parse(s) }

// FlexWrap is the flex-wrap property.
type FlexWrap uint8

const (
	FlexWrapNoWrap FlexWrap = iota
	FlexWrapWrap
	FlexWrapWrapReverse
)

var flexWrapKeywords = keywords[FlexWrap]{"flex-wrap", []string{"nowrap", "wrap", "wrap-reverse"}}

func (v FlexWrap) String() string { return flexWrapKeywords.name(v) }

// UnmarshalText parses a flex-wrap keyword.
func (v *FlexWrap) UnmarshalText(b []byte) error { return flexWrapKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v FlexWrap) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseFlexWrap parses a flex-wrap keyword.
func ParseFlexWrap(s string) (FlexWrap, error) { return flexWrapKeywords.parse(s) }

// JustifyContent also serves align-content.
type JustifyContent uint8

const (
	JustifyContentNormal JustifyContent = iota
	JustifyContentStart
	JustifyContentEnd
	JustifyContentFlexStart
	JustifyContentFlexEnd
	JustifyContentCenter
	JustifyContentSpaceBetween
	JustifyContentSpaceAround
	JustifyContentSpaceEvenly
	JustifyContentStretch
)

var justifyContentKeywords = keywords[JustifyContent]{"justify-content", []string{"normal", "start", "end", "flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly", "stretch"}}

func (v JustifyContent) String() string { return justifyContentKeywords.name(v) }

// UnmarshalText parses a justify-content keyword.
func (v *JustifyContent) UnmarshalText(b []byte) error { return justifyContentKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v JustifyContent) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseJustifyContent parses a justify-content keyword.
func ParseJustifyContent(s string) (JustifyContent, error) { return justifyContentKeywords.parse(s) }

// AlignItems also serves align-self.
type AlignItems uint8

const (
	AlignItemsNormal AlignItems = iota
	AlignItemsStart
	AlignItemsEnd
	AlignItemsFlexStart
	AlignItemsFlexEnd
	AlignItemsCenter
	AlignItemsBaseline
	AlignItemsStretch
)

var alignItemsKeywords = keywords[AlignItems]{"align-items", []string{"normal", "start", "end", "flex-start", "flex-end", "center", "baseline", "stretch"}}

func (v AlignItems) String() string { return alignItemsKeywords.name(v) }

// UnmarshalText parses a align-items keyword.
func (v *AlignItems) UnmarshalText(b []byte) error { return alignItemsKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v AlignItems) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseAlignItems parses a align-items keyword.
func ParseAlignItems(s string) (AlignItems, error) { return alignItemsKeywords.parse(s) }

// Overflow is the overflow property.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowClip
)

var overflowKeywords = keywords[Overflow]{"overflow", []string{"visible", "hidden", "clip"}}

func (v Overflow) String() string { return overflowKeywords.name(v) }

// UnmarshalText parses a overflow keyword.
func (v *Overflow) UnmarshalText(b []byte) error { return overflowKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v Overflow) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseOverflow parses a overflow keyword.
func ParseOverflow(s string) (Overflow, error) { return overflowKeywords.parse(s) }

// ObjectFit is the object-fit property.
type ObjectFit uint8

const (
	ObjectFitFill ObjectFit = iota
	ObjectFitContain
	ObjectFitCover
	ObjectFitNone
	ObjectFitScaleDown
)

var objectFitKeywords = keywords[ObjectFit]{"object-fit", []string{"fill", "contain", "cover", "none", "scale-down"}}

func (v ObjectFit) String() string { return objectFitKeywords.name(v) }

// UnmarshalText parses a object-fit keyword.
func (v *ObjectFit) UnmarshalText(b []byte) error { return objectFitKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v ObjectFit) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseObjectFit parses a object-fit keyword.
func ParseObjectFit(s string) (ObjectFit, error) { return objectFitKeywords.parse(s) }

// TextAlign is the text-align property.
type TextAlign uint8

const (
	TextAlignStart TextAlign = iota
	TextAlignEnd
	TextAlignLeft
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

var textAlignKeywords = keywords[TextAlign]{"text-align", []string{"start", "end", "left", "right", "center", "justify"}}

func (v TextAlign) String() string { return textAlignKeywords.name(v) }

// UnmarshalText parses a text-align keyword.
func (v *TextAlign) UnmarshalText(b []byte) error { return textAlignKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v TextAlign) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseTextAlign parses a text-align keyword.
func ParseTextAlign(s string) (TextAlign, error) { return textAlignKeywords.parse(s) }

// TextTransform is the text-transform property.
type TextTransform uint8

const (
	TextTransformNone TextTransform = iota
	TextTransformUppercase
	TextTransformLowercase
	TextTransformCapitalize
)

var textTransformKeywords = keywords[TextTransform]{"text-transform", []string{"none", "uppercase", "lowercase", "capitalize"}}

func (v TextTransform) String() string { return textTransformKeywords.name(v) }

// UnmarshalText parses a text-transform keyword.
func (v *TextTransform) UnmarshalText(b []byte) error { return textTransformKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v TextTransform) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseTextTransform parses a text-transform keyword.
func ParseTextTransform(s string) (TextTransform, error) { return textTransformKeywords.parse(s) }

// WhiteSpace is the white-space property.
type WhiteSpace uint8

const (
	WhiteSpaceNormal WhiteSpace = iota
	WhiteSpacePre
	WhiteSpaceNoWrap
	WhiteSpacePreWrap
	WhiteSpacePreLine
)

var whiteSpaceKeywords = keywords[WhiteSpace]{"white-space", []string{"normal", "pre", "nowrap", "pre-wrap", "pre-line"}}

func (v WhiteSpace) String() string { return whiteSpaceKeywords.name(v) }

// UnmarshalText parses a white-space keyword.
func (v *WhiteSpace) UnmarshalText(b []byte) error { return whiteSpaceKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v WhiteSpace) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseWhiteSpace parses a white-space keyword.
func ParseWhiteSpace(s string) (WhiteSpace, error) { return whiteSpaceKeywords.parse(s) }

// WordBreak is the word-break property.
type WordBreak uint8

const (
	WordBreakNormal WordBreak = iota
	WordBreakBreakAll
	WordBreakKeepAll
	WordBreakBreakWord
)

var wordBreakKeywords = keywords[WordBreak]{"word-break", []string{"normal", "break-all", "keep-all", "break-word"}}

func (v WordBreak) String() string { return wordBreakKeywords.name(v) }

// UnmarshalText parses a word-break keyword.
func (v *WordBreak) UnmarshalText(b []byte) error { return wordBreakKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v WordBreak) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseWordBreak parses a word-break keyword.
func ParseWordBreak(s string) (WordBreak, error) { return wordBreakKeywords.parse(s) }

// OverflowWrap is the overflow-wrap property.
type OverflowWrap uint8

const (
	OverflowWrapNormal OverflowWrap = iota
	OverflowWrapAnywhere
	OverflowWrapBreakWord
)

var overflowWrapKeywords = keywords[OverflowWrap]{"overflow-wrap", []string{"normal", "anywhere", "break-word"}}

func (v OverflowWrap) String() string { return overflowWrapKeywords.name(v) }

// UnmarshalText parses a overflow-wrap keyword.
func (v *OverflowWrap) UnmarshalText(b []byte) error { return overflowWrapKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v OverflowWrap) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseOverflowWrap parses a overflow-wrap keyword.
func ParseOverflowWrap(s string) (OverflowWrap, error) { return overflowWrapKeywords.parse(s) }

// TextWrap is the text-wrap property.
type TextWrap uint8

const (
	TextWrapWrap TextWrap = iota
	TextWrapNoWrap
	TextWrapBalance
)

var textWrapKeywords = keywords[TextWrap]{"text-wrap", []string{"wrap", "nowrap", "balance"}}

func (v TextWrap) String() string { return textWrapKeywords.name(v) }

// UnmarshalText parses a text-wrap keyword.
func (v *TextWrap) UnmarshalText(b []byte) error { return textWrapKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v TextWrap) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseTextWrap parses a text-wrap keyword.
func ParseTextWrap(s string) (TextWrap, error) { return textWrapKeywords.parse(s) }

// TextOverflow is the text-overflow property.
type TextOverflow uint8

const (
	TextOverflowClip TextOverflow = iota
	TextOverflowEllipsis
)

var textOverflowKeywords = keywords[TextOverflow]{"text-overflow", []string{"clip", "ellipsis"}}

func (v TextOverflow) String() string { return textOverflowKeywords.name(v) }

// UnmarshalText parses a text-overflow keyword.
func (v *TextOverflow) UnmarshalText(b []byte) error { return textOverflowKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v TextOverflow) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseTextOverflow parses a text-overflow keyword.
func ParseTextOverflow(s string) (TextOverflow, error) { return textOverflowKeywords.parse(s) }

// VerticalAlign is the vertical-align property.
type VerticalAlign uint8

const (
	VerticalAlignBaseline VerticalAlign = iota
	VerticalAlignTop
	VerticalAlignMiddle
	VerticalAlignBottom
	VerticalAlignTextTop
	VerticalAlignTextBottom
	VerticalAlignSub
	VerticalAlignSuper
)

var verticalAlignKeywords = keywords[VerticalAlign]{"vertical-align", []string{"baseline", "top", "middle", "bottom", "text-top", "text-bottom", "sub", "super"}}

func (v VerticalAlign) String() string { return verticalAlignKeywords.name(v) }

// UnmarshalText parses a vertical-align keyword.
func (v *VerticalAlign) UnmarshalText(b []byte) error { return verticalAlignKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v VerticalAlign) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseVerticalAlign parses a vertical-align keyword.
func ParseVerticalAlign(s string) (VerticalAlign, error) { return verticalAlignKeywords.parse(s) }

// FontStyle is the font-style property.
type FontStyle uint8

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

var fontStyleKeywords = keywords[FontStyle]{"font-style", []string{"normal", "italic", "oblique"}}

func (v FontStyle) String() string { return fontStyleKeywords.name(v) }

// UnmarshalText parses a font-style keyword.
func (v *FontStyle) UnmarshalText(b []byte) error { return fontStyleKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v FontStyle) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseFontStyle parses a font-style keyword.
func ParseFontStyle(s string) (FontStyle, error) { return fontStyleKeywords.parse(s) }

// BlendMode is the mix-blend-mode property.
type BlendMode uint8

const (
	BlendModeNormal BlendMode = iota
	BlendModeMultiply
	BlendModeScreen
	BlendModeOverlay
	BlendModeDarken
	BlendModeLighten
	BlendModeColorDodge
	BlendModeColorBurn
	BlendModeHardLight
	BlendModeSoftLight
	BlendModeDifference
	BlendModeExclusion
	BlendModeHue
	BlendModeSaturation
	BlendModeColor
	BlendModeLuminosity
	BlendModePlusLighter
	BlendModePlusDarker
)

var blendModeKeywords = keywords[BlendMode]{"mix-blend-mode", []string{"normal", "multiply", "screen", "overlay", "darken", "lighten", "color-dodge", "color-burn", "hard-light", "soft-light", "difference", "exclusion", "hue", "saturation", "color", "luminosity", "plus-lighter", "plus-darker"}}

func (v BlendMode) String() string { return blendModeKeywords.name(v) }

// UnmarshalText parses a mix-blend-mode keyword.
func (v *BlendMode) UnmarshalText(b []byte) error { return blendModeKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v BlendMode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseBlendMode parses a mix-blend-mode keyword.
func ParseBlendMode(s string) (BlendMode, error) { return blendModeKeywords.parse(s) }

// Isolation is the isolation property.
type Isolation uint8

const (
	IsolationAuto Isolation = iota
	IsolationIsolate
)

var isolationKeywords = keywords[Isolation]{"isolation", []string{"auto", "isolate"}}

func (v Isolation) String() string { return isolationKeywords.name(v) }

// UnmarshalText parses a isolation keyword.
func (v *Isolation) UnmarshalText(b []byte) error { return isolationKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v Isolation) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseIsolation parses a isolation keyword.
func ParseIsolation(s string) (Isolation, error) { return isolationKeywords.parse(s) }

// ImageRendering selects the resampling filter for images.
type ImageRendering uint8

const (
	ImageRenderingAuto ImageRendering = iota
	ImageRenderingSmooth
	ImageRenderingPixelated
)

var imageRenderingKeywords = keywords[ImageRendering]{"image-rendering", []string{"auto", "smooth", "pixelated"}}

func (v ImageRendering) String() string { return imageRenderingKeywords.name(v) }

// UnmarshalText parses a image-rendering keyword.
func (v *ImageRendering) UnmarshalText(b []byte) error { return imageRenderingKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v ImageRendering) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseImageRendering parses a image-rendering keyword.
func ParseImageRendering(s string) (ImageRendering, error) { return imageRenderingKeywords.parse(s) }

// BackgroundRepeat is the background-repeat property.
type BackgroundRepeat uint8

const (
	BackgroundRepeatRepeat BackgroundRepeat = iota
	BackgroundRepeatNoRepeat
	BackgroundRepeatRepeatX
	BackgroundRepeatRepeatY
)

var backgroundRepeatKeywords = keywords[BackgroundRepeat]{"background-repeat", []string{"repeat", "no-repeat", "repeat-x", "repeat-y"}}

func (v BackgroundRepeat) String() string { return backgroundRepeatKeywords.name(v) }

// UnmarshalText parses a background-repeat keyword.
func (v *BackgroundRepeat) UnmarshalText(b []byte) error { return backgroundRepeatKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v BackgroundRepeat) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseBackgroundRepeat parses a background-repeat keyword.
func ParseBackgroundRepeat(s string) (BackgroundRepeat, error) { return backgroundRepeatKeywords.parse(s) }

// BackgroundClip is the background-clip property.
type BackgroundClip uint8

const (
	BackgroundClipBorderBox BackgroundClip = iota
	BackgroundClipPaddingBox
	BackgroundClipContentBox
)

var backgroundClipKeywords = keywords[BackgroundClip]{"background-clip", []string{"border-box", "padding-box", "content-box"}}

func (v BackgroundClip) String() string { return backgroundClipKeywords.name(v) }

// UnmarshalText parses a background-clip keyword.
func (v *BackgroundClip) UnmarshalText(b []byte) error { return backgroundClipKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v BackgroundClip) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseBackgroundClip parses a background-clip keyword.
func ParseBackgroundClip(s string) (BackgroundClip, error) { return backgroundClipKeywords.parse(s) }

// FillRule is the fill-rule property.
type FillRule uint8

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

var fillRuleKeywords = keywords[FillRule]{"fill-rule", []string{"nonzero", "evenodd"}}

func (v FillRule) String() string { return fillRuleKeywords.name(v) }

// UnmarshalText parses a fill-rule keyword.
func (v *FillRule) UnmarshalText(b []byte) error { return fillRuleKeywords.unmarshal(v, b) }

// MarshalText encodes the keyword.
func (v FillRule) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseFillRule parses a fill-rule keyword.
func ParseFillRule(s string) (FillRule, error) { return fillRuleKeywords.parse(s) }
